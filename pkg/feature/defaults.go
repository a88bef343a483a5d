package feature

// DefaultFlags is the built-in flag set for the Baton conversational
// agents. This is deployment configuration, not engine logic: the
// evaluation algorithm attaches no meaning to any of these names.
func DefaultFlags() []Flag {
	return []Flag{
		// Lead capture strategy
		{
			Name:        "aggressive_capture",
			Description: "Ask for contact info after first listing detail request (vs waiting for explicit interest)",
		},
		{
			Name:        "require_both_contacts",
			Description: "Require BOTH email AND phone (vs current email OR phone logic)",
		},
		{
			Name:        "collect_budget_upfront",
			Description: "Ask about budget/timeline before showing listings",
		},

		// Information disclosure
		{
			Name:              "show_risks_upfront",
			Enabled:           true,
			RolloutPercentage: 100,
			Description:       "Include risk analysis in listing details",
		},
		{
			Name:              "show_comparables",
			Enabled:           true,
			RolloutPercentage: 100,
			Description:       "Show comparable sales data in listing details",
		},
		{
			Name:        "early_advisor_intro",
			Description: "Offer advisor connection in Concierge agent (vs only in Booking agent)",
		},

		// Agent routing
		{
			Name:              "auto_handoff_after_details",
			Enabled:           true,
			RolloutPercentage: 100,
			Description:       "Automatically hand off to Booking agent after showing listing details",
		},
		{
			Name:        "skip_concierge_returning",
			Description: "Skip Concierge for users who have previously viewed listings",
		},

		// Search & discovery
		{
			Name:              "enable_vector_search",
			Enabled:           true,
			RolloutPercentage: 100,
			Description:       "Use semantic vector search (vs keyword fallback only)",
		},
		{
			Name:              "show_under_contract",
			Enabled:           true,
			RolloutPercentage: 100,
			Description:       "Include under-contract listings in search results (for social proof)",
		},

		// A/B test variants
		{
			Name:              "agent_tone",
			Enabled:           true,
			RolloutPercentage: 100,
			Variant:           "professional",
			Description:       "Agent personality variant for A/B testing",
		},
	}
}
