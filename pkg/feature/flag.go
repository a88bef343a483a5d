package feature

import "slices"

// Flag is the configuration for a single feature flag.
//
// Name is the sole lookup key and never changes after creation. Enabled is
// the master kill switch: when false the flag is off for everyone
// regardless of targeting or rollout. TargetSegments is reserved for an
// external segment-membership service and is not evaluated by the engine.
type Flag struct {
	Name              string   `json:"name" yaml:"name"`
	Enabled           bool     `json:"enabled" yaml:"enabled"`
	RolloutPercentage int      `json:"rollout_percentage" yaml:"rollout_percentage"`
	TargetUsers       []string `json:"target_users,omitempty" yaml:"target_users,omitempty"`
	TargetSegments    []string `json:"target_segments,omitempty" yaml:"target_segments,omitempty"`
	Variant           string   `json:"variant,omitempty" yaml:"variant,omitempty"`
	Description       string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// normalize enforces flag invariants in place: the rollout percentage is
// clamped to [0,100], target collections are deduplicated and non-nil.
func (f *Flag) normalize() {
	f.RolloutPercentage = clampPercentage(f.RolloutPercentage)
	f.TargetUsers = dedupe(f.TargetUsers)
	f.TargetSegments = dedupe(f.TargetSegments)
}

// clone returns a deep copy so callers can never mutate registry state
// through a returned flag.
func (f Flag) clone() Flag {
	c := f
	c.TargetUsers = slices.Clone(f.TargetUsers)
	c.TargetSegments = slices.Clone(f.TargetSegments)
	return c
}

func clampPercentage(p int) int {
	return max(0, min(100, p))
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
