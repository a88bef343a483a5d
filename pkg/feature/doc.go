// Package feature provides deterministic, user-targeted feature flag
// evaluation with live updates and a bounded audit trail.
//
// The package guarantees stable per-user outcomes under probabilistic
// rollout: a user's bucket is a pure function of (flag name, user id), so
// repeated checks agree within a process and across processes behind a
// load balancer, with no shared state.
//
// # Architecture
//
// The package is built around four core concepts:
//
// 1. Flags - per-flag configuration: kill switch, rollout percentage, targeting, variant
// 2. Bucketing - a stable hash mapping (flag, user) into [0,100)
// 3. Evaluation - precedence rules producing an enabled/disabled decision with a reason
// 4. Registry - the owner of all definitions, serving concurrent reads and live mutation
//
// Precedence, first match wins: the master kill switch, explicit user
// targeting, then percentage rollout. Targeting bypasses the percentage
// but never the kill switch.
//
// # Usage
//
// Basic setup with the built-in defaults:
//
//	import "github.com/Saastronomical/flagkit/pkg/feature"
//
//	registry := feature.NewRegistry(
//		feature.WithLogger(logger),
//	)
//
//	if registry.IsEnabled("aggressive_capture", userID) {
//		// Use aggressive capture logic
//	}
//
//	tone := registry.GetVariant("agent_tone", userID, "professional")
//
// Gradual rollout, changed live without redeploy:
//
//	registry.UpdateFlag("aggressive_capture",
//		feature.SetEnabled(true),
//		feature.SetRolloutPercentage(50),
//	)
//
// Environment-driven construction with optional config file and FF_*
// overrides:
//
//	cfg, err := feature.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	registry := feature.NewFromConfig(cfg)
//
// # Configuration Sources
//
// Definitions are layered: built-in defaults, then an optional JSON or
// YAML file keyed by flag name (field-merged, unknown names create new
// flags), then FF_<FLAG_NAME> environment overrides which touch only the
// enabled bit and rollout percentage. Every layer is fail-open: a broken
// file or malformed variable is logged and skipped, because a flag-check
// failure must never take down the feature it is guarding.
//
// # Error Handling
//
// Evaluation calls never return errors. Unknown flags evaluate disabled
// with a logged warning, and out-of-range percentages are clamped rather
// than rejected. Sentinel errors (ErrFlagNotFound, ErrInvalidFlag,
// ErrConfigLoad) cover the management surface and can be checked with
// errors.Is.
//
// # Concurrency
//
// The Registry uses a read-write lock: evaluations run concurrently,
// mutation is exclusive, and readers always see a whole definition, never
// a partially applied update. The evaluation path performs no I/O.
//
// # Anonymous Traffic
//
// Callers should always supply a user id. When none is given, percentage
// rollout falls back to a uniform random draw per call; this path
// sacrifices the consistency guarantee and exists only for anonymous
// contexts.
package feature
