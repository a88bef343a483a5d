// Package audit provides a bounded in-memory log of feature flag
// evaluation outcomes.
//
// The Recorder is a fixed-capacity ring buffer: appends are O(1) and once
// the capacity is reached the oldest record is evicted first. It is safe
// for concurrent use; Export returns a point-in-time snapshot so callers
// never observe in-flight mutation.
//
// Usage:
//
//	rec := audit.NewRecorder(audit.WithCapacity(500))
//	rec.Record(audit.Record{
//		FlagName: "aggressive_capture",
//		UserID:   "user_123",
//		Result:   true,
//		Reason:   "rollout_50%",
//	})
//	history := rec.Export() // oldest first
//
// Records carry a UUID and UTC timestamp, filled in at append time when
// not provided by the caller.
package audit
