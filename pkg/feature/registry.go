package feature

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/Saastronomical/flagkit/pkg/audit"
)

// Attributes carries optional evaluation context, such as segment hints or
// listing state. Segment membership is resolved by an external collaborator;
// attributes do not currently affect the decision.
type Attributes map[string]any

// Registry owns the set of flag definitions and serves evaluation calls.
//
// Evaluation is safe for many concurrent callers; mutation (UpdateFlag,
// Register, config loads) is exclusive and readers never observe a
// partially updated definition. Evaluation never performs I/O and never
// fails the caller: lookups against unknown flags log a warning and
// return the disabled outcome.
type Registry struct {
	mu       sync.RWMutex
	flags    map[string]*Flag
	recorder *audit.Recorder
	logger   *slog.Logger
	metrics  *Metrics
}

// NewRegistry creates a registry seeded with DefaultFlags, then applies
// the provided options.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		flags:  make(map[string]*Flag),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	r.put(DefaultFlags()...)

	for _, opt := range opts {
		opt(r)
	}
	if r.recorder == nil {
		r.recorder = audit.NewRecorder()
	}
	return r
}

// IsEnabled reports whether a flag is enabled for the given user.
//
// Unknown flag names return false. Identified evaluations of known flags
// are appended to the audit log; anonymous ones are not.
func (r *Registry) IsEnabled(flagName, userID string, _ ...Attributes) bool {
	_, decision, ok := r.evaluate(flagName, userID)
	return ok && decision.Enabled
}

// GetVariant returns the flag's variant when the flag evaluates enabled
// for the user and a variant is configured, otherwise the caller-supplied
// default.
func (r *Registry) GetVariant(flagName, userID, defaultVariant string) string {
	flag, decision, ok := r.evaluate(flagName, userID)
	if !ok || !decision.Enabled || flag.Variant == "" {
		return defaultVariant
	}
	return flag.Variant
}

// Decide exposes the full evaluation outcome, including the reason.
// Unknown flags yield a disabled decision with ReasonUnknownFlag.
func (r *Registry) Decide(flagName, userID string, _ ...Attributes) Decision {
	_, decision, ok := r.evaluate(flagName, userID)
	if !ok {
		return Decision{Enabled: false, Reason: ReasonUnknownFlag}
	}
	return decision
}

// evaluate looks up the flag, applies the precedence rules against a
// consistent copy of its definition, and records the outcome.
func (r *Registry) evaluate(flagName, userID string) (Flag, Decision, bool) {
	r.mu.RLock()
	stored, ok := r.flags[flagName]
	var flag Flag
	if ok {
		flag = stored.clone()
	}
	r.mu.RUnlock()

	if !ok {
		r.logger.Warn("unknown feature flag", "flag", flagName)
		if r.metrics != nil {
			r.metrics.observeUnknown(flagName)
		}
		return Flag{}, Decision{}, false
	}

	decision := Evaluate(flag, userID)
	if userID != "" {
		r.recorder.Record(audit.Record{
			FlagName: flagName,
			UserID:   userID,
			Result:   decision.Enabled,
			Reason:   decision.Reason,
		})
	}
	if r.metrics != nil {
		r.metrics.observe(flagName, decision)
	}
	return flag, decision, true
}

// FlagUpdate is a partial, in-place mutation applied by UpdateFlag.
type FlagUpdate func(*Flag)

// SetEnabled toggles the flag's master kill switch.
func SetEnabled(enabled bool) FlagUpdate {
	return func(f *Flag) { f.Enabled = enabled }
}

// SetRolloutPercentage sets the rollout percentage; out-of-range values
// are clamped to [0,100] before storage.
func SetRolloutPercentage(pct int) FlagUpdate {
	return func(f *Flag) { f.RolloutPercentage = pct }
}

// SetTargetUsers replaces the set of unconditionally enabled users.
func SetTargetUsers(users []string) FlagUpdate {
	return func(f *Flag) { f.TargetUsers = slices.Clone(users) }
}

// UpdateFlag applies a partial mutation to one flag definition. Updating
// an unknown flag is a logged no-op: rollout proposals for flags that do
// not exist yet must not crash the admin caller.
func (r *Registry) UpdateFlag(flagName string, updates ...FlagUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flag, ok := r.flags[flagName]
	if !ok {
		r.logger.Warn("cannot update unknown feature flag", "flag", flagName)
		return
	}

	for _, update := range updates {
		update(flag)
	}
	flag.normalize()

	r.logger.Info("updated feature flag",
		"flag", flagName,
		"enabled", flag.Enabled,
		"rollout_percentage", flag.RolloutPercentage,
	)
}

// Register adds or wholesale-replaces flag definitions. It returns
// ErrInvalidFlag when a flag has an empty name; valid flags before the
// offending one are still registered.
func (r *Registry) Register(flags ...Flag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, flag := range flags {
		if flag.Name == "" {
			return errors.Join(ErrInvalidFlag, errors.New("flag name cannot be empty"))
		}
		r.putLocked(flag)
	}
	return nil
}

// Flag returns a copy of one flag definition, or ErrFlagNotFound.
func (r *Registry) Flag(name string) (Flag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flag, ok := r.flags[name]
	if !ok {
		return Flag{}, ErrFlagNotFound
	}
	return flag.clone(), nil
}

// SnapshotAll returns a copy of every flag definition keyed by name, for
// dashboards and inspection. Mutating the result does not affect the
// registry.
func (r *Registry) SnapshotAll() map[string]Flag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Flag, len(r.flags))
	for name, flag := range r.flags {
		out[name] = flag.clone()
	}
	return out
}

// ExportAuditLog returns a point-in-time copy of the audit history,
// oldest first.
func (r *Registry) ExportAuditLog() []audit.Record {
	return r.recorder.Export()
}

func (r *Registry) put(flags ...Flag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, flag := range flags {
		r.putLocked(flag)
	}
}

func (r *Registry) putLocked(flag Flag) {
	flag.normalize()
	stored := flag.clone()
	r.flags[stored.Name] = &stored
}
