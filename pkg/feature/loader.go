package feature

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// flagPatch is a partial flag document from a config file. Pointer fields
// distinguish "absent" from zero values so unspecified fields keep their
// prior value during a merge.
type flagPatch struct {
	Enabled           *bool     `json:"enabled" yaml:"enabled"`
	RolloutPercentage *int      `json:"rollout_percentage" yaml:"rollout_percentage"`
	TargetUsers       *[]string `json:"target_users" yaml:"target_users"`
	TargetSegments    *[]string `json:"target_segments" yaml:"target_segments"`
	Variant           *string   `json:"variant" yaml:"variant"`
	Description       *string   `json:"description" yaml:"description"`
}

func (p flagPatch) apply(f *Flag) {
	if p.Enabled != nil {
		f.Enabled = *p.Enabled
	}
	if p.RolloutPercentage != nil {
		f.RolloutPercentage = *p.RolloutPercentage
	}
	if p.TargetUsers != nil {
		f.TargetUsers = slices.Clone(*p.TargetUsers)
	}
	if p.TargetSegments != nil {
		f.TargetSegments = slices.Clone(*p.TargetSegments)
	}
	if p.Variant != nil {
		f.Variant = *p.Variant
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
}

// LoadFile merges flag overrides from a JSON or YAML document whose
// top-level keys are flag names. Existing flags are field-merged;
// unknown names create new definitions.
//
// Loading is fail-open: on read or parse failure the registry keeps its
// current state, the failure is logged once, and the returned error wraps
// ErrConfigLoad for callers that want to inspect it.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error("failed to read feature flag config", "path", path, "error", err)
		return errors.Join(ErrConfigLoad, err)
	}

	patches := make(map[string]flagPatch)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &patches)
	default:
		err = json.Unmarshal(data, &patches)
	}
	if err != nil {
		r.logger.Error("failed to parse feature flag config", "path", path, "error", err)
		return errors.Join(ErrConfigLoad, err)
	}

	r.mu.Lock()
	for name, patch := range patches {
		if name == "" {
			continue
		}
		flag, ok := r.flags[name]
		if !ok {
			created := Flag{Name: name}
			flag = &created
			r.flags[name] = flag
		}
		patch.apply(flag)
		flag.normalize()
	}
	r.mu.Unlock()

	r.logger.Info("loaded feature flags", "path", path, "flags", len(patches))
	return nil
}
