package feature

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix marks environment variables carrying flag overrides, of the
// form FF_<FLAG_NAME_UPPERCASED>.
const EnvPrefix = "FF_"

// LoadEnv applies flag overrides from the process environment.
func (r *Registry) LoadEnv() {
	r.ApplyEnv(os.Environ())
}

// ApplyEnv applies overrides from "KEY=VALUE" pairs. Recognized values:
//
//	true|1|on   -> enabled, 100% rollout
//	false|0|off -> disabled, 0% rollout
//	0..100      -> enabled at that percentage
//
// Only flags already known to the registry are affected; unknown names
// and malformed values are ignored so one bad variable never blocks the
// rest (fail-open). Overrides touch only the enabled bit and the rollout
// percentage, never arbitrary fields.
func (r *Registry) ApplyEnv(environ []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}

		flagName := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		flag, known := r.flags[flagName]
		if !known {
			continue
		}

		switch value = strings.ToLower(strings.TrimSpace(value)); value {
		case "true", "1", "on":
			flag.Enabled = true
			flag.RolloutPercentage = 100
		case "false", "0", "off":
			flag.Enabled = false
			flag.RolloutPercentage = 0
		default:
			pct, err := strconv.Atoi(value)
			if err != nil || pct < 0 || pct > 100 {
				continue
			}
			flag.Enabled = true
			flag.RolloutPercentage = pct
		}

		r.logger.Info("applied feature flag env override",
			"flag", flagName,
			"enabled", flag.Enabled,
			"rollout_percentage", flag.RolloutPercentage,
		)
	}
}
