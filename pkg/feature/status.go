package feature

import (
	"fmt"
	"slices"
	"strings"
)

// StatusReport renders a plain-text summary of every flag, grouped by
// kill-switch state, for debugging and admin inspection.
func (r *Registry) StatusReport() string {
	flags := r.SnapshotAll()

	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("FEATURE FLAGS STATUS\n\nENABLED:\n")
	for _, name := range names {
		flag := flags[name]
		if !flag.Enabled {
			continue
		}
		fmt.Fprintf(&b, "  %s (%d%% rollout)\n", name, flag.RolloutPercentage)
		if flag.Description != "" {
			fmt.Fprintf(&b, "    %s\n", flag.Description)
		}
	}

	b.WriteString("\nDISABLED:\n")
	for _, name := range names {
		flag := flags[name]
		if flag.Enabled {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", name)
		if flag.Description != "" {
			fmt.Fprintf(&b, "    %s\n", flag.Description)
		}
	}
	return b.String()
}
