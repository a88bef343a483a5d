package feature

import (
	"fmt"
	"math/rand"
	"slices"
)

// Evaluation reasons reported in decisions and audit records.
const (
	ReasonKillSwitch   = "kill_switch"
	ReasonTargetedUser = "targeted_user"
	ReasonUnknownFlag  = "unknown_flag"
)

// Decision is the outcome of evaluating one flag for one user.
type Decision struct {
	Enabled bool
	Reason  string
}

// Evaluate applies the precedence rules to a flag, first match wins:
// kill switch, explicit user targeting, then percentage rollout.
//
// Identified users are bucketed deterministically via Bucket, so repeated
// calls always agree. When userID is empty the percentage comparison falls
// back to a uniform random draw per call; this path is intentionally
// non-deterministic and exists only for anonymous traffic.
func Evaluate(flag Flag, userID string) Decision {
	if !flag.Enabled {
		return Decision{Enabled: false, Reason: ReasonKillSwitch}
	}

	if userID != "" && slices.Contains(flag.TargetUsers, userID) {
		return Decision{Enabled: true, Reason: ReasonTargetedUser}
	}

	pct := clampPercentage(flag.RolloutPercentage)
	switch pct {
	case 100:
		return Decision{Enabled: true, Reason: rolloutReason(pct)}
	case 0:
		return Decision{Enabled: false, Reason: rolloutReason(pct)}
	}

	if userID != "" {
		return Decision{
			Enabled: Bucket(flag.Name, userID) < pct,
			Reason:  rolloutReason(pct),
		}
	}

	return Decision{
		Enabled: rand.Intn(100) < pct,
		Reason:  rolloutReason(pct) + "_unidentified",
	}
}

func rolloutReason(pct int) string {
	return fmt.Sprintf("rollout_%d%%", pct)
}
