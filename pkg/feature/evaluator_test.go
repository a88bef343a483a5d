package feature_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saastronomical/flagkit/pkg/feature"
)

func TestEvaluateKillSwitchIsAbsolute(t *testing.T) {
	t.Parallel()

	// Disabled wins even over targeting and a full rollout.
	flag := feature.Flag{
		Name:              "show_risks_upfront",
		Enabled:           false,
		RolloutPercentage: 100,
		TargetUsers:       []string{"vip_user_1"},
	}

	d := feature.Evaluate(flag, "vip_user_1")
	assert.False(t, d.Enabled)
	assert.Equal(t, feature.ReasonKillSwitch, d.Reason)
}

func TestEvaluateTargetingOverridesRollout(t *testing.T) {
	t.Parallel()

	flag := feature.Flag{
		Name:              "collect_budget_upfront",
		Enabled:           true,
		RolloutPercentage: 0,
		TargetUsers:       []string{"vip_user_1"},
	}

	d := feature.Evaluate(flag, "vip_user_1")
	assert.True(t, d.Enabled)
	assert.Equal(t, feature.ReasonTargetedUser, d.Reason)

	d = feature.Evaluate(flag, "regular_user")
	assert.False(t, d.Enabled)
	assert.Equal(t, "rollout_0%", d.Reason)
}

func TestEvaluateBoundaryPercentages(t *testing.T) {
	t.Parallel()

	t.Run("ZeroAlwaysDisabled", func(t *testing.T) {
		t.Parallel()
		flag := feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 0}
		for i := 0; i < 100; i++ {
			d := feature.Evaluate(flag, fmt.Sprintf("user_%d", i))
			require.False(t, d.Enabled)
			require.Equal(t, "rollout_0%", d.Reason)
		}
	})

	t.Run("HundredAlwaysEnabled", func(t *testing.T) {
		t.Parallel()
		flag := feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 100}
		for i := 0; i < 100; i++ {
			d := feature.Evaluate(flag, fmt.Sprintf("user_%d", i))
			require.True(t, d.Enabled)
			require.Equal(t, "rollout_100%", d.Reason)
		}
	})
}

func TestEvaluatePartialRolloutDeterministic(t *testing.T) {
	t.Parallel()

	flag := feature.Flag{Name: "aggressive_capture", Enabled: true, RolloutPercentage: 37}

	first := feature.Evaluate(flag, "user_005")
	assert.Equal(t, "rollout_37%", first.Reason)
	for _i := 0; _i < 20; _i++ {
		assert.Equal(t, first.Enabled, feature.Evaluate(flag, "user_005").Enabled)
	}
}

func TestEvaluateMonotonicUnderRolloutIncrease(t *testing.T) {
	t.Parallel()

	// Increasing the rollout never removes previously enabled users.
	for i := 0; i < 500; i++ {
		userID := fmt.Sprintf("user_%d", i)
		low := feature.Evaluate(feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 30}, userID)
		high := feature.Evaluate(feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 70}, userID)
		if low.Enabled {
			require.True(t, high.Enabled, "user %s enabled at 30%% must stay enabled at 70%%", userID)
		}
	}
}

func TestEvaluateAnonymousFallback(t *testing.T) {
	t.Parallel()

	t.Run("ReasonMarkedUnidentified", func(t *testing.T) {
		t.Parallel()
		flag := feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 50}
		d := feature.Evaluate(flag, "")
		assert.Equal(t, "rollout_50%_unidentified", d.Reason)
	})

	t.Run("BoundariesStillDeterministic", func(t *testing.T) {
		t.Parallel()
		on := feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 100}
		off := feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 0}
		for _i := 0; _i < 50; _i++ {
			require.True(t, feature.Evaluate(on, "").Enabled)
			require.False(t, feature.Evaluate(off, "").Enabled)
		}
	})

	t.Run("DrawRoughlyMatchesPercentage", func(t *testing.T) {
		t.Parallel()
		flag := feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 50}
		enabled := 0
		for _i := 0; _i < 10000; _i++ {
			if feature.Evaluate(flag, "").Enabled {
				enabled++
			}
		}
		assert.InDelta(t, 0.50, float64(enabled)/10000, 0.05)
	})
}

func TestEvaluateClampsOutOfRangePercentage(t *testing.T) {
	t.Parallel()

	d := feature.Evaluate(feature.Flag{Name: "f", Enabled: true, RolloutPercentage: 250}, "user_1")
	assert.True(t, d.Enabled)
	assert.Equal(t, "rollout_100%", d.Reason)

	d = feature.Evaluate(feature.Flag{Name: "f", Enabled: true, RolloutPercentage: -10}, "user_1")
	assert.False(t, d.Enabled)
	assert.Equal(t, "rollout_0%", d.Reason)
}
