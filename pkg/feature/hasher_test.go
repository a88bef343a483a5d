package feature_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saastronomical/flagkit/pkg/feature"
)

func TestBucketDeterministic(t *testing.T) {
	t.Parallel()

	first := feature.Bucket("aggressive_capture", "user_123")
	for _i := 0; _i < 50; _i++ {
		assert.Equal(t, first, feature.Bucket("aggressive_capture", "user_123"))
	}
}

func TestBucketRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		b := feature.Bucket("show_comparables", fmt.Sprintf("user_%d", i))
		require.GreaterOrEqual(t, b, 0)
		require.Less(t, b, 100)
	}
}

func TestBucketMixesFlagName(t *testing.T) {
	t.Parallel()

	// The same user must not land in the same bucket for every flag,
	// otherwise unrelated experiments would be perfectly correlated.
	differs := 0
	for i := 0; i < 200; i++ {
		userID := fmt.Sprintf("user_%d", i)
		if feature.Bucket("flag_a", userID) != feature.Bucket("flag_b", userID) {
			differs++
		}
	}
	assert.Greater(t, differs, 150, "buckets for distinct flags should rarely coincide")
}

func TestBucketDistribution(t *testing.T) {
	t.Parallel()

	const (
		samples = 10000
		cutoff  = 50
	)

	within := 0
	for i := 0; i < samples; i++ {
		if feature.Bucket("rollout_test", fmt.Sprintf("synthetic_user_%d", i)) < cutoff {
			within++
		}
	}

	fraction := float64(within) / samples
	assert.InDelta(t, 0.50, fraction, 0.05, "50%% cutoff should catch roughly half the population")
}
