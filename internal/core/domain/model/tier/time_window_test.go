package tier_test

import (
	"testing"

	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	t.Run("should create valid window", func(t *testing.T) {
		w, err := tier.NewTimeWindow(6*60, 13*60)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, 360, w.StartMinute())
		assert.Equal(t, 780, w.EndMinute())
	})

	t.Run("should accept full day boundaries", func(t *testing.T) {
		w, err := tier.NewTimeWindow(0, tier.MinutesPerDay)

		require.NoError(t, err)
		assert.Equal(t, "00:00-24:00", w.String())
	})

	t.Run("should fail with negative start", func(t *testing.T) {
		_, err := tier.NewTimeWindow(-1, 60)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
	})

	t.Run("should fail with end beyond day", func(t *testing.T) {
		_, err := tier.NewTimeWindow(60, tier.MinutesPerDay+1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
	})

	t.Run("should fail when start equals end", func(t *testing.T) {
		_, err := tier.NewTimeWindow(600, 600)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "start 600 is not before end 600")
	})

	t.Run("should fail when start is after end", func(t *testing.T) {
		_, err := tier.NewTimeWindow(780, 360)

		require.Error(t, err)
	})
}

func TestTimeWindowValidate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var w tier.TimeWindow

		require.Error(t, w.Validate())
	})
}

func TestTimeWindowIsEqual(t *testing.T) {
	a, _ := tier.NewTimeWindow(360, 780)
	b, _ := tier.NewTimeWindow(360, 780)
	c, _ := tier.NewTimeWindow(780, 1200)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestTimeWindowString(t *testing.T) {
	t.Run("should format half hour boundaries", func(t *testing.T) {
		w, _ := tier.NewTimeWindow(7*60+30, 9*60)

		assert.Equal(t, "07:30-09:00", w.String())
	})
}
