package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestTableRateFor_Boundaries(t *testing.T) {
	table := Table{
		Intervals: []Interval{
			{Low: fp(0), High: fp(1), Rate: 0.10},
			{Low: fp(1), High: fp(2), Rate: 0.20},
		},
		MissingRate: 0.42,
	}

	// exactly at an interval's upper bound uses that interval (low < x <= high)
	rate, err := table.RateFor("roa", 1)
	require.NoError(t, err)
	assert.Equal(t, 0.10, rate)

	// one unit past the bound falls into the next interval
	rate, err = table.RateFor("roa", 2)
	require.NoError(t, err)
	assert.Equal(t, 0.20, rate)

	// interior point
	rate, err = table.RateFor("roa", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.10, rate)

	// at the low bound the interval is open
	_, err = table.RateFor("roa", 0)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "roa", oor.Ratio)

	// past the last interval
	_, err = table.RateFor("roa", 2.5)
	require.ErrorAs(t, err, &oor)
}

func TestTableRateFor_MissingBucket(t *testing.T) {
	table := Table{
		Intervals:   []Interval{{Low: fp(0), High: fp(1), Rate: 0.10}},
		MissingRate: 0.42,
	}
	rate, err := table.RateFor("roa", math.NaN())
	require.NoError(t, err)
	assert.Equal(t, 0.42, rate)
}

func TestTableRateFor_UnboundedEnds(t *testing.T) {
	table := Table{
		Intervals: []Interval{
			{High: fp(-0.05), Rate: 0.30},
			{Low: fp(-0.05), High: fp(0.02), Rate: 0.15},
			{Low: fp(0.02), Rate: 0.05},
		},
	}
	for _, tc := range []struct {
		value float64
		want  float64
	}{
		{-1e9, 0.30},
		{-0.05, 0.30},
		{0, 0.15},
		{0.02, 0.15},
		{0.020001, 0.05},
		{1e9, 0.05},
	} {
		rate, err := table.RateFor("debt_ratio", tc.value)
		require.NoError(t, err, "value %v", tc.value)
		assert.Equal(t, tc.want, rate, "value %v", tc.value)
	}
}
