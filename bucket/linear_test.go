package bucket

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawanmeister/nvpstat/errs"
)

func TestNewLinear(t *testing.T) {
	tests := []struct {
		name        string
		granularity float64
		wantErr     bool
	}{
		{name: "positive integer", granularity: 5, wantErr: false},
		{name: "fractional", granularity: 0.25, wantErr: false},
		{name: "zero", granularity: 0, wantErr: true},
		{name: "negative", granularity: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lin, err := NewLinear(tt.granularity)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, errs.ErrInvalidGranularity))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.granularity, lin.Granularity())
		})
	}
}

func TestLinearValueToBucket(t *testing.T) {
	tests := []struct {
		name        string
		granularity float64
		value       float64
		want        int
	}{
		{name: "zero", granularity: 5, value: 0, want: 0},
		{name: "inside first bucket", granularity: 5, value: 4.999, want: 0},
		{name: "lower boundary of second bucket", granularity: 5, value: 5, want: 1},
		{name: "inside second bucket", granularity: 5, value: 9.99, want: 1},
		{name: "boundary of third bucket", granularity: 5, value: 10, want: 2},
		{name: "large value", granularity: 5, value: 1234, want: 246},
		{name: "fractional granularity below boundary", granularity: 2.5, value: 2.4, want: 0},
		{name: "fractional granularity at boundary", granularity: 2.5, value: 2.5, want: 1},
		{name: "negative value floors downward", granularity: 5, value: -0.1, want: -1},
		{name: "negative value two buckets down", granularity: 5, value: -7, want: -2},
		{name: "huge value clamps to max index", granularity: 5, value: math.MaxFloat64, want: math.MaxInt32},
		{name: "huge negative value clamps", granularity: 5, value: -math.MaxFloat64, want: -math.MaxInt32},
		{name: "tiny granularity clamps", granularity: 1e-300, value: 1e300, want: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lin, err := NewLinear(tt.granularity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lin.ValueToBucket(tt.value))
		})
	}
}

func TestLinearBucketToRange(t *testing.T) {
	lin, err := NewLinear(5)
	require.NoError(t, err)

	tests := []struct {
		index    int
		wantLow  float64
		wantHigh float64
	}{
		{index: 0, wantLow: 0, wantHigh: 5},
		{index: 1, wantLow: 5, wantHigh: 10},
		{index: 4, wantLow: 20, wantHigh: 25},
		{index: -1, wantLow: -5, wantHigh: 0},
	}

	for _, tt := range tests {
		low, high := lin.BucketToRange(tt.index)
		assert.Equal(t, tt.wantLow, low, "low of bucket %d", tt.index)
		assert.Equal(t, tt.wantHigh, high, "high of bucket %d", tt.index)
	}
}

func TestLinearRangeContainsValue(t *testing.T) {
	granularities := []float64{0.5, 1, 2.5, 5, 100}

	for _, g := range granularities {
		lin, err := NewLinear(g)
		require.NoError(t, err)

		for v := 0.0; v < g*20; v += g / 7 {
			idx := lin.ValueToBucket(v)
			low, high := lin.BucketToRange(idx)
			require.GreaterOrEqual(t, v, low, "granularity %v value %v", g, v)
			require.Less(t, v, high, "granularity %v value %v", g, v)
		}
	}
}

func TestLinearIndexMonotonic(t *testing.T) {
	lin, err := NewLinear(3)
	require.NoError(t, err)

	prev := lin.ValueToBucket(0)
	for v := 0.5; v < 100; v += 0.5 {
		idx := lin.ValueToBucket(v)
		require.GreaterOrEqual(t, idx, prev, "value %v", v)
		prev = idx
	}
}
