package histogram

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawanmeister/nvpstat/bucket"
)

func newLinear(t *testing.T, granularity float64) bucket.Strategy {
	t.Helper()
	lin, err := bucket.NewLinear(granularity)
	require.NoError(t, err)
	return lin
}

func newLog2(t *testing.T, start float64) bucket.Strategy {
	t.Helper()
	lg, err := bucket.NewLog2(start)
	require.NoError(t, err)
	return lg
}

func TestHistogramEmptyRendersNothing(t *testing.T) {
	h := New(newLinear(t, 5), true)

	assert.Empty(t, h.Lines())
	assert.Equal(t, 0, h.Total())

	var sb strings.Builder
	require.NoError(t, h.Render(&sb))
	assert.Empty(t, sb.String())
}

func TestHistogramLinearFillEmpty(t *testing.T) {
	h := New(newLinear(t, 5), true)
	for _, v := range []float64{10, 20, 5} {
		h.Add(v)
	}

	want := []string{
		"[0,5[: 0",
		"[5,10[: 1",
		"[10,15[: 1",
		"[15,20[: 0",
		"[20,25[: 1",
	}
	assert.Equal(t, want, h.Lines())
}

func TestHistogramLinearOmitEmpty(t *testing.T) {
	h := New(newLinear(t, 5), false)
	for _, v := range []float64{10, 20, 5} {
		h.Add(v)
	}

	want := []string{
		"[5,10[: 1",
		"[10,15[: 1",
		"[20,25[: 1",
	}
	assert.Equal(t, want, h.Lines())
}

func TestHistogramOmitEmptyHandlesOutlierBucket(t *testing.T) {
	h := New(newLinear(t, 5), false)
	h.Add(7)
	h.Add(math.MaxFloat64)

	// The outlier pins to the highest linear bucket; rendering stays one
	// line per populated bucket instead of walking the whole index range.
	want := []string{
		"[5,10[: 1",
		"[10737418235,10737418240[: 1",
	}
	assert.Equal(t, want, h.Lines())
	assert.Equal(t, 2, h.Total())
}

func TestHistogramLog2Render(t *testing.T) {
	h := New(newLog2(t, 64), true)
	for _, v := range []float64{1, 64, 300} {
		h.Add(v)
	}

	want := []string{
		"[0,64[: 1",
		"[64,128[: 1",
		"[128,256[: 0",
		"[256,512[: 1",
	}
	assert.Equal(t, want, h.Lines())
}

func TestHistogramCountsAccumulate(t *testing.T) {
	h := New(newLinear(t, 5), true)
	for range 3 {
		h.Add(7)
	}

	assert.Equal(t, 3, h.Count(1))
	assert.Equal(t, 3, h.Total())
	assert.Equal(t, []string{"[0,5[: 0", "[5,10[: 3"}, h.Lines())
}

func TestHistogramTotalMatchesAdds(t *testing.T) {
	h := New(newLinear(t, 2.5), true)
	values := []float64{0, 0.1, 2.4, 2.5, 7, 100, 3.3}
	for _, v := range values {
		h.Add(v)
	}

	require.Equal(t, len(values), h.Total())

	sum := 0
	for _, line := range h.Lines() {
		_, countPart, found := strings.Cut(line, ": ")
		require.True(t, found, "line %q", line)
		n, err := strconv.Atoi(countPart)
		require.NoError(t, err, "line %q", line)
		sum += n
	}
	assert.Equal(t, len(values), sum)
}

func TestHistogramNegativeIndicesCountedNotRendered(t *testing.T) {
	h := New(newLinear(t, 5), true)
	h.Add(-7)

	assert.Equal(t, 1, h.Total())
	assert.Empty(t, h.Lines())

	h.Add(3)
	assert.Equal(t, 2, h.Total())
	assert.Equal(t, []string{"[0,5[: 1"}, h.Lines())
}

func TestHistogramFractionalBounds(t *testing.T) {
	h := New(newLinear(t, 2.5), true)
	h.Add(2.5)

	assert.Equal(t, []string{"[0,2.5[: 0", "[2.5,5[: 1"}, h.Lines())
}

func TestHistogramRenderMatchesLines(t *testing.T) {
	h := New(newLog2(t, 64), false)
	for _, v := range []float64{3, 90, 90, 4096} {
		h.Add(v)
	}

	var sb strings.Builder
	require.NoError(t, h.Render(&sb))
	assert.Equal(t, strings.Join(h.Lines(), "\n")+"\n", sb.String())
}

func TestFormatBound(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{value: 0, want: "0"},
		{value: 5, want: "5"},
		{value: 64, want: "64"},
		{value: 2.5, want: "2.5"},
		{value: 0.5, want: "0.5"},
		{value: 1099511627776, want: "1099511627776"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBound(tt.value))
	}
}
