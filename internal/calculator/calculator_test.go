package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestPriceChanges(t *testing.T) {
	got := PriceChanges([]float64{100, 110, 99, 0, 50})
	require.Len(t, got, 5)
	assert.Equal(t, 0.0, got[0])
	assert.InDelta(t, 0.10, got[1], tol)
	assert.InDelta(t, -0.10, got[2], tol)
	assert.InDelta(t, -1.0, got[3], tol)
	// previous price 0 degrades to 0 instead of +Inf
	assert.Equal(t, 0.0, got[4])
}

func TestPriceChanges_Empty(t *testing.T) {
	assert.Empty(t, PriceChanges(nil))
}

func TestFlows(t *testing.T) {
	prices := []float64{100, 110, 99, 99}
	changes := PriceChanges(prices)
	in, out := Flows(prices, changes)

	assert.InDeltaSlice(t, []float64{0, 11, 0, 0}, in, tol)
	assert.InDeltaSlice(t, []float64{0, 0, 9.9, 0}, out, tol)
}

func TestFlows_ExtremeJumpStaysFinite(t *testing.T) {
	prices := []float64{1e-300, 1e300}
	changes := PriceChanges(prices)
	in, out := Flows(prices, changes)

	assert.Equal(t, math.MaxFloat64, changes[1])
	assert.Equal(t, math.MaxFloat64, in[1])
	assert.Equal(t, 0.0, out[1])
	assert.False(t, math.IsInf(Sum([]float64{math.MaxFloat64, math.MaxFloat64}), 0))
	assert.False(t, math.IsInf(Mean([]float64{math.MaxFloat64, math.MaxFloat64}, 0), 0))
}

func TestVolumePercentOfCap(t *testing.T) {
	got := VolumePercentOfCap([]float64{50, 10, 7}, []float64{1000, 0, 700})
	assert.InDeltaSlice(t, []float64{5, 0, 1}, got, tol)
}

func TestMean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tests := []struct {
		name   string
		window int
		want   float64
	}{
		{"trailing 7", 7, 7},
		{"window larger than series", 30, 5.5},
		{"whole series", 0, 5.5},
		{"single", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mean(values, tt.window), tol)
		})
	}
	assert.Equal(t, 0.0, Mean(nil, 7))
}

func TestSum(t *testing.T) {
	assert.InDelta(t, 6.5, Sum([]float64{1, 2.5, 3}), tol)
	assert.Equal(t, 0.0, Sum(nil))
}

func TestEMA_Recursive(t *testing.T) {
	// span 3 -> alpha 0.5
	got := EMA([]float64{10, 20, 30, 20}, 3)
	assert.InDeltaSlice(t, []float64{10, 15, 22.5, 21.25}, got, tol)
}

func TestEMA_SeededFromFirstValue(t *testing.T) {
	got := EMA([]float64{42}, 26)
	assert.Equal(t, []float64{42}, got)
	assert.Empty(t, EMA(nil, 12))
}

func TestMACD_ConstantPriceIsZero(t *testing.T) {
	prices := make([]float64, 40)
	for i := range prices {
		prices[i] = 250
	}
	macd, signal := MACD(prices, 12, 26, 9)
	for i := range prices {
		assert.InDelta(t, 0, macd[i], tol, "macd[%d]", i)
		assert.InDelta(t, 0, signal[i], tol, "signal[%d]", i)
	}
}

func TestMACD_RisingPricePositive(t *testing.T) {
	prices := []float64{10, 11, 12, 13, 14, 15}
	macd, signal := MACD(prices, 12, 26, 9)
	assert.Equal(t, 0.0, macd[0])
	for i := 1; i < len(prices); i++ {
		assert.Greater(t, macd[i], 0.0)
		assert.Greater(t, macd[i], signal[i], "signal lags macd on a steady rise")
	}
}

func TestRollingRSI_Scenario(t *testing.T) {
	got := RollingRSI([]float64{100, 110, 90, 95}, 14)
	require.Len(t, got, 4)

	assert.Equal(t, NeutralRSI, got[0])
	// only gains so far: zero loss is replaced by the smallest float
	assert.InDelta(t, 100, got[1], tol)
	// gains {10,0} losses {0,20}: RS = 5/10
	assert.InDelta(t, 100-100/1.5, got[2], tol)
	// gains {10,0,5} losses {0,20,0}: RS = 5/(20/3)
	assert.InDelta(t, 100-100/1.75, got[3], tol)
}

func TestRollingRSI_WindowDropsOldDeltas(t *testing.T) {
	prices := []float64{100, 80}
	for p := 81.0; p <= 94; p++ {
		prices = append(prices, p)
	}
	require.Len(t, prices, 16)

	got := RollingRSI(prices, 14)

	// i=14 still sees the -20 delta: gains 13/14, losses 20/14
	assert.InDelta(t, 100-100/(1+13.0/20.0), got[14], tol)
	// i=15 has rolled it out; a full-history average would not read 100
	assert.InDelta(t, 100, got[15], tol)
}

func TestRollingRSI_ConstantPriceIsNeutral(t *testing.T) {
	got := RollingRSI([]float64{5, 5, 5, 5, 5}, 14)
	for i, v := range got {
		assert.Equal(t, NeutralRSI, v, "rsi[%d]", i)
	}
}

func TestRollingRSI_Bounds(t *testing.T) {
	prices := []float64{1, 3, 2, 8, 0.5, 0.5, 9, 4, 4, 7, 1e6, 1e-6, 3, 2, 2, 5, 6, 1}
	for i, v := range RollingRSI(prices, 14) {
		assert.False(t, math.IsNaN(v), "rsi[%d] is NaN", i)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestRollingRSI_AllLosses(t *testing.T) {
	got := RollingRSI([]float64{10, 9, 8, 7}, 14)
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, 0, got[i], tol)
	}
}
