package calculator

import "math"

// clamp maps ±Inf to ±MaxFloat64 and NaN to 0 so extreme moves stay
// finite and encodable.
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// PriceChanges returns the fractional change of each price against the
// previous one. The first element is always 0, as is any change whose
// previous price is 0.
func PriceChanges(prices []float64) []float64 {
	changes := make([]float64, len(prices))
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 {
			continue
		}
		changes[i] = clamp((prices[i] - prev) / prev)
	}
	return changes
}

// Flows splits price moves into inflow (price weighted rises) and outflow
// (price weighted falls). prices and changes must have equal length.
func Flows(prices, changes []float64) (inflow, outflow []float64) {
	inflow = make([]float64, len(prices))
	outflow = make([]float64, len(prices))
	for i, pc := range changes {
		switch {
		case pc > 0:
			inflow[i] = clamp(prices[i] * pc)
		case pc < 0:
			outflow[i] = clamp(prices[i] * math.Abs(pc))
		}
	}
	return inflow, outflow
}

// VolumePercentOfCap returns 100*volume/marketCap per index, or 0 where the
// market cap is 0.
func VolumePercentOfCap(volumes, caps []float64) []float64 {
	out := make([]float64, len(volumes))
	for i, v := range volumes {
		if caps[i] == 0 {
			continue
		}
		out[i] = clamp(100 * v / caps[i])
	}
	return out
}
