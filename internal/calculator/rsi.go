package calculator

import "math"

// NeutralRSI is reported wherever the RSI ratio is undefined.
const NeutralRSI = 50.0

// RollingRSI computes RSI at every index from simple rolling means of gains
// and losses over the trailing min(period, i) price deltas.
//
// A zero average loss is replaced with the smallest positive float64, so a
// window of pure gains reads 100. Index 0 has no deltas and a window with
// neither gains nor losses is 0/0; both report NeutralRSI.
func RollingRSI(prices []float64, period int) []float64 {
	out := make([]float64, len(prices))
	if len(prices) == 0 {
		return out
	}
	if period <= 0 {
		period = 1
	}
	out[0] = NeutralRSI

	for i := 1; i < len(prices); i++ {
		start := i - period + 1
		if start < 1 {
			start = 1
		}
		var gainSum, lossSum float64
		for j := start; j <= i; j++ {
			delta := prices[j] - prices[j-1]
			if delta > 0 {
				gainSum += delta
			} else {
				lossSum -= delta
			}
		}
		count := float64(i - start + 1)
		out[i] = rsiFromAverages(gainSum/count, lossSum/count)
	}
	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgGain == 0 && avgLoss == 0 {
		return NeutralRSI
	}
	if avgLoss == 0 {
		avgLoss = math.SmallestNonzeroFloat64
	}
	rs := avgGain / avgLoss
	rsi := 100.0 - 100.0/(1.0+rs)
	if math.IsNaN(rsi) {
		return NeutralRSI
	}
	return rsi
}
