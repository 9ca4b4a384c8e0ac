package calculator

// EMA returns the exponential moving average of values with smoothing
// factor 2/(span+1), seeded from the first value.
func EMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// MACD returns the fast-minus-slow EMA line and its signal EMA.
func MACD(prices []float64, fast, slow, signal int) (macd, signalLine []float64) {
	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)
	macd = make([]float64, len(prices))
	for i := range prices {
		macd[i] = fastEMA[i] - slowEMA[i]
	}
	return macd, EMA(macd, signal)
}
