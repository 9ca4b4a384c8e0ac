package calculator

// Mean returns the simple average of the trailing min(window, len(values))
// values, clamped to a finite value. A non-positive window averages the
// whole slice. Empty input yields 0.
func Mean(values []float64, window int) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if window <= 0 || window > n {
		window = n
	}
	sum := 0.0
	for i := n - window; i < n; i++ {
		sum += values[i]
	}
	return clamp(sum / float64(window))
}

// Sum returns the total of all values.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return clamp(total)
}
