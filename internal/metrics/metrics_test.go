package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Observe(t *testing.T) {
	r := New()
	r.ObserveHTTP("/", "GET", "200", 20*time.Millisecond)
	r.ObserveFetch("coingecko", "ok", time.Second)
	r.ObserveFetch("coingecko", "error", time.Second)
	r.ObserveSummary("bitcoin", 64000, 41.2, "Hold")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("/", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.fetchTotal.WithLabelValues("coingecko", "error")))
	assert.Equal(t, 64000.0, testutil.ToFloat64(r.lastPrice.WithLabelValues("bitcoin")))
	assert.Equal(t, 41.2, testutil.ToFloat64(r.lastRSI.WithLabelValues("bitcoin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.signalTotal.WithLabelValues("bitcoin", "Hold")))
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveHTTP("/", "GET", "200", time.Millisecond)
		r.ObserveFetch("mock", "ok", time.Millisecond)
		r.ObserveSummary("bitcoin", 1, 50, "Hold")
	})
}
