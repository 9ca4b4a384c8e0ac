package collector

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"CryptoPulse/internal/logger"
	"CryptoPulse/internal/metrics"
	"CryptoPulse/internal/model"
	"CryptoPulse/internal/series"
	"CryptoPulse/internal/strategy"
)

// DefaultCoin is used when a caller does not name one.
const DefaultCoin = "bitcoin"

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Chart *model.MarketChart
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMarketChart(_ context.Context, coinID string, days int) (*model.MarketChart, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Chart != nil {
		return m.Chart, nil
	}
	return generateMockChart(coinID, m.Price, days*24), nil
}

// generateMockChart produces hourly samples oscillating around basePrice.
func generateMockChart(coinID string, basePrice float64, count int) *model.MarketChart {
	now := time.Now().UTC().Truncate(time.Hour)
	chart := &model.MarketChart{CoinID: coinID, FetchedAt: now}
	for i := 0; i < count; i++ {
		ts := now.Add(-time.Duration(count-i) * time.Hour)
		wave := float64(i%48-24) * 0.002
		p := basePrice * (1 + wave)
		chart.Prices = append(chart.Prices, model.SamplePoint{Time: ts, Value: p})
		chart.Volumes = append(chart.Volumes, model.SamplePoint{Time: ts, Value: 1_000_000 + float64(i%24)*10_000})
		chart.MarketCaps = append(chart.MarketCaps, model.SamplePoint{Time: ts, Value: p * 19_000_000})
	}
	return chart
}

// Collector orchestrates fetching, alignment and indicator computation.
type Collector struct {
	Fetcher Fetcher
	Days    int
	Logger  *logger.Logger
	Metrics *metrics.Recorder
	Now     func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, days int, log *logger.Logger, rec *metrics.Recorder) *Collector {
	if log == nil {
		log = logger.Nop()
	}
	return &Collector{Fetcher: fetcher, Days: days, Logger: log, Metrics: rec, Now: time.Now}
}

var coinIDExpr = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// MaxCoinIDLen bounds the length of a coin id.
const MaxCoinIDLen = 64

// ValidCoinID reports whether id is a normalized coin id: lowercase
// letters and digits in dash-separated groups, at most MaxCoinIDLen long.
func ValidCoinID(id string) bool {
	return len(id) <= MaxCoinIDLen && coinIDExpr.MatchString(id)
}

// NormalizeCoinID lowercases and trims an id, falling back to DefaultCoin.
func NormalizeCoinID(coinID string) string {
	id := strings.ToLower(strings.TrimSpace(coinID))
	if id == "" {
		return DefaultCoin
	}
	return id
}

// Collect fetches market history once and computes all indicators.
// Failures are *EmptyInputError or *UpstreamFetchError.
func (c *Collector) Collect(ctx context.Context, coinID string) (*model.Report, error) {
	coinID = NormalizeCoinID(coinID)
	source := c.Fetcher.Name()

	start := time.Now()
	chart, err := c.Fetcher.FetchMarketChart(ctx, coinID, c.Days)
	took := time.Since(start)
	if err != nil {
		c.Metrics.ObserveFetch(source, "error", took)
		c.Logger.Error("market data fetch failed",
			logger.String("coin", coinID),
			logger.String("source", source),
			logger.Duration("took", took),
			logger.Error(err),
		)
		return nil, &UpstreamFetchError{CoinID: coinID, Source: source, Err: err}
	}

	records, err := series.Assemble(chart.Prices, chart.Volumes, chart.MarketCaps)
	if err != nil {
		if errors.Is(err, series.ErrEmptyInput) {
			c.Metrics.ObserveFetch(source, "empty", took)
			c.Logger.Warn("no price data returned", logger.String("coin", coinID), logger.String("source", source))
			return nil, &EmptyInputError{CoinID: coinID}
		}
		return nil, err
	}
	c.Metrics.ObserveFetch(source, "ok", took)

	rows, summary := strategy.Evaluate(records)
	from, to := series.Span(records)

	c.Metrics.ObserveSummary(coinID, summary.Last.Price, summary.Last.RSI, summary.Last.Signal.String())
	c.Logger.Info("indicators computed",
		logger.String("coin", coinID),
		logger.Int("points", len(rows)),
		logger.Time("from", from),
		logger.Time("to", to),
		logger.Float64("rsi", summary.Last.RSI),
		logger.String("signal", summary.Last.Signal.String()),
		logger.Duration("fetch_took", took),
	)

	return &model.Report{
		CoinID:      coinID,
		Rows:        rows,
		Summary:     summary,
		GeneratedAt: c.Now(),
	}, nil
}
