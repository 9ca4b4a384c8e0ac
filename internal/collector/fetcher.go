package collector

import (
	"context"

	"CryptoPulse/internal/model"
)

// Fetcher defines the interface for fetching market history.
type Fetcher interface {
	// FetchMarketChart returns price, volume and market-cap samples covering
	// the trailing number of days. An unknown coin yields an empty chart,
	// not an error.
	FetchMarketChart(ctx context.Context, coinID string, days int) (*model.MarketChart, error)
	Name() string
}
