//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"CryptoPulse/internal/config"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Market data
		ProvideFetcher,
		ProvideCollector,

		// HTTP surface
		ProvideHandler,
		ProvideServer,

		// Telegram
		ProvideNotifier,
		ProvideScheduler,

		ProvideApp,
	)
	return &App{}, nil
}
