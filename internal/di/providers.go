package di

import (
	"context"
	"fmt"

	"CryptoPulse/internal/collector"
	"CryptoPulse/internal/config"
	"CryptoPulse/internal/logger"
	"CryptoPulse/internal/metrics"
	"CryptoPulse/internal/notifier"
	"CryptoPulse/internal/scheduler"
	"CryptoPulse/internal/web"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideFetcher creates the CoinGecko market-data fetcher.
func ProvideFetcher(cfg *config.Config) collector.Fetcher {
	return collector.NewCoinGeckoFetcher(
		cfg.DataSource.BaseURL,
		cfg.DataSource.VsCurrency,
		cfg.Proxy,
		cfg.DataSource.Timeout,
	)
}

// ProvideCollector creates the fetch-assemble-evaluate use case.
func ProvideCollector(f collector.Fetcher, cfg *config.Config, log *logger.Logger, rec *metrics.Recorder) *collector.Collector {
	return collector.NewCollector(f, cfg.DataSource.Days, log, rec)
}

// ProvideHandler creates the dashboard and API handler.
func ProvideHandler(col *collector.Collector, log *logger.Logger, cfg *config.Config) *web.Handler {
	return web.NewHandler(col, log, cfg.DataSource.DefaultCoin)
}

// ProvideServer creates the echo HTTP server.
func ProvideServer(h *web.Handler, log *logger.Logger, rec *metrics.Recorder, cfg *config.Config) *web.Server {
	return web.NewServer(h, log, rec,
		web.WithHost(cfg.Server.Host),
		web.WithPort(cfg.Server.Port),
		web.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)
}

// ProvideNotifier creates the Telegram notifier, or nil when no bot token
// is configured.
func ProvideNotifier(cfg *config.Config, log *logger.Logger) *notifier.TelegramNotifier {
	if !cfg.TelegramEnabled() {
		return nil
	}
	return notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
}

// ProvideScheduler creates the report scheduler with the report job
// registered. It is nil when Telegram is disabled.
func ProvideScheduler(
	ctx context.Context,
	col *collector.Collector,
	tn *notifier.TelegramNotifier,
	log *logger.Logger,
	cfg *config.Config,
) (*scheduler.Scheduler, error) {
	if tn == nil {
		return nil, nil
	}
	s := scheduler.NewScheduler(ctx, col, tn, log, cfg.DataSource.DefaultCoin)
	if err := s.RegisterReport(cfg.Schedule.ReportCron); err != nil {
		return nil, err
	}
	return s, nil
}

// ProvideApp creates the application.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	srv *web.Server,
	sched *scheduler.Scheduler,
	tn *notifier.TelegramNotifier,
) *App {
	return &App{
		Config:    cfg,
		Logger:    log,
		Server:    srv,
		Scheduler: sched,
		Notifier:  tn,
	}
}
