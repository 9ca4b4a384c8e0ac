package di

import (
	"context"

	"CryptoPulse/internal/config"
	"CryptoPulse/internal/logger"
	"CryptoPulse/internal/notifier"
	"CryptoPulse/internal/scheduler"
	"CryptoPulse/internal/web"
)

// App holds the wired components. Scheduler and Notifier are nil when
// Telegram is disabled.
type App struct {
	Config    *config.Config
	Logger    *logger.Logger
	Server    *web.Server
	Scheduler *scheduler.Scheduler
	Notifier  *notifier.TelegramNotifier
}

// Start launches the HTTP server and, when enabled, the report schedule
// and Telegram polling. Polling stops when ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	a.Server.Start()
	if a.Scheduler == nil {
		a.Logger.Info("telegram disabled, scheduled reports off")
		return
	}
	a.Scheduler.Start()
	go a.Notifier.StartPolling(ctx, a.Scheduler.HandleCommand)
	a.Logger.Info("telegram polling started", logger.String("report_cron", a.Config.Schedule.ReportCron))
}

// RunReportNow triggers the scheduled report once, if scheduling is on.
func (a *App) RunReportNow() {
	if a.Scheduler != nil {
		go a.Scheduler.RunReportNow()
	}
}

// Shutdown stops the scheduler and drains the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	return a.Server.Stop(ctx)
}
