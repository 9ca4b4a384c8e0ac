package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"CryptoPulse/internal/collector"
	"CryptoPulse/internal/logger"
	"CryptoPulse/internal/model"
	"CryptoPulse/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Collector computes a report for one coin.
type Collector interface {
	Collect(ctx context.Context, coinID string) (*model.Report, error)
}

// Sender delivers a chat message.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

const sendRetries = 3

// Scheduler runs the periodic report and answers chat commands.
type Scheduler struct {
	Cron        *cron.Cron
	Collector   Collector
	Notifier    Sender
	Logger      *logger.Logger
	DefaultCoin string
	Ctx         context.Context
	Now         func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col Collector, sender Sender, log *logger.Logger, defaultCoin string) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Collector:   col,
		Notifier:    sender,
		Logger:      log,
		DefaultCoin: collector.NormalizeCoinID(defaultCoin),
		Ctx:         ctx,
		Now:         time.Now,
	}
}

// RegisterReport registers the periodic summary for the default coin.
func (s *Scheduler) RegisterReport(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("scheduler started", logger.Int("jobs", len(s.Cron.Entries())))
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("scheduler stopped")
}

// RunReportNow executes the report task immediately.
func (s *Scheduler) RunReportNow() {
	s.reportTask()
}

func (s *Scheduler) reportTask() {
	s.Logger.Info("running scheduled report", logger.String("coin", s.DefaultCoin))
	rep, err := s.Collector.Collect(s.Ctx, s.DefaultCoin)
	if err != nil {
		s.Logger.Error("scheduled report failed", logger.String("coin", s.DefaultCoin), logger.Error(err))
		s.trySend(notifier.FormatError(collector.Describe(err), s.Now()))
		return
	}
	s.trySend(notifier.FormatTelegramReport(rep))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	switch strings.ToLower(fields[0]) {
	case "/signal", "/summary":
		coin := s.DefaultCoin
		if len(fields) > 1 {
			coin = collector.NormalizeCoinID(fields[1])
		}
		if !collector.ValidCoinID(coin) {
			return notifier.FormatError("Invalid coin id. Use lowercase letters, digits and dashes, e.g. /signal bitcoin.", s.Now())
		}
		rep, err := s.Collector.Collect(ctx, coin)
		if err != nil {
			return notifier.FormatError(collector.Describe(err), s.Now())
		}
		return notifier.FormatTelegramReport(rep)
	default:
		return helpText
	}
}

const helpText = "Available commands:\n• /signal [coin] - latest indicators (default coin if omitted)\n• /help - this message"

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, sendRetries); err != nil {
		s.Logger.Error("send notification failed", logger.Error(err))
	}
}
