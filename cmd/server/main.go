package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CryptoPulse/internal/config"
	"CryptoPulse/internal/di"
	"CryptoPulse/internal/logger"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := di.InitializeApp(ctx, cfg)
	if err != nil {
		log.Fatalf("[FATAL] app initialization: %v", err)
	}
	l := app.Logger
	l.Info("CryptoPulse starting",
		logger.String("addr", app.Server.Addr()),
		logger.String("default_coin", cfg.DataSource.DefaultCoin),
	)

	app.Start(ctx)

	// Optional: run the report immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		l.Info("RUN_ON_START enabled, executing report now")
		app.RunReportNow()
	}

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	l.Info("shutdown signal received, stopping...")
	cancel()
	if err := app.Shutdown(context.Background()); err != nil {
		l.Error("shutdown failed", logger.Error(err))
	}
	l.Info("CryptoPulse stopped")
}
