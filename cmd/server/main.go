// Package main provides the entry point for the matchpulse API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/matchpulse/internal/api"
	"github.com/yourusername/matchpulse/internal/config"
	"github.com/yourusername/matchpulse/internal/fixtures"
	"github.com/yourusername/matchpulse/internal/health"
	"github.com/yourusername/matchpulse/internal/logger"
	"github.com/yourusername/matchpulse/internal/metrics"
	"github.com/yourusername/matchpulse/internal/scheduler"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
}

var rootCmd = &cobra.Command{
	Use:   "matchpulse-server",
	Short: "Football live analytics and betting recommendation service",
	Long: `Serves mock football match data and computes probability estimates,
expected value and fractional Kelly stake recommendations from live match
statistics and bookmaker odds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     Version,
		"commit":      GitCommit,
	}).Info("matchpulse starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mock fixture store and its refresh scheduler
	store := fixtures.NewStore(time.Duration(cfg.Fixtures.SnapshotTTLSeconds)*time.Second, appLog)

	sched := scheduler.NewScheduler(store, appLog)
	if err := sched.ScheduleRefresh(cfg.Fixtures.RefreshIntervalSeconds); err != nil {
		return fmt.Errorf("failed to schedule fixture refresh: %w", err)
	}
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			appLog.WithError(err).Error("Error stopping scheduler")
		}
	}()

	// Metrics server
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		metricsMux := http.NewServeMux()
		metricsMux.Handle(cfg.Metrics.Path, metrics.Handler())
		metricsSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: metricsMux,
		}
		go func() {
			appLog.WithField("port", cfg.Metrics.Port).Info("Metrics server starting")
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLog.WithError(err).Error("Metrics server error")
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = metricsSrv.Shutdown(shutdownCtx)
		}()
	}

	// Health check server
	var healthSrv *health.Server
	if cfg.Health.Enabled {
		healthSrv = health.NewServer(health.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Port:        fmt.Sprintf("%d", cfg.Health.Port),
			Logger:      appLog,
			Fixtures:    store,
		})
		if err := healthSrv.Start(ctx); err != nil {
			return fmt.Errorf("failed to start health server: %w", err)
		}
	}

	// API server
	apiServer := api.NewServer(cfg, store, appLog)

	errCh := make(chan error, 1)
	go func() {
		errCh <- apiServer.Start()
	}()

	if healthSrv != nil {
		healthSrv.SetReady(true)
	}

	appLog.WithFields(logrus.Fields{
		"addr":            cfg.ListenAddr(),
		"metrics_enabled": cfg.Metrics.Enabled,
		"health_enabled":  cfg.Health.Enabled,
	}).Info("matchpulse is running")

	// Wait for shutdown signal or server failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		appLog.WithField("signal", sig).Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("API server failed: %w", err)
		}
		return nil
	}

	if healthSrv != nil {
		healthSrv.SetReady(false)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("Error during API server shutdown")
	}

	cancel()
	appLog.Info("matchpulse shut down successfully")
	return nil
}
