package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"ics-audit/roledep/pkg/history"
	"ics-audit/roledep/pkg/report"
	"ics-audit/roledep/pkg/telemetry/logging"
	"ics-audit/roledep/pkg/telemetry/metrics"
	"ics-audit/roledep/pkg/watch"
)

var watchFlags struct {
	schedule      string
	debounce      time.Duration
	metricsListen string
	noMetrics     bool
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate reports whenever the export changes",
	Long: `Run an initial generation pass, then keep the reports current: the export
file is watched for changes (debounced) and an optional cron schedule forces
periodic regeneration. A Prometheus metrics endpoint is served while watch
mode runs.

Examples:
  roledep watch --export system-export.xml --roles-file idle-roles.txt

  # Nightly forced refresh alongside change-driven regeneration
  roledep watch --export system-export.xml --roles-file idle-roles.txt --schedule "0 6 * * *"`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.schedule, "schedule", "s", "", "cron expression for periodic regeneration")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 0, "quiet period before regenerating after a change")
	watchCmd.Flags().StringVar(&watchFlags.metricsListen, "metrics-listen", "", "metrics endpoint listen address")
	watchCmd.Flags().BoolVar(&watchFlags.noMetrics, "no-metrics", false, "disable the metrics endpoint")

	// Input flags shared with the report command.
	watchCmd.Flags().StringVarP(&reportFlags.export, "export", "e", "", "configuration export XML file")
	watchCmd.Flags().StringVar(&reportFlags.rolesFile, "roles-file", "", "idle-roles file, one role per line")
	watchCmd.Flags().StringArrayVar(&reportFlags.roles, "role", nil, "idle role name (repeatable)")
	watchCmd.Flags().StringVarP(&reportFlags.outDir, "out-dir", "o", "", "report output directory")
	watchCmd.Flags().StringArrayVarP(&reportFlags.groups, "group", "g", nil, "report group to generate (repeatable; default all)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyReportFlags(cfg)
	if watchFlags.schedule != "" {
		cfg.Watch.Schedule = watchFlags.schedule
	}
	if watchFlags.debounce > 0 {
		cfg.Watch.Debounce = watchFlags.debounce
	}
	if watchFlags.metricsListen != "" {
		cfg.Watch.MetricsListenAddress = watchFlags.metricsListen
	}
	if watchFlags.noMetrics {
		cfg.Watch.MetricsListenAddress = ""
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	idleRoles, err := report.LoadIdleRoles(cfg.Roles)
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path, logger)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var collector *metrics.Collector
	if cfg.Watch.MetricsListenAddress != "" {
		registry := prometheus.NewRegistry()
		collector = metrics.NewCollector(registry)

		server := &http.Server{
			Addr:    cfg.Watch.MetricsListenAddress,
			Handler: metrics.Handler(registry),
		}
		go func() {
			logger.Info("metrics endpoint listening", "addr", cfg.Watch.MetricsListenAddress)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics endpoint failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()
	}

	runner := report.NewRunner(cfg, idleRoles, logging.Component(logger, "report"), store, collector)
	regenerate := func() {
		if err := runner.Run(ctx); err != nil {
			logger.Error("generation pass failed", "error", err)
		}
	}

	// Initial pass before settling into watch mode.
	regenerate()

	scheduler := watch.NewScheduler(cfg.Watch.Schedule, logger)
	if err := scheduler.Start(regenerate); err != nil {
		return err
	}
	defer scheduler.Stop()

	watcher, err := watch.NewWatcher(cfg.Export.Path, cfg.Watch.Debounce, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	logger.Info("watching export", "path", cfg.Export.Path, "debounce", cfg.Watch.Debounce)
	if err := watcher.Watch(ctx, regenerate); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
