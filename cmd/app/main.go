package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/TierPlan_Go/internal/bootstrap"
	"github.com/osse101/TierPlan_Go/internal/config"
	"github.com/osse101/TierPlan_Go/internal/notice"
	"github.com/osse101/TierPlan_Go/internal/plan"
	"github.com/osse101/TierPlan_Go/internal/scheduler"
	"github.com/osse101/TierPlan_Go/internal/server"
	"github.com/osse101/TierPlan_Go/internal/sse"
	"github.com/osse101/TierPlan_Go/internal/worker"
)

// @title TierPlan API
// @version 1.0
// @description Compensation plan calculator: tier earnings, risk, cash-flow projection and requalification monitoring.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	planCfg, err := cfg.PlanConfig()
	if err != nil {
		slog.Error("Failed to load plan rates", "error", err, "file", cfg.PlanRatesFile)
		os.Exit(1)
	}

	slog.Info("Starting TierPlan",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"rates_file", cfg.PlanRatesFile,
		"poll_interval", cfg.RequalificationPollInterval,
		"visibility_gate", cfg.VisibilityGate)

	// SSE hub doubles as the visibility gate for the requalification monitor
	sseHub := sse.NewHub()
	sseHub.Start()

	eventBus := bootstrap.InitializeEventSystem(sseHub)

	planService := plan.NewService(planCfg, notice.NewBoard(), eventBus, plan.Options{
		CacheSize: cfg.ProjectionCacheSize,
		CacheTTL:  cfg.ProjectionCacheTTL,
		Source:    plan.SourceAPI,
	})

	var gate worker.Gate = sseHub
	if !cfg.VisibilityGate {
		gate = worker.AlwaysAttended
	}

	workerPool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.RequalificationPollInterval, worker.NewRequalificationWorker(planService, gate))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, planService, sseHub)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: workerPool,
		SSEHub:     sseHub,
	})
}
