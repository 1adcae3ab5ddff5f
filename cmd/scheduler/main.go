// The scheduler drives the recurring projection from outside the API:
// on each tick it finds every space with due rules and runs the same
// catch-up pass the POST /recurring/run endpoint exposes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/hucha-finance/hucha/internal/audit"
	auditStore "github.com/hucha-finance/hucha/internal/audit/store"
	"github.com/hucha-finance/hucha/internal/config"
	"github.com/hucha-finance/hucha/internal/database"
	"github.com/hucha-finance/hucha/internal/recurring"
	recurringStore "github.com/hucha-finance/hucha/internal/recurring/store"
	txStore "github.com/hucha-finance/hucha/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	svc := recurring.NewService(recurringStore.New(db), txStore.New(db), audit.NewRecorder(auditStore.New(db)))

	c := cron.New()

	_, err = c.AddFunc(cfg.Scheduler.Spec, func() {
		runAll(context.Background(), svc)
	})
	if err != nil {
		slog.Error("invalid scheduler spec", "spec", cfg.Scheduler.Spec, "error", err)
		os.Exit(1)
	}

	slog.Info("scheduler started", "spec", cfg.Scheduler.Spec)
	c.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("scheduler stopping")
	<-c.Stop().Done()
}

func runAll(ctx context.Context, svc *recurring.Service) {
	today := time.Now()

	spaces, err := svc.SpacesWithDueRules(ctx, today)
	if err != nil {
		slog.Error("failed to list spaces with due rules", "error", err)
		return
	}

	for _, spaceID := range spaces {
		result, err := svc.RunDue(ctx, spaceID, today)
		if err != nil {
			slog.Error("projection pass failed", "space_id", spaceID, "error", err)
			continue
		}

		slog.Info("projection pass finished",
			"space_id", spaceID,
			"generated", result.Generated,
			"updated_rules", result.UpdatedRules)
	}
}
