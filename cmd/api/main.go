package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hucha-finance/hucha/internal/audit"
	auditStore "github.com/hucha-finance/hucha/internal/audit/store"
	"github.com/hucha-finance/hucha/internal/config"
	"github.com/hucha-finance/hucha/internal/copilot"
	"github.com/hucha-finance/hucha/internal/database"
	"github.com/hucha-finance/hucha/internal/debt"
	debtStore "github.com/hucha-finance/hucha/internal/debt/store"
	huchaHttp "github.com/hucha-finance/hucha/internal/http"
	copilotHandler "github.com/hucha-finance/hucha/internal/http/copilot"
	debtHandler "github.com/hucha-finance/hucha/internal/http/debt"
	obligationHandler "github.com/hucha-finance/hucha/internal/http/obligation"
	recurringHandler "github.com/hucha-finance/hucha/internal/http/recurring"
	txHandler "github.com/hucha-finance/hucha/internal/http/transaction"
	"github.com/hucha-finance/hucha/internal/obligation"
	obligationStore "github.com/hucha-finance/hucha/internal/obligation/store"
	"github.com/hucha-finance/hucha/internal/recurring"
	recurringStore "github.com/hucha-finance/hucha/internal/recurring/store"
	"github.com/hucha-finance/hucha/internal/transaction"
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

	ctx := context.Background()

	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	extractor, err := copilot.NewExtractor(ctx, cfg.Copilot.Model)
	if err != nil {
		slog.Error("failed to create extractor", "error", err)
		os.Exit(1)
	}

	transactions := txStore.New(db)

	var (
		recorder           = audit.NewRecorder(auditStore.New(db))
		transactionService = transaction.NewService(transactions)
		obligationService  = obligation.NewService(obligationStore.New(db))
		debtService        = debt.NewService(debtStore.New(db), transactions, obligationService, recorder)
		recurringService   = recurring.NewService(recurringStore.New(db), transactions, recorder)
		copilotService     = copilot.NewService(obligationService, debtService, transactions, extractor, recorder)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		debtH        = debtHandler.NewHandler(debtService)
		obligationH  = obligationHandler.NewHandler(obligationService)
		recurringH   = recurringHandler.NewHandler(recurringService)
		copilotH     = copilotHandler.NewHandler(copilotService, cfg.Copilot.MaxUploadBytes)
	)

	router := huchaHttp.New(huchaHttp.Config{
		JWTSecret:      cfg.Auth.JWTSecret,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, transactionH, debtH, obligationH, recurringH, copilotH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
