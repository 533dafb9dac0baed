package main

//go:generate swag init

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/satheeshds/commissions/commission"
	"github.com/satheeshds/commissions/config"
	"github.com/satheeshds/commissions/dashboard"
	"github.com/satheeshds/commissions/db"
	_ "github.com/satheeshds/commissions/docs"
	"github.com/satheeshds/commissions/handlers"
	"github.com/satheeshds/commissions/repository"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title           Sales Commission Dashboard API
// @version         1.0.0
// @description     API for property deals, commission tranches, agents, branch targets and the commission dashboard.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.basic  BasicAuth

func main() {
	cfg := config.Load()

	// Configure structured logging
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open database
	database, err := db.Open(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(context.Background(), database, cfg.DBDriver); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Shared store and dashboard for handlers
	store := repository.New(database)
	handlers.Repo = store
	handlers.Dashboard = dashboard.NewService(store, store, commission.Resolver{ProrateCredit: cfg.ProrateCredit}, cfg.CacheTTL)

	// Router setup
	r := chi.NewRouter()
	r.Use(handlers.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API routes with basic auth
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.BasicAuth(cfg.AuthUser, cfg.AuthPass))
		r.Use(handlers.RateLimit(cfg.RateLimitRPS))

		// Transactions
		r.Get("/transactions", handlers.ListTransactions)
		r.Post("/transactions", handlers.CreateTransaction)
		r.Get("/transactions/{id}", handlers.GetTransaction)
		r.Put("/transactions/{id}", handlers.UpdateTransaction)
		r.Delete("/transactions/{id}", handlers.DeleteTransaction)

		// Tranches
		r.Get("/transactions/{id}/tranches", handlers.ListTranches)
		r.Put("/transactions/{id}/tranches", handlers.ReplaceTranches)

		// Agents
		r.Get("/agents", handlers.ListAgents)
		r.Post("/agents", handlers.CreateAgent)
		r.Get("/agents/{id}", handlers.GetAgent)
		r.Put("/agents/{id}", handlers.UpdateAgent)
		r.Delete("/agents/{id}", handlers.DeleteAgent)

		// Branch targets
		r.Get("/targets", handlers.ListTargets)
		r.Post("/targets", handlers.CreateTarget)
		r.Get("/targets/{id}", handlers.GetTarget)
		r.Put("/targets/{id}", handlers.UpdateTarget)
		r.Delete("/targets/{id}", handlers.DeleteTarget)

		// Dashboard
		r.Get("/dashboard/summary", handlers.GetSummary)
		r.Get("/dashboard/branches", handlers.GetBranches)
		r.Get("/dashboard/agents", handlers.GetAgentRanking)
		r.Get("/dashboard/monthly", handlers.GetMonthly)
		r.Get("/dashboard/trend", handlers.GetTrend)
		r.Get("/dashboard/plan", handlers.GetPlan)
		r.Get("/dashboard/installments", handlers.GetInstallments)
	})

	// Swagger UI
	r.Get("/swagger/doc.json", handlers.SwaggerDoc)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server starting", "address", addr, "driver", cfg.DBDriver)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
