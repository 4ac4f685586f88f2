package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/splitbuddy/splitbuddy/docs"
	"github.com/splitbuddy/splitbuddy/internal/bill"
	"github.com/splitbuddy/splitbuddy/internal/bill/split"
	"github.com/splitbuddy/splitbuddy/internal/config"
	"github.com/splitbuddy/splitbuddy/internal/database"
	"github.com/splitbuddy/splitbuddy/internal/history"
	"github.com/splitbuddy/splitbuddy/internal/rates"
	"github.com/splitbuddy/splitbuddy/pkg/logging"
	mw "github.com/splitbuddy/splitbuddy/pkg/middleware"
)

// @title        SplitBuddy API
// @version      1.0
// @description  Bill splitting service with equal and itemized allocation strategies
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("Failed to apply schema", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to database")

	// Split strategy factory shared by the bill service
	splitFactory := split.NewFactory()

	// Bill feature
	billRepo := bill.NewRepository(db)
	billService := bill.NewService(billRepo, splitFactory)
	billHandler := bill.NewHandler(billService)

	// History feature (read-only consumer of the bill store)
	historyService := history.NewService(billRepo)
	historyHandler := history.NewHandler(historyService)

	// Exchange rates feature (injected client, no shared singleton)
	ratesClient := rates.NewHTTPClient(cfg.ExchangeRateBaseURL, cfg.ExchangeRateAPIKey, &http.Client{
		Timeout: 10 * time.Second,
	})
	ratesHandler := rates.NewHandler(ratesClient)

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Metrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", mw.RequestIDHeader},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/bills", billHandler.Routes())
		r.Get("/bills/{id}/summary", historyHandler.GetByID)
		r.Mount("/history", historyHandler.Routes())
		r.Mount("/rates", ratesHandler.Routes())
	})

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server starting", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
