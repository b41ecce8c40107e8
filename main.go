package main

//go:generate swag init

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/satheeshds/proforma/config"
	"github.com/satheeshds/proforma/db"
	_ "github.com/satheeshds/proforma/docs"
	"github.com/satheeshds/proforma/handlers"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title           Proforma Invoice API
// @version         1.0.0
// @description     API for reading, saving and printing the proforma invoice.
// @host            localhost:8080
// @BasePath        /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Configure structured logging
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	// Open database
	database, err := db.Open(db.Options{Driver: cfg.DBDriver, Path: cfg.DBPath, URL: cfg.DatabaseURL})
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Set shared repository for handlers
	handlers.Invoices = db.NewInvoiceRepository(database)

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", handlers.RegisterAPI)

	// Print view
	r.Get("/", handlers.PrintProformaInvoice)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
