package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/macrotrack/macrotrack-console/internal/client"
	"github.com/macrotrack/macrotrack-console/internal/config"
	"github.com/macrotrack/macrotrack-console/internal/console"
	"github.com/macrotrack/macrotrack-console/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	config.SetupLogger(cfg.Env, os.Stdout)
	if envErr != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	api := client.New(cfg.APIBaseURL, client.WithToken(cfg.APIToken))
	panel := console.NewPanel(service.NewAuthService(api))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.ConsolePort,
		Handler:           console.NewHandler(panel, api.BaseURL()).Routes(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("console starting", "port", cfg.ConsolePort, "backend", api.BaseURL(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down console")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("console stopped")
}
