package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/macrotrack/macrotrack-console/internal/config"
	"github.com/macrotrack/macrotrack-console/internal/mockapi"
)

func main() {
	failEmail := flag.Bool("fail-email", false, "make every email delivery fail")
	recipient := flag.String("test-recipient", "", "recipient of the /emails/test-sendgrid message")
	flag.Parse()

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
	if err := cfg.ValidateMockAPI(); err != nil {
		slog.Error("refusing to start", "error", err)
		os.Exit(1)
	}

	api := mockapi.New(mockapi.Options{
		JWTSecret:     cfg.JWTSecret,
		JWTExpiry:     cfg.JWTExpiry,
		TestRecipient: *recipient,
		FailEmail:     *failEmail,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.MockAPIPort,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("mock api starting", "port", cfg.MockAPIPort, "env", cfg.Env, "fail_email", *failEmail)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down mock api")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("mock api stopped", "emails_recorded", len(api.SentEmails()))
}
