// Command apictl calls the macrotrack backend from the command line.
//
//	apictl [-server URL] [-token TOKEN] <command> [flags]
//
// Commands: health, signup, login, me, reset, sendgrid, test-table,
// goals get|set, inspect-token.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/macrotrack/macrotrack-console/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
	// Logs go to stderr so stdout stays machine-readable.
	config.SetupLogger(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], cfg, os.Stdout, os.Stderr))
}
