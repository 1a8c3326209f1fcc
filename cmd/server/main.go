// cmd/server/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sozercan/schema-helper/internal/analyzer"
	"github.com/sozercan/schema-helper/internal/config"
	"github.com/sozercan/schema-helper/internal/llm"
	"github.com/sozercan/schema-helper/internal/logging"
	"github.com/sozercan/schema-helper/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup, the log file
// included, always happens.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	llmProvider, err := llm.NewOpenAI(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	analyzer := analyzer.New(llmProvider, cfg.Analyzer)

	srv, err := server.New(*cfg, analyzer)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
