package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roguegen/internal/config"
	"github.com/samdwyer/roguegen/internal/telemetry"
)

var shutdownTelemetry func(context.Context) error

// bootstrap loads .env, sets up Honeycomb-style OTEL variables and telemetry.
func bootstrap(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	// Log to stderr so the printed map stays clean on stdout
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	shutdown, err := telemetry.Setup(cmd.Context())
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without tracing")
		return nil
	}
	shutdownTelemetry = shutdown
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if shutdownTelemetry == nil {
		return
	}
	if err := shutdownTelemetry(context.Background()); err != nil {
		log.Printf("Error shutting down telemetry: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ROGUEGEN_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_ROGUEGEN_DATASET")
	if dataset == "" {
		dataset = "roguegen"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
