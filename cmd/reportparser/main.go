package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sellerpulse/internal/config"
	"sellerpulse/internal/dataprocessing"
	"sellerpulse/internal/infrastructure"

	"github.com/google/uuid"
)

func main() {
	in := flag.String("in", "", "path to a client report export (xlsx or csv)")
	out := flag.String("out", "", "output path for the normalized JSON report (defaults to stdout)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: reportparser -in <export file> [-out <json file>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.WithTraceID(context.Background(), uuid.NewString())
	logger = infrastructure.LoggerFromContext(ctx)

	logger.Info("Starting report normalization",
		slog.String("input", *in),
		slog.String("output", *out))

	content, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("Cannot read input file",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(content) > cfg.Parser.MaxInputBytes {
		logger.Error("Input exceeds configured size limit",
			slog.Int("size", len(content)),
			slog.Int("limit", cfg.Parser.MaxInputBytes))
		os.Exit(1)
	}

	parser := dataprocessing.NewParser(logger)
	report, err := parser.ParseReport(content)
	if err != nil {
		logger.Error("Failed to parse report",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("Failed to encode report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *out == "" {
		fmt.Println(string(encoded))
	} else {
		if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
			logger.Error("Cannot create output directory",
				slog.String("path", filepath.Dir(*out)),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := os.WriteFile(*out, encoded, 0644); err != nil {
			logger.Error("Cannot write output file",
				slog.String("path", *out),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("Report normalization complete",
		slog.Int("products", len(report.ProductPerformance)),
		slog.String("output", *out))
}
