// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Command addsuite runs the registered addition test groups and exits 0 when
// every assertion passes, 1 when any fails and 2 on setup errors.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"add-suite/internal/addsuite"
	"add-suite/internal/config"
	"add-suite/internal/harness"
)

const exitSetupError = 2

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return exitSetupError
	}

	// Logs go to stderr so stdout carries only the report
	logger := slog.New(cfg.Log.Handler(stderr))
	slog.SetDefault(logger)

	h := harness.New(
		harness.WithFailFast(cfg.Runner.FailFast),
		harness.WithTags(cfg.Runner.Tags),
		harness.WithLogger(logger),
	)
	if err := addsuite.Register(h); err != nil {
		logger.Error("Failed to register test groups", "error", err)
		return exitSetupError
	}

	logger.Info("Running test groups",
		"groups", len(h.Groups()),
		"fail_fast", cfg.Runner.FailFast,
		"tags", cfg.Runner.Tags)

	report := h.Run(ctx)
	if _, err := report.WriteTo(stdout); err != nil {
		logger.Error("Failed to write report", "error", err)
	}

	totals := report.Totals()
	logger.Info("Run complete",
		"passed", report.Passed(),
		"test_cases", totals.Cases,
		"failed_cases", totals.CasesFailed,
		"assertions", totals.Assertions,
		"failed_assertions", totals.AssertionsFailed)

	return report.ExitCode()
}
