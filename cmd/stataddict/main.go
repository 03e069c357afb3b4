package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xaenox/stataddict/internal/classifier"
	"github.com/xaenox/stataddict/internal/history"
	"github.com/xaenox/stataddict/internal/report"
	"github.com/xaenox/stataddict/internal/stats"
	"github.com/xaenox/stataddict/internal/storage"
	"github.com/xaenox/stataddict/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	version     = "1.0"
	exitFailure = -1
)

var errUnknownArgument = errors.New("unknown argument")

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) <= 1 {
		usage(stdout, programName(args))
		return 0
	}

	showIDs, err := parseOptionalArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "\"%s\" - unknown argument.\n", args[2])
		return exitFailure
	}

	// Load configuration
	configPath := os.Getenv("STATADDICT_CONFIG")
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Failed to load configuration.")
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	// Initialize logger
	logger := newLogger(cfg.Log, stderr)
	defer logger.Sync()

	doc, err := history.Load(args[1])
	if err != nil {
		logger.Debug("Failed to load chat history", zap.Error(err), zap.String("path", args[1]))
		fmt.Fprintln(stderr, "Failed to preprocess the JSON file.")
		return exitFailure
	}

	clf, err := classifier.NewMediaClassifier().WithMediaTypes(cfg.Classifier.MediaTypes)
	if err != nil {
		logger.Debug("Invalid media type table", zap.Error(err))
		fmt.Fprintln(stderr, "Failed to load configuration.")
		return exitFailure
	}

	aggregator := stats.NewAggregator(storage.NewMemoryStorage(), clf, logger)
	set, err := aggregator.Generate(doc)
	if err != nil {
		var processingErr *stats.ProcessingError
		if errors.As(err, &processingErr) {
			logger.Debug("Chat history has an unexpected structure", zap.String("reason", processingErr.Reason))
		}
		fmt.Fprintln(stderr, "Failed to generate statistics.")
		return exitFailure
	}

	reporter := report.New(stdout, report.Options{
		ShowIDs: showIDs || cfg.Report.ShowIDs,
		Top:     cfg.Report.Top,
		Credit:  cfg.Report.Credit,
	})
	if err := reporter.Render(set); err != nil {
		logger.Error("Failed to write report", zap.Error(err))
		return exitFailure
	}

	return 0
}

// parseOptionalArgs handles the switch after the file name. Only the
// second argument is inspected.
func parseOptionalArgs(args []string) (showIDs bool, err error) {
	if len(args) <= 2 {
		return false, nil
	}

	switch args[2] {
	case "-id":
		return true, nil
	default:
		return false, errUnknownArgument
	}
}

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, `StatAddict for Telegram
Version %s
(C) 2024 Nazar Fedorenko

Generates statistics based on an exported Telegram group chat history in a JSON file.

Usage:
%s [chat_history.json] (optional switch)

Optional switch:
-id - show user IDs
`, version, prog)
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "stataddict"
	}
	return filepath.Base(args[0])
}

func newLogger(cfg config.LogConfig, w io.Writer) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if cfg.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}
