package main

import (
	"os"

	"github.com/c-h3xcode/td/internal/cli"
	logpkg "github.com/c-h3xcode/td/pkg/log"
)

func main() {
	level := os.Getenv("TQUEUE_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if os.Getenv("TQUEUE_LOG_FORMAT") == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Pebble logs through the standard library.
	logpkg.RedirectStdLog(logger)

	if err := cli.NewRoot(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
