// Package log provides the structured logging facade used across the
// codebase.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context, backed by a pluggable formatter/output
// pipeline so the CLI and tests can choose text or JSON rendering.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("runtime"))
//	l.Info("binlog replayed", log.Int("records", n), log.Dur("elapsed", d))
//
// # Interop
//
// To integrate with libraries expecting *log.Logger, use ToStdLogger or
// RedirectStdLog.
package log
