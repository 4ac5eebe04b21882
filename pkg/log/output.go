package log

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
)

// Output receives formatted log entries.
type Output interface {
	Write(entry *Entry, formatted []byte) error
	Close() error
}

// ConsoleOutput writes entries to stderr (errors) and stdout (the rest).
type ConsoleOutput struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewConsoleOutput returns a console output over the process streams.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{out: os.Stdout, err: os.Stderr}
}

// Write implements Output.
func (c *ConsoleOutput) Write(entry *Entry, formatted []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	w := c.out
	if entry.Level >= ErrorLevel {
		w = c.err
	}
	_, err := w.Write(formatted)
	return err
}

// Close implements Output. The process streams are not closed.
func (c *ConsoleOutput) Close() error { return nil }

// WriterOutput writes entries to an arbitrary io.Writer; used by tests.
type WriterOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterOutput returns an output over w.
func NewWriterOutput(w io.Writer) *WriterOutput { return &WriterOutput{w: w} }

// Write implements Output.
func (o *WriterOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formatted)
	return err
}

// Close implements Output.
func (o *WriterOutput) Close() error { return nil }

// ToStdLogger adapts a Logger into a *log.Logger for libraries that expect
// the standard library interface. Messages are logged at InfoLevel.
func ToStdLogger(l Logger) *stdlog.Logger {
	return stdlog.New(stdWriter{logger: l}, "", 0)
}

// RedirectStdLog routes the standard library's default logger through l.
func RedirectStdLog(l Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdWriter{logger: l})
}

type stdWriter struct{ logger Logger }

func (w stdWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
