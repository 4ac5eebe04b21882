package cli

import (
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/c-h3xcode/td/internal/tqueue"
)

// eventFilter wraps a compiled CEL program used by the read command to select
// events for output. When disabled, Eval always returns true.
type eventFilter struct {
	prog    cel.Program
	enabled bool
}

func newEventFilter(expr string) (eventFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return eventFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("queue", cel.IntType),
		cel.Variable("id", cel.IntType),
		cel.Variable("expires_ms", cel.IntType),
		cel.Variable("size", cel.IntType),
		cel.Variable("text", cel.StringType),
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return eventFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return eventFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return eventFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return eventFilter{}, err
	}
	return eventFilter{prog: prog, enabled: true}, nil
}

// Eval evaluates the compiled expression against an event. When disabled,
// returns true.
func (f eventFilter) Eval(queueID tqueue.QueueID, ev tqueue.Event, nowMs int64) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"queue":      int64(queueID),
		"id":         int64(ev.ID.Int32()),
		"expires_ms": ev.ExpiresAt,
		"size":       int64(len(ev.Data)),
		"text":       string(ev.Data),
		"now_ms":     nowMs,
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
