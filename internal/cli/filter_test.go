package cli

import (
	"testing"

	"github.com/c-h3xcode/td/internal/tqueue"
	"github.com/c-h3xcode/td/pkg/eventid"
)

func mustFilter(t *testing.T, expr string) eventFilter {
	t.Helper()
	f, err := newEventFilter(expr)
	if err != nil {
		t.Fatalf("compile %q: %v", expr, err)
	}
	return f
}

func TestFilterDisabled(t *testing.T) {
	f := mustFilter(t, "")
	if !f.Eval(1, tqueue.Event{ID: eventid.ID(1)}, 0) {
		t.Fatalf("disabled filter must pass everything")
	}
}

func TestFilterMatches(t *testing.T) {
	ev := tqueue.Event{ID: eventid.ID(7), Data: []byte("payment failed"), ExpiresAt: 5000}

	cases := []struct {
		expr string
		want bool
	}{
		{"queue == 3", true},
		{"queue == 4", false},
		{"id >= 7", true},
		{"text.contains('failed')", true},
		{"text.contains('ok')", false},
		{"size > 5 && expires_ms > now_ms", true},
		{"expires_ms <= now_ms", false},
	}
	for _, tc := range cases {
		f := mustFilter(t, tc.expr)
		if got := f.Eval(3, ev, 1000); got != tc.want {
			t.Errorf("eval %q = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestFilterBadExpression(t *testing.T) {
	if _, err := newEventFilter("queue =="); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := newEventFilter("no_such_var > 0"); err == nil {
		t.Fatalf("expected check error")
	}
}

func TestFilterNonBoolResultRejectsEvent(t *testing.T) {
	f := mustFilter(t, "size")
	if f.Eval(1, tqueue.Event{Data: []byte("x")}, 0) {
		t.Fatalf("non-boolean result must not pass")
	}
}
