package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(log.New(&buf))
	p.done("Validated 3 sheets")

	out := buf.String()
	if !strings.Contains(out, "Validated 3 sheets") {
		t.Errorf("output = %q, want message included", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("output = %q, want elapsed duration in parentheses", out)
	}
}
