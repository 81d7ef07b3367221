package ui

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Out
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		emit   func(string, ...interface{})
		symbol string
	}{
		{"info", Info, "→"},
		{"success", Success, "✔"},
		{"fail", Fail, "✘"},
		{"warn", Warn, "○"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			tt.emit("processed %d of %s", 3, "album")

			want := "  " + tt.symbol + " processed 3 of album\n"
			if got := buf.String(); got != want {
				t.Errorf("%s output = %q, want %q", tt.name, got, want)
			}
		})
	}
}

func TestSetOutputDisablesColorForBuffers(t *testing.T) {
	buf := captureOutput(t)
	Fail("bad")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no ANSI escapes in %q", buf.String())
	}
}

func TestHeaderFooter(t *testing.T) {
	buf := captureOutput(t)
	Header()
	Footer()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "polaroid") {
		t.Errorf("header %q missing branding", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  └") {
		t.Errorf("footer %q missing corner", lines[1])
	}
}
