package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"", DefaultLevel},
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{" error ", log.ErrorLevel},
		{"chatty", DefaultLevel},
	}

	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestNew_WritesComponentField(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, "info"), "driver")

	logger.Info("batch started", "items", 2)

	out := buf.String()
	if !strings.Contains(out, "batch started") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "component=driver") {
		t.Errorf("expected component field in output, got %q", out)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info message should be filtered at warn level, got %q", buf.String())
	}
}
