package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, "info", false)

	logger.Info("loaded", "table", "Tb Yaws")
	out := buf.String()
	if !strings.Contains(out, "loaded") || !strings.Contains(out, "Tb Yaws") {
		t.Errorf("unexpected text output: %q", out)
	}

	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug should be filtered at info level: %q", buf.String())
	}
}

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, "debug", true)

	logger.Debug("loaded", "compounds", 18)
	out := buf.String()
	if !strings.Contains(out, `"msg":"loaded"`) || !strings.Contains(out, `"compounds":18`) {
		t.Errorf("unexpected JSON output: %q", out)
	}
}

func TestSetupInstallsDefault(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "info", false)

	slog.Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Error("Setup must install the default logger")
	}
}
