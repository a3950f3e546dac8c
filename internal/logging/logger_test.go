package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}

	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Fatalf("level %q: expected %v, got %v", input, want, got)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatalf("expected a logger")
	}
	if NewLogger(Config{Level: "debug", Format: "json", Service: "svc", Version: "v1"}) == nil {
		t.Fatalf("expected a logger")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	// Must not panic.
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}
