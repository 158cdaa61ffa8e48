package logging

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestFormatEventLine_OrdersFieldsAlphabetically(t *testing.T) {
	event := Event{
		Time:    time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC),
		Level:   slog.LevelInfo,
		Message: "panel rendered",
		Fields: map[string]any{
			"state":   "connected",
			"elapsed": "12ms",
			"sensors": 3,
		},
	}
	got := FormatEventLine(event)
	want := "09:30:15 [INFO] panel rendered elapsed=12ms sensors=3 state=connected\n"
	if got != want {
		t.Fatalf("FormatEventLine() = %q, want %q", got, want)
	}
}

func TestFormatEventLine_NoFields(t *testing.T) {
	event := Event{
		Time:    time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC),
		Level:   slog.LevelWarn,
		Message: "pulse surface missing",
	}
	got := FormatEventLine(event)
	if got != "09:30:15 [WARN] pulse surface missing\n" {
		t.Fatalf("FormatEventLine() = %q", got)
	}
}

func TestFormatFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "<nil>"},
		{"string", "hello", "hello"},
		{"error", errors.New("boom"), "boom"},
		{"int", 42, "42"},
		{"bytes", []byte("raw"), "raw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFieldValue(tt.value); got != tt.want {
				t.Fatalf("formatFieldValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSubscribe_FanoutAndUnsubscribe(t *testing.T) {
	logger := New(false)
	logger.SetTerminalOutputEnabled(false)

	var got []string
	unsubscribe := logger.Subscribe(func(event Event) {
		got = append(got, event.Message)
	})

	logger.Info("first")
	logger.Debug("hidden debug") // debug disabled: not published
	logger.Warn("second")
	unsubscribe()
	logger.Info("third")

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("subscriber saw %v, want [first second]", got)
	}
}

func TestDebugGate(t *testing.T) {
	logger := New(false)
	logger.SetTerminalOutputEnabled(false)

	var count int
	defer logger.Subscribe(func(Event) { count++ })()

	logger.Debug("suppressed")
	logger.SetDebugEnabled(true)
	logger.Debug("published")

	if count != 1 {
		t.Fatalf("published debug events = %d, want 1", count)
	}
}
