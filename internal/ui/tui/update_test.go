package tui

import (
	"strings"
	"testing"

	"linkpanel/internal/sensors"
)

func testSpecs() []sensors.Spec {
	return []sensors.Spec{
		{ID: "temperature", Name: "Temperature", Unit: "°C", Value: "23.5"},
		{ID: "humidity", Name: "Humidity", Unit: "%", Value: "47"},
	}
}

func TestAppendLogLinesWithLimit_DropsOldestLines(t *testing.T) {
	current := "one\ntwo\nthree"
	got := appendLogLinesWithLimit(current, "four\nfive", 3)
	if got != "three\nfour\nfive" {
		t.Fatalf("appendLogLinesWithLimit() = %q", got)
	}
}

func TestAppendLogLinesWithLimit_ZeroLimitClears(t *testing.T) {
	if got := appendLogLinesWithLimit("a\nb", "c", 0); got != "" {
		t.Fatalf("appendLogLinesWithLimit(limit=0) = %q, want empty", got)
	}
}

func TestSplitLogLines_NormalizesLineEndings(t *testing.T) {
	got := splitLogLines("a\r\nb\rc\n")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("splitLogLines() = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSurfaceStoreSnapshotReflectsControllerWrites(t *testing.T) {
	store := &surfaceStore{}
	bindings := store.bindings()
	bindings.Indicator.SetVariant("online")
	bindings.Icon.SetText("◉")
	bindings.Label.SetText("Online")
	bindings.Pulse.SetVisible(false)

	variant, icon, label, pulseVisible, rows := store.snapshot()
	if variant != "online" || icon != "◉" || label != "Online" || pulseVisible {
		t.Fatalf("snapshot = %q %q %q %v", variant, icon, label, pulseVisible)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}

func TestReplaceSensorsPreservesTrueValues(t *testing.T) {
	store := &surfaceStore{}
	targets := store.replaceSensors(testSpecs())
	if len(targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(targets))
	}
	if targets[0].TrueValue() != "23.5" || targets[1].TrueValue() != "47" {
		t.Fatalf("true values = %q %q", targets[0].TrueValue(), targets[1].TrueValue())
	}

	targets[0].SetReading("0")
	_, _, _, _, rows := store.snapshot()
	if rows[0].Reading != "0" {
		t.Fatalf("reading = %q, want 0", rows[0].Reading)
	}
	if !strings.Contains(rows[0].Name, "°C") {
		t.Fatalf("row name missing unit: %q", rows[0].Name)
	}
}
