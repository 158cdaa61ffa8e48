package theme

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestPulseColorAt_StaysOnRamp(t *testing.T) {
	for phase := range 50 {
		got := PulseColorAt(phase)
		if !hexColor.MatchString(got) {
			t.Fatalf("PulseColorAt(%d) = %q, not a hex color", phase, got)
		}
	}
}

func TestInterpolateHex_Endpoints(t *testing.T) {
	if got := interpolateHex("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("t=0: %q", got)
	}
	if got := interpolateHex("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Fatalf("t=1: %q", got)
	}
	if got := interpolateHex("#000000", "#0000ff", 0.5); got != "#00007f" {
		t.Fatalf("t=0.5: %q", got)
	}
}

func TestParseHexRGB_RejectsMalformedInput(t *testing.T) {
	r, g, b := parseHexRGB("nope")
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("parseHexRGB fallback = %d %d %d", r, g, b)
	}
	r, g, b = parseHexRGB("#102030")
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Fatalf("parseHexRGB = %d %d %d", r, g, b)
	}
}

func TestVariantBorderColor(t *testing.T) {
	if VariantBorderColor("online") == VariantBorderColor("offline") {
		t.Fatal("variants map to the same accent color")
	}
}
