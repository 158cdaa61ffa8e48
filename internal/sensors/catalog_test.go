package sensors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCatalog_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensors.json")
	payload := `{"sensors": [
		{"id": "temperature", "name": "Temperature", "unit": "°C", "value": "23.5"},
		{"id": "humidity", "value": " 47 "}
	]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	specs, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("len(specs) = %d, want 2", len(specs))
	}
	if specs[0].Value != "23.5" {
		t.Fatalf("specs[0].Value = %q, want 23.5", specs[0].Value)
	}
	if specs[1].Value != "47" {
		t.Fatalf("specs[1].Value = %q, want trimmed 47", specs[1].Value)
	}
	if specs[1].Name != "humidity" {
		t.Fatalf("specs[1].Name = %q, want id fallback", specs[1].Name)
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"empty list", `{"sensors": []}`, "no sensors"},
		{"missing id", `{"sensors": [{"value": "1"}]}`, "no id"},
		{"missing value", `{"sensors": [{"id": "x"}]}`, "no value"},
		{"duplicate id", `{"sensors": [{"id": "x", "value": "1"}, {"id": "x", "value": "2"}]}`, "duplicate"},
		{"bad json", `{"sensors": [`, "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sensors.json")
			if err := os.WriteFile(path, []byte(tt.payload), 0o644); err != nil {
				t.Fatalf("write catalog: %v", err)
			}
			_, err := LoadCatalog(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("LoadCatalog() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultCatalog_IsValid(t *testing.T) {
	specs, err := validateSpecs(DefaultCatalog())
	if err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if len(specs) == 0 {
		t.Fatal("default catalog empty")
	}
}

func TestSpec_DisplayName(t *testing.T) {
	withUnit := Spec{Name: "Humidity", Unit: "%"}
	if got := withUnit.DisplayName(); got != "Humidity (%)" {
		t.Fatalf("DisplayName() = %q", got)
	}
	bare := Spec{Name: "Link Quality"}
	if got := bare.DisplayName(); got != "Link Quality" {
		t.Fatalf("DisplayName() = %q", got)
	}
}
