package sensors

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Spec describes one sensor display element. Value is the static true
// reading baked into the catalog; it never changes while the catalog file
// stays the same, and the panel shows it only while the link is online.
type Spec struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Unit  string `json:"unit,omitempty"`
	Value string `json:"value"`
}

type catalogFile struct {
	Sensors []Spec `json:"sensors"`
}

// DefaultCatalog is the built-in sensor set used when no catalog file is
// configured or readable.
func DefaultCatalog() []Spec {
	return []Spec{
		{ID: "temperature", Name: "Temperature", Unit: "°C", Value: "23.5"},
		{ID: "humidity", Name: "Humidity", Unit: "%", Value: "47"},
		{ID: "pressure", Name: "Pressure", Unit: "hPa", Value: "1013.2"},
		{ID: "battery", Name: "Battery", Unit: "%", Value: "87"},
	}
}

func LoadCatalog(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var parsed catalogFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse sensor catalog: %w", err)
	}
	specs, err := validateSpecs(parsed.Sensors)
	if err != nil {
		return nil, fmt.Errorf("invalid sensor catalog: %w", err)
	}
	return specs, nil
}

func validateSpecs(specs []Spec) ([]Spec, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("catalog lists no sensors")
	}
	seen := make(map[string]struct{}, len(specs))
	out := make([]Spec, 0, len(specs))
	for i, spec := range specs {
		spec.ID = strings.TrimSpace(spec.ID)
		spec.Name = strings.TrimSpace(spec.Name)
		spec.Value = strings.TrimSpace(spec.Value)
		if spec.ID == "" {
			return nil, fmt.Errorf("sensor %d has no id", i)
		}
		if spec.Value == "" {
			return nil, fmt.Errorf("sensor %q has no value", spec.ID)
		}
		if _, dup := seen[spec.ID]; dup {
			return nil, fmt.Errorf("duplicate sensor id %q", spec.ID)
		}
		seen[spec.ID] = struct{}{}
		if spec.Name == "" {
			spec.Name = spec.ID
		}
		out = append(out, spec)
	}
	return out, nil
}

// DisplayName is the sensor's row label, unit included when present.
func (s Spec) DisplayName() string {
	if s.Unit == "" {
		return s.Name
	}
	return s.Name + " (" + s.Unit + ")"
}
