package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type PanelSettings struct {
	CatalogPath    string `json:"catalog_path"`
	Debug          bool   `json:"debug"`
	PulseAnimation bool   `json:"pulse_animation"`
	ShowLogs       bool   `json:"show_logs"`
}

// DefaultSettings holds the values used when no settings file exists yet.
func DefaultSettings() PanelSettings {
	return PanelSettings{PulseAnimation: true}
}

func SettingsPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "linkpanel", "panel-settings.json"), nil
}

// LoadSettings reads the persisted panel settings. A missing settings file
// is not an error; the defaults apply until the first save.
func LoadSettings() (PanelSettings, error) {
	path, err := SettingsPath()
	if err != nil {
		return DefaultSettings(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}
	var settings PanelSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

func SaveSettings(settings PanelSettings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}
