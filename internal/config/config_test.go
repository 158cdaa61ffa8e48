package config

import "testing"

func TestMergeOptionsWithSettings_CLIWins(t *testing.T) {
	saved := PanelSettings{
		CatalogPath:    "/saved/sensors.json",
		Debug:          true,
		PulseAnimation: true,
	}

	merged := MergeOptionsWithSettings(Options{Catalog: "/cli/sensors.json"}, saved)
	if merged.Catalog != "/cli/sensors.json" {
		t.Fatalf("Catalog = %q, want CLI value to win", merged.Catalog)
	}
	if !merged.Debug {
		t.Fatal("Debug should be inherited from saved settings")
	}
	if merged.NoPulse {
		t.Fatal("NoPulse should stay false when saved settings enable the pulse")
	}
}

func TestMergeOptionsWithSettings_FillsFromSaved(t *testing.T) {
	saved := PanelSettings{
		CatalogPath:    "/saved/sensors.json",
		PulseAnimation: false,
	}

	merged := MergeOptionsWithSettings(Options{}, saved)
	if merged.Catalog != "/saved/sensors.json" {
		t.Fatalf("Catalog = %q, want saved value", merged.Catalog)
	}
	if !merged.NoPulse {
		t.Fatal("NoPulse should be true when saved settings disable the pulse")
	}
}

func TestSettingsFromOptions_Roundtrip(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want PanelSettings
	}{
		{
			name: "defaults",
			opts: Options{},
			want: PanelSettings{PulseAnimation: true},
		},
		{
			name: "no pulse",
			opts: Options{Catalog: " /tmp/cat.json ", NoPulse: true, Debug: true},
			want: PanelSettings{CatalogPath: "/tmp/cat.json", Debug: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SettingsFromOptions(tt.opts); got != tt.want {
				t.Fatalf("SettingsFromOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultSettings_PulseEnabled(t *testing.T) {
	if !DefaultSettings().PulseAnimation {
		t.Fatal("default settings must enable the pulse animation")
	}
}
