package config

import (
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type Options struct {
	Catalog string `long:"catalog" env:"LINKPANEL_CATALOG" description:"Path to the sensor catalog JSON file"`
	GUI     bool   `long:"gui" env:"LINKPANEL_GUI" description:"Run the desktop GUI instead of the terminal panel (GUI builds only)"`
	NoPulse bool   `long:"no-pulse" env:"LINKPANEL_NO_PULSE" description:"Disable the offline pulse animation"`
	Debug   bool   `long:"debug" env:"LINKPANEL_DEBUG" description:"Enable verbose debug output"`
}

func ParseOptions() (Options, error) {
	_ = godotenv.Load()
	opts := Options{}
	if _, err := flags.Parse(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// DefaultCatalogPath is where the panel looks for sensor definitions when no
// explicit catalog was configured. The file does not have to exist; the
// built-in catalog is used until it does.
func DefaultCatalogPath() string {
	root, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(root, "linkpanel", "sensors.json")
}

func MergeOptionsWithSettings(cli Options, saved PanelSettings) Options {
	if strings.TrimSpace(cli.Catalog) == "" {
		cli.Catalog = saved.CatalogPath
	}
	if !cli.Debug {
		cli.Debug = saved.Debug
	}
	if !cli.NoPulse {
		cli.NoPulse = !saved.PulseAnimation
	}
	return cli
}

func SettingsFromOptions(opts Options) PanelSettings {
	return PanelSettings{
		CatalogPath:    strings.TrimSpace(opts.Catalog),
		Debug:          opts.Debug,
		PulseAnimation: !opts.NoPulse,
	}
}
