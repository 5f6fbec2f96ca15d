package config

import "sort"

// Presets are ready made output profiles selectable with --preset.
var Presets = map[string]*Config{
	"default": {
		Units: "K", Format: "table", LogLevel: "warn",
		Curve: CurveConfig{Points: DefaultCurvePoints},
	},
	"celsius": {
		Units: "C", Format: "table", LogLevel: "warn",
		Curve: CurveConfig{Points: DefaultCurvePoints},
	},
	"script": {
		Units: "K", Format: "csv", LogLevel: "error", LogJSON: true,
		Curve: CurveConfig{Points: 200},
	},
	"verbose": {
		Units: "K", Format: "table", LogLevel: "debug",
		Curve: CurveConfig{Points: DefaultCurvePoints},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
