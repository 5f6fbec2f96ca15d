package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultUnits       = "K"
	DefaultFormat      = "table"
	DefaultLogLevel    = "warn"
	DefaultCurvePoints = 60
)

type Config struct {
	Units     string          `yaml:"units"`
	Format    string          `yaml:"format"`
	LogLevel  string          `yaml:"log_level"`
	LogJSON   bool            `yaml:"log_json"`
	Preferred PreferredConfig `yaml:"preferred"`
	Curve     CurveConfig     `yaml:"curve"`
}

// PreferredConfig pins a data source method per property. An empty
// field keeps the built in source ranking; the override applies only
// in the CLI, the lookup packages themselves never consult it.
type PreferredConfig struct {
	Tb    string `yaml:"tb"`
	Tm    string `yaml:"tm"`
	Hfus  string `yaml:"hfus"`
	Tt    string `yaml:"tt"`
	Pt    string `yaml:"pt"`
	GWP   string `yaml:"gwp"`
	ODP   string `yaml:"odp"`
	LogP  string `yaml:"logp"`
	Tc    string `yaml:"tc"`
	Pc    string `yaml:"pc"`
	Omega string `yaml:"omega"`
}

type CurveConfig struct {
	Points int `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Units:    DefaultUnits,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
		Curve: CurveConfig{
			Points: DefaultCurvePoints,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// For returns the pinned method for a CLI property key (tb, tm, hfus,
// tt, pt, gwp, odp, logp, tc, pc, omega). Unknown keys and unpinned
// properties return the empty string.
func (p PreferredConfig) For(property string) string {
	switch property {
	case "tb":
		return p.Tb
	case "tm":
		return p.Tm
	case "hfus":
		return p.Hfus
	case "tt":
		return p.Tt
	case "pt":
		return p.Pt
	case "gwp":
		return p.GWP
	case "odp":
		return p.ODP
	case "logp":
		return p.LogP
	case "tc":
		return p.Tc
	case "pc":
		return p.Pc
	case "omega":
		return p.Omega
	default:
		return ""
	}
}
