// Package config loads tool configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete tool configuration.
type Config struct {
	Hunt    *HuntSettings    `hcl:"hunt,block"`
	Display *DisplaySettings `hcl:"display,block"`
	Log     *LogSettings     `hcl:"log,block"`
}

// HuntSettings holds defaults for hunting and sampling. Command-line flags
// take precedence over these.
type HuntSettings struct {
	Workers       int    `hcl:"workers,optional"`
	MaxAttempts   uint64 `hcl:"max_attempts,optional"`
	ProgressEvery uint64 `hcl:"progress_every,optional"`
}

// DisplaySettings control how cards and tables render.
type DisplaySettings struct {
	NoColor      bool `hcl:"no_color,optional"`
	UnicodeSuits bool `hcl:"unicode_suits,optional"`
}

// LogSettings control logging output.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Hunt: &HuntSettings{
			Workers:       1,
			MaxAttempts:   0,
			ProgressEvery: 10000,
		},
		Display: &DisplaySettings{},
		Log: &LogSettings{
			Level: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error; defaults are returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	if cfg.Hunt == nil {
		cfg.Hunt = &HuntSettings{}
	}
	if cfg.Hunt.Workers == 0 {
		cfg.Hunt.Workers = 1
	}
	if cfg.Hunt.ProgressEvery == 0 {
		cfg.Hunt.ProgressEvery = 10000
	}
	if cfg.Display == nil {
		cfg.Display = &DisplaySettings{}
	}
	if cfg.Log == nil {
		cfg.Log = &LogSettings{}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Hunt.Workers < 1 || c.Hunt.Workers > 256 {
		return fmt.Errorf("invalid worker count: %d", c.Hunt.Workers)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
