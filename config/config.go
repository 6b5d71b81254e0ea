package config

import (
	"fmt"
	"os"

	"github.com/dronhome/TP-final/meta"
	"gopkg.in/yaml.v3"
)

// Argument holds the flag destinations shared by all commands.
type Argument struct {
	Verbose  bool
	BaseURL  string
	Fps      string
	Seconds  string
	FilePath string // optional YAML config file
}

// NewArgument New Argument with the built-in defaults.
func NewArgument() *Argument {
	return &Argument{
		BaseURL: meta.DefaultDomain,
		Fps:     meta.DefaultFps,
		Seconds: meta.DefaultSeconds,
	}
}

// FileConfig is the optional YAML config file.
type FileConfig struct {
	BaseURL string `yaml:"base_url"`
	Fps     string `yaml:"fps"`
	Seconds string `yaml:"seconds"`
}

// LoadFileConfig reads and parses a YAML config file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// Resolve merges the config file into the arguments. Flags win: only values
// still at their default are replaced.
func (a *Argument) Resolve() error {
	if a.FilePath == "" {
		return nil
	}
	cfg, err := LoadFileConfig(a.FilePath)
	if err != nil {
		return err
	}
	if cfg.BaseURL != "" && a.BaseURL == meta.DefaultDomain {
		a.BaseURL = cfg.BaseURL
	}
	if cfg.Fps != "" && a.Fps == meta.DefaultFps {
		a.Fps = cfg.Fps
	}
	if cfg.Seconds != "" && a.Seconds == meta.DefaultSeconds {
		a.Seconds = cfg.Seconds
	}
	return nil
}
