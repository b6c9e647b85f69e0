package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the tsvol configuration file
// (~/.config/tsvol/config.yaml). Pointer fields distinguish "not set" from
// zero values.
type Config struct {
	SwapBytes *bool  `yaml:"swap_bytes"`
	Layout    string `yaml:"layout"`
	InMemory  *bool  `yaml:"in_memory"`
	TextInput *bool  `yaml:"text_input"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tsvol", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or fails to parse.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applySharedConfig applies config file defaults to the shared flag
// variables when the corresponding CLI flag was not explicitly set.
func applySharedConfig(c *cli.Command, cfg Config) {
	if cfg.SwapBytes != nil && !c.IsSet("swap-bytes") {
		swapBytes = *cfg.SwapBytes
	}
	if cfg.Layout != "" && !c.IsSet("layout") {
		layoutName = cfg.Layout
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// applyInsertConfig applies insert-specific defaults.
func applyInsertConfig(c *cli.Command, cfg Config, inMemory, textInput *bool) {
	applySharedConfig(c, cfg)
	if cfg.InMemory != nil && !c.IsSet("in-memory") {
		*inMemory = *cfg.InMemory
	}
	if cfg.TextInput != nil && !c.IsSet("text") {
		*textInput = *cfg.TextInput
	}
}
