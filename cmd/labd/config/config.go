// Package config holds the labd configuration.
//
// Values come from three layers, later ones winning: built-in defaults, an
// optional YAML file given with --config, and flags set explicitly on the
// command line.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	configDefaults "github.com/concave-dev/labform/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigField identifies a setting that can be given as a flag
type ConfigField int

const (
	AddrField ConfigField = iota
	ScriptField
	LabsDirField
	LogLevelField
	LogFileField
)

const (
	DefaultAddr     = configDefaults.DefaultServerAddr
	DefaultScript   = configDefaults.DefaultScriptPath
	DefaultLogLevel = configDefaults.DefaultLogLevel

	// StdinDefaults is the --config value meaning "no file, defaults only"
	StdinDefaults = "-"
)

// Config holds all daemon configuration values
type Config struct {
	ConfigFile   string        `yaml:"-"`
	Addr         string        `yaml:"addr"`          // host:port to listen on
	Script       string        `yaml:"script"`        // solver script path
	LabsDir      string        `yaml:"labs_dir"`      // directory overriding embedded lab pages
	LogLevel     string        `yaml:"log_level"`     // DEBUG, INFO, WARN, ERROR
	LogFile      string        `yaml:"log_file"`      // append logs here instead of stderr
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 0 disables
	WriteTimeout time.Duration `yaml:"write_timeout"` // 0 disables

	// Parsed from Addr by ValidateConfig
	BindAddr string `yaml:"-"`
	BindPort int    `yaml:"-"`

	explicit map[ConfigField]bool
}

// Global configuration instance
var Global = Default()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		Script:      DefaultScript,
		LogLevel:    DefaultLogLevel,
		ReadTimeout: 15 * time.Second,
	}
}

// SetExplicitlySet records whether a field was given on the command line.
func (c *Config) SetExplicitlySet(field ConfigField, value bool) {
	if c.explicit == nil {
		c.explicit = make(map[ConfigField]bool)
	}
	c.explicit[field] = value
}

// IsExplicitlySet reports whether a field was given on the command line.
func (c *Config) IsExplicitlySet(field ConfigField) bool {
	return c.explicit[field]
}

// LoadFile reads a YAML configuration. Keys absent from the file keep
// their default values; unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" || path == StdinDefaults {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Merge overlays file values onto c for every field not set by a flag.
func (c *Config) Merge(file Config) {
	if !c.IsExplicitlySet(AddrField) {
		c.Addr = file.Addr
	}
	if !c.IsExplicitlySet(ScriptField) {
		c.Script = file.Script
	}
	if !c.IsExplicitlySet(LabsDirField) {
		c.LabsDir = file.LabsDir
	}
	if !c.IsExplicitlySet(LogLevelField) {
		c.LogLevel = file.LogLevel
	}
	if !c.IsExplicitlySet(LogFileField) {
		c.LogFile = file.LogFile
	}
	c.ReadTimeout = file.ReadTimeout
	c.WriteTimeout = file.WriteTimeout
}
