/*
PURPOSE:
  Defines the configuration structure and loading logic for client-data.
  Holds the names of the data directory and files instead of process-wide constants.

REQUIREMENTS:
  User-specified:
  - Data lives in <anchor>/data/clients.csv.

  Implementation-discovered:
  - Tests need to swap names without touching globals.
  - Needs to support YAML parsing.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/paths, internal/records, internal/output
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if the config file is invalid.
  - A missing default file is not an error; defaults are used.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Names must be single path elements.

USAGE:
  cfg, err := config.Load("client_data.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig() and Validate().

RELATED FILES:
  - internal/cli/root.go
  - internal/paths/layout.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for client-data.
type Config struct {
	DataDir      string `yaml:"data_dir"`
	OriginalFile string `yaml:"original_file"`
	TempFile     string `yaml:"temp_file"`
	// Separator delimits the fields of one record line.
	Separator string `yaml:"separator"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // text or json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:      "data",
		OriginalFile: "clients.csv",
		TempFile:     "temp.csv",
		Separator:    "#//#",
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}

// DefaultFiles are searched in the working directory when no path is given.
var DefaultFiles = []string{"client_data.yaml", "client_data.yml"}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that file names are usable as single path elements.
func (c *Config) Validate() error {
	names := map[string]string{
		"data_dir":      c.DataDir,
		"original_file": c.OriginalFile,
		"temp_file":     c.TempFile,
	}
	for _, key := range []string{"data_dir", "original_file", "temp_file"} {
		if err := checkName(names[key]); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	if c.OriginalFile == c.TempFile {
		return errors.New("temp_file must differ from original_file")
	}
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	if strings.ContainsAny(c.Separator, "\r\n") {
		return errors.New("separator must not contain line breaks")
	}
	return nil
}

func checkName(name string) error {
	switch {
	case name == "":
		return errors.New("must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("%q is not a file name", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%q must not contain path separators", name)
	}
	return nil
}
