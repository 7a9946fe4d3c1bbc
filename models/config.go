// Package models defines data structures for configuration and parsed bodies.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWorkers     = 4
	DefaultComment     = "From JPL horizon data"
	DefaultOutputFile  = "solarSystem.csv"
	OrbitDateLayout    = "2006-01-02 15:04"
	RawReportExtension = "jplrawdata"
)

// Config holds runtime configuration for the process command.
// Values are read from an optional YAML file; CLI flags take precedence.
type Config struct {
	RawDataDir    string `yaml:"raw_data_dir"`
	OverridesFile string `yaml:"overrides_file"`
	OutputFile    string `yaml:"output_file"`
	OrbitDate     string `yaml:"orbit_date"`
	Comment       string `yaml:"comment"`
	Workers       int    `yaml:"workers"`
	DBPath        string `yaml:"db_path"`
}

// DefaultConfig returns a Config with defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		OutputFile: DefaultOutputFile,
		Comment:    DefaultComment,
		Workers:    DefaultWorkers,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return cfg, nil
}
