// Package config provides configuration loading for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pipet/internal/pet"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds everything the host needs to assemble a session.
type Config struct {
	PetName    string       `yaml:"pet_name"`
	DBPath     string       `yaml:"db_path"`
	Simulation pet.Tunables `yaml:"simulation"`
}

// Default returns the embedded default configuration.
func Default() (Config, error) {
	cfg := Config{
		PetName:    "Bobo",
		Simulation: pet.DefaultTunables(),
	}
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the yaml file at path. An
// empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	t := &c.Simulation
	if t.TimeScale <= 0 {
		return fmt.Errorf("config: time_scale must be > 0")
	}
	if !(t.TimeToBaby < t.TimeToChild && t.TimeToChild < t.TimeToTeen && t.TimeToTeen < t.TimeToAdult) {
		return fmt.Errorf("config: life-stage thresholds must be strictly increasing")
	}
	if t.ActionDuration <= 0 {
		return fmt.Errorf("config: action_duration must be > 0")
	}
	if t.NightStartHour < 0 || t.NightStartHour > 23 {
		return fmt.Errorf("config: night_start_hour must be in [0,23]")
	}
	if t.NightEndHour < 0 || t.NightEndHour > 23 {
		return fmt.Errorf("config: night_end_hour must be in [0,23]")
	}
	return nil
}

// ResolveDBPath returns the configured database path, defaulting to the
// per-user config directory.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pipet", "pet.db"), nil
}
