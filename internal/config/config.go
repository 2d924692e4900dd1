package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	MaxSuggestions int              `yaml:"max_suggestions"`
	Dictionary     DictionaryConfig `yaml:"dictionary"`
	Redis          RedisConfig      `yaml:"redis"`
}

type DictionaryConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig points at the optional persistence backend. An empty Addr
// disables it.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxSuggestions: 3,
	}
}

// Load reads a YAML config file over the defaults; keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %v", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %v", err)
	}
	return cfg, nil
}
