package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration.
type Config struct {
	Data    DataConfig    `toml:"data"`
	Server  ServerConfig  `toml:"server"`
	Travel  TravelConfig  `toml:"travel"`
	Chapter ChapterConfig `toml:"chapter"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// TravelConfig carries the validation distance thresholds, in the same
// normalized units as location coordinates.
type TravelConfig struct {
	NearDistance float64 `toml:"near_distance"`
	FarDistance  float64 `toml:"far_distance"`
}

type ChapterConfig struct {
	RateLimit float64 `toml:"rate_limit"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data:    DataConfig{Dir: "data"},
		Server:  ServerConfig{Host: "localhost", Port: 8080},
		Travel:  TravelConfig{NearDistance: 20, FarDistance: 50},
		Chapter: ChapterConfig{RateLimit: 1.0},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
