package config

import (
	"errors"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "advent.toml"

const (
	DefaultInputDir     = "data"
	DefaultInputPattern = "day*.txt"
	DefaultMaxCells     = 1 << 24
	DefaultWorkers      = 1
	DefaultMaxPasses    = 1000
)

type Config struct {
	InputDir     string           `toml:"input_dir"`
	InputPattern string           `toml:"input_pattern"`
	Fabric       *FabricConfig    `toml:"fabric"`
	Frequency    *FrequencyConfig `toml:"frequency"`
}

type FabricConfig struct {
	MaxCells int `toml:"max_cells"`
	Workers  int `toml:"workers"`
}

type FrequencyConfig struct {
	MaxPasses int `toml:"max_passes"`
}

func Default() *Config {
	return &Config{
		InputDir:     DefaultInputDir,
		InputPattern: DefaultInputPattern,
		Fabric:       &FabricConfig{MaxCells: DefaultMaxCells, Workers: DefaultWorkers},
		Frequency:    &FrequencyConfig{MaxPasses: DefaultMaxPasses},
	}
}

// ReadConfig loads advent.toml from path. A missing file yields the defaults;
// on a read or decode error the defaults are returned alongside the error.
func ReadConfig(path string) (*Config, error) {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	defaultConfig := Default()

	fileName := path + FileName
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig, nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig, err
	}
	config := Default()
	err = toml.Unmarshal(file, config)
	if err != nil {
		return defaultConfig, err
	}
	config.fillDefaults()
	return config, nil
}

func (c *Config) fillDefaults() {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.InputPattern == "" {
		c.InputPattern = DefaultInputPattern
	}
	if c.Fabric == nil {
		c.Fabric = &FabricConfig{}
	}
	if c.Fabric.MaxCells <= 0 {
		c.Fabric.MaxCells = DefaultMaxCells
	}
	if c.Fabric.Workers <= 0 {
		c.Fabric.Workers = DefaultWorkers
	}
	if c.Frequency == nil {
		c.Frequency = &FrequencyConfig{}
	}
	if c.Frequency.MaxPasses <= 0 {
		c.Frequency.MaxPasses = DefaultMaxPasses
	}
}
