package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/Uthara1292/small-business-analysis/coffee-analyzer/report"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// Config represents the application's configuration structure.
type Config struct {
	InputPath string `json:"input-path" mapstructure:"input-path"`
	OutputDir string `json:"output-dir" mapstructure:"output-dir"`
	TopN      int    `json:"top-n" mapstructure:"top-n"`
	ChartTopN int    `json:"chart-top-n" mapstructure:"chart-top-n"`
	LogLevel  string `json:"log-level" mapstructure:"log-level"`
}

// field: default value
var optionalFields = map[string]interface{}{
	"input-path":  "coffee_shop_sales.csv",
	"output-dir":  "visualizations",
	"top-n":       5,
	"chart-top-n": 10,
	"log-level":   "INFO",
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file. The file is
// optional: every field has a default.
func InitConfig(path string) (*Config, error) {
	v := viper.New()

	// Set config file type and name
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for optField, defaultValue := range optionalFields {
		v.SetDefault(optField, defaultValue)
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if config.TopN < 1 || config.ChartTopN < 1 {
		return nil, fmt.Errorf("top-n and chart-top-n must be positive, got %d and %d", config.TopN, config.ChartTopN)
	}
	if config.InputPath == "" || config.OutputDir == "" {
		return nil, errors.New("input-path and output-dir must not be empty")
	}

	return &config, nil
}

func (c *Config) Options() report.Options {
	return report.Options{
		InputPath: c.InputPath,
		OutputDir: c.OutputDir,
		TopN:      c.TopN,
		ChartTopN: c.ChartTopN,
	}
}
