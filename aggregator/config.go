package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/Uthara1292/small-business-analysis/aggregator/common"
	"github.com/Uthara1292/small-business-analysis/filter"
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/spf13/viper"
)

// Config represents the query tool's configuration structure.
type Config struct {
	InputPath string        `json:"input-path" mapstructure:"input-path"`
	LogLevel  string        `json:"log-level" mapstructure:"log-level"`
	Query     common.Config `json:"query" mapstructure:"query"`
	Filters   filter.Config `json:"filters" mapstructure:"filters"`
}

// field: default value. The default query is revenue per category.
var optionalFields = map[string]interface{}{
	"input-path":       "coffee_shop_sales.csv",
	"log-level":        "INFO",
	"query.query-name": "revenue-by-category",
	"query.group-by":   []string{ic.ColCategory},
	"query.aggregations": []map[string]interface{}{
		{"col": ic.ColTotalSpent, "func": "sum"},
		{"col": ic.ColTransactionID, "func": "count"},
	},
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file.
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

	if err := config.Query.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
