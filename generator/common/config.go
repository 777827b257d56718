package common

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/spf13/viper"
)

// Config represents the generator's configuration structure.
type Config struct {
	StartDate               string  `json:"start-date" mapstructure:"start-date"`
	EndDate                 string  `json:"end-date" mapstructure:"end-date"`
	MeanDailyTransactions   float64 `json:"mean-daily-transactions" mapstructure:"mean-daily-transactions"`
	StdDevDailyTransactions float64 `json:"stddev-daily-transactions" mapstructure:"stddev-daily-transactions"`
	MinDailyTransactions    int     `json:"min-daily-transactions" mapstructure:"min-daily-transactions"`
	FirstTransactionID      int64   `json:"first-transaction-id" mapstructure:"first-transaction-id"`
	CoffeeWeight            float64 `json:"coffee-weight" mapstructure:"coffee-weight"`
	Seed                    uint64  `json:"seed" mapstructure:"seed"`
	OutputPath              string  `json:"output-path" mapstructure:"output-path"`
	ShowProgress            bool    `json:"show-progress" mapstructure:"show-progress"`
	LogLevel                string  `json:"log-level" mapstructure:"log-level"`

	// SeedSet is false when no seed was configured and Seed was derived
	// from the clock.
	SeedSet bool    `json:"-" mapstructure:"-"`
	Start   ic.Date `json:"-" mapstructure:"-"`
	End     ic.Date `json:"-" mapstructure:"-"`
}

// field: default value
var defaultFields = map[string]interface{}{
	"start-date":                "2025-01-01",
	"end-date":                  "2025-12-31",
	"mean-daily-transactions":   50.0,
	"stddev-daily-transactions": 15.0,
	"min-daily-transactions":    10,
	"first-transaction-id":      1000,
	"coffee-weight":             DefaultCoffeeWeight,
	"output-path":               "coffee_shop_sales.csv",
	"show-progress":             true,
	"log-level":                 "INFO",
}

// InitConfig reads configuration from an optional JSON file and environment
// variables. Environment variables take precedence over the config file,
// and every field has a default, so a missing file is not an error.
// clockSeed provides the seed when none is configured.
func InitConfig(configFilePath string, clockSeed func() uint64) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for field, defaultValue := range defaultFields {
		v.SetDefault(field, defaultValue)
	}
	v.BindEnv("seed")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	config.SeedSet = v.IsSet("seed")
	if !config.SeedSet {
		config.Seed = clockSeed()
	}

	if err := config.resolve(); err != nil {
		return nil, err
	}
	return &config, nil
}

// DefaultConfig returns the configuration used when nothing is overridden,
// with a fixed seed.
func DefaultConfig(seed uint64) *Config {
	config := Config{
		StartDate:               defaultFields["start-date"].(string),
		EndDate:                 defaultFields["end-date"].(string),
		MeanDailyTransactions:   defaultFields["mean-daily-transactions"].(float64),
		StdDevDailyTransactions: defaultFields["stddev-daily-transactions"].(float64),
		MinDailyTransactions:    defaultFields["min-daily-transactions"].(int),
		FirstTransactionID:      int64(defaultFields["first-transaction-id"].(int)),
		CoffeeWeight:            defaultFields["coffee-weight"].(float64),
		Seed:                    seed,
		SeedSet:                 true,
		OutputPath:              defaultFields["output-path"].(string),
		ShowProgress:            false,
		LogLevel:                defaultFields["log-level"].(string),
	}
	if err := config.resolve(); err != nil {
		panic(err)
	}
	return &config
}

// WithDates returns a copy of the config covering [start, end].
func (c *Config) WithDates(start, end string) (*Config, error) {
	cpy := *c
	cpy.StartDate = start
	cpy.EndDate = end
	if err := cpy.resolve(); err != nil {
		return nil, err
	}
	return &cpy, nil
}

// Days returns the number of calendar days simulated.
func (c *Config) Days() int {
	return int(c.End.Sub(c.Start.Time).Hours()/24) + 1
}

func (c *Config) resolve() error {
	start, err := ic.ParseDate(c.StartDate)
	if err != nil {
		return fmt.Errorf("start-date: %w", err)
	}
	end, err := ic.ParseDate(c.EndDate)
	if err != nil {
		return fmt.Errorf("end-date: %w", err)
	}
	if end.Before(start.Time) {
		return fmt.Errorf("end-date %s is before start-date %s", c.EndDate, c.StartDate)
	}
	if math.IsNaN(c.MeanDailyTransactions) || math.IsInf(c.MeanDailyTransactions, 0) {
		return fmt.Errorf("mean-daily-transactions must be a finite number, got %v", c.MeanDailyTransactions)
	}
	if c.StdDevDailyTransactions < 0 {
		return fmt.Errorf("stddev-daily-transactions must not be negative, got %v", c.StdDevDailyTransactions)
	}
	if c.MinDailyTransactions < 1 {
		return fmt.Errorf("min-daily-transactions must be at least 1, got %d", c.MinDailyTransactions)
	}
	if c.FirstTransactionID < 0 {
		return fmt.Errorf("first-transaction-id must not be negative, got %d", c.FirstTransactionID)
	}
	if c.CoffeeWeight <= 0 {
		return fmt.Errorf("coffee-weight must be positive, got %v", c.CoffeeWeight)
	}
	if c.OutputPath == "" {
		return errors.New("output-path must not be empty")
	}
	c.Start = start
	c.End = end
	return nil
}
