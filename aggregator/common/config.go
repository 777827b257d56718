package common

import (
	"fmt"

	a "github.com/Uthara1292/small-business-analysis/aggregator/common/aggFunctions"
	dr "github.com/Uthara1292/small-business-analysis/aggregator/common/dataRetainer"
)

type AggConfig = a.AggConfig

// Config describes one group-by query.
type Config struct {
	QueryName    string         `json:"query-name" mapstructure:"query-name"`
	GroupBy      []string       `json:"group-by" mapstructure:"group-by"`
	Aggregations []AggConfig    `json:"aggregations" mapstructure:"aggregations"`
	Retainings   []dr.Retaining `json:"retainings" mapstructure:"retainings"`
}

// Validate checks that every aggregation func is known.
func (c *Config) Validate() error {
	if len(c.Aggregations) == 0 {
		return fmt.Errorf("query %s: no aggregations configured", c.QueryName)
	}
	for _, agg := range c.Aggregations {
		if !a.IsSupported(agg.Func) {
			return fmt.Errorf("query %s: unsupported aggregation %q on column %s", c.QueryName, agg.Func, agg.Col)
		}
	}
	return nil
}
