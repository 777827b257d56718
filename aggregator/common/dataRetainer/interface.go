package dataretainer

import (
	a "github.com/Uthara1292/small-business-analysis/aggregator/common/aggFunctions"
)

// Retaining selects the AmountRetained best groups by the aggregation over
// column Value (and Func, when several aggregations share the column).
type Retaining struct {
	Name           string `json:"name" mapstructure:"name"`
	AmountRetained int    `json:"amount-retained" mapstructure:"amount-retained"`
	GroupBy        string `json:"group-by" mapstructure:"group-by"`
	Value          string `json:"value" mapstructure:"value"`
	Func           string `json:"func" mapstructure:"func"`
	Largest        bool   `json:"largest" mapstructure:"largest"`
}

type RetainedData struct {
	Name         string
	KeyColumns   []string
	Aggregations []a.AggConfig
	Data         [][]interface{}
}

type DataRetainer interface {
	RetainData(
		groupByColumns []string,
		aggregations []a.AggConfig,
		groupedData map[string][]a.Aggregation,
	) []RetainedData
}
