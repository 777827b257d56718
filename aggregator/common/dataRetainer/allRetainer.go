package dataretainer

import (
	a "github.com/Uthara1292/small-business-analysis/aggregator/common/aggFunctions"
)

// AllRetainer keeps every group, ordered by key.
type AllRetainer struct{}

func (ar *AllRetainer) RetainData(
	groupByColumns []string,
	aggregations []a.AggConfig,
	groupedData map[string][]a.Aggregation,
) []RetainedData {
	data := getRowsFromGroupedData(groupedData)
	return []RetainedData{
		{
			Name:         "all",
			KeyColumns:   groupByColumns,
			Aggregations: aggregations,
			Data:         data,
		},
	}
}

func getRowsFromGroupedData(groupedData map[string][]a.Aggregation) [][]interface{} {
	result := make([][]interface{}, 0, len(groupedData))
	for _, key := range sortedKeys(groupedData) {
		row := getRowFromKeyAndAggregations(key, groupedData[key])
		result = append(result, row)
	}
	return result
}
