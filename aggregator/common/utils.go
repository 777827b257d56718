package common

import (
	"fmt"
	"sort"
	"strings"

	a "github.com/Uthara1292/small-business-analysis/aggregator/common/aggFunctions"
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"
)

const KeyPartsSeparator = "|"
const AggFuncColSeparator = "_"

func getAggregatedRowsFromGroupedData(groupedData map[string][]a.Aggregation) [][]interface{} {
	keys := make([]string, 0, len(groupedData))
	for key := range groupedData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([][]interface{}, 0, len(keys))
	for _, key := range keys {
		row := []interface{}{}
		keyParts := getPartsFromKey(key, KeyPartsSeparator)
		for _, part := range keyParts {
			row = append(row, part)
		}
		for _, agg := range groupedData[key] {
			row = append(row, agg.Result())
		}
		result = append(result, row)
	}
	return result
}

func checkColumns(config *Config, batch *ic.RowsBatch) error {
	var missing []string
	for _, col := range config.GroupBy {
		if batch.ColumnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	for _, agg := range config.Aggregations {
		if batch.ColumnIndex(agg.Col) < 0 {
			missing = append(missing, agg.Col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("query %s: %w: %s (batch has %s)", config.QueryName, ErrMissingColumn,
			strings.Join(missing, ", "), strings.Join(batch.ColumnNames, ", "))
	}
	return nil
}

func getAggColIndexes(config *Config, batch *ic.RowsBatch) map[string]int {
	var aggColIndexes map[string]int = make(map[string]int)
	for _, agg := range config.Aggregations {
		if i := batch.ColumnIndex(agg.Col); i >= 0 {
			aggColIndexes[agg.Col] = i
		}
	}
	return aggColIndexes
}

func getGroupByColIndexes(config *Config, batch *ic.RowsBatch) []int {
	var groupByIndexes []int
	for _, groupByCol := range config.GroupBy {
		if i := batch.ColumnIndex(groupByCol); i >= 0 {
			groupByIndexes = append(groupByIndexes, i)
		}
	}
	return groupByIndexes
}

func getGroupByKey(groupByIndexes []int, row []interface{}) string {
	var keyParts []string
	for _, idx := range groupByIndexes {
		stringKey := fmt.Sprintf("%v", row[idx])
		keyParts = append(keyParts, stringKey)
	}
	return strings.Join(keyParts, KeyPartsSeparator)
}

func getPartsFromKey(key string, separator string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, separator)
}

func getBatchFromAggregatedRows(
	groupByColNames []string,
	aggregations []a.AggConfig,
	aggregatedRows [][]interface{},
) *ic.RowsBatch {
	var aggregatedColumnNames []string
	aggregatedColumnNames = append(aggregatedColumnNames, groupByColNames...)
	for _, agg := range aggregations {
		aggColName := strings.Join([]string{agg.Func, agg.Col}, AggFuncColSeparator)
		aggregatedColumnNames = append(aggregatedColumnNames, aggColName)
	}

	return ic.NewRowsBatch(aggregatedColumnNames, aggregatedRows)
}
