package dataretainer

import (
	"sort"
	"strings"

	a "github.com/Uthara1292/small-business-analysis/aggregator/common/aggFunctions"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

const KeyPartsSeparator = "|"

func getRowFromKeyAndAggregations(key string, aggs []a.Aggregation) []interface{} {
	row := []interface{}{}
	keyParts := getPartsFromKey(key, KeyPartsSeparator)
	for _, part := range keyParts {
		row = append(row, part)
	}
	for _, agg := range aggs {
		row = append(row, agg.Result())
	}
	return row
}

func getPartsFromKey(key string, separator string) []string {
	return strings.Split(key, separator)
}

func getAggIndex(colName string, funcName string, aggs []a.AggConfig) int {
	for i, agg := range aggs {
		if agg.Col == colName && (funcName == "" || agg.Func == funcName) {
			return i
		}
	}
	return -1
}

func getGroupByIndex(colName string, groupByCols []string) int {
	for i, col := range groupByCols {
		if col == colName {
			return i
		}
	}
	return -1
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
