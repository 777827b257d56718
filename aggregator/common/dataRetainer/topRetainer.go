package dataretainer

import (
	a "github.com/Uthara1292/small-business-analysis/aggregator/common/aggFunctions"

	"github.com/shopspring/decimal"
)

type TopRetainer struct {
	retainings []Retaining
}

func (tr *TopRetainer) RetainData(
	groupByColumns []string,
	aggregations []a.AggConfig,
	groupedData map[string][]a.Aggregation,
) []RetainedData {
	var results []RetainedData
	for _, retaining := range tr.retainings {
		valueIdx := getAggIndex(retaining.Value, retaining.Func, aggregations)
		if valueIdx < 0 {
			log.Warningf("Retaining %q: no aggregation over column %s, skipping", retaining.Name, retaining.Value)
			results = append(results, RetainedData{Name: retaining.Name, KeyColumns: groupByColumns})
			continue
		}
		var result RetainedData
		switch a.GetTypeOfAgg(aggregations[valueIdx].Func) {
		case a.TypeInt:
			result = retain(
				groupByColumns,
				aggregations,
				groupedData,
				valueIdx,
				retaining,
				NewOrderedTopN[int],
			)
		case a.TypeDecimal:
			result = retain(
				groupByColumns,
				aggregations,
				groupedData,
				valueIdx,
				retaining,
				newDecimalTopN,
			)
		}
		result.Name = retaining.Name
		results = append(results, result)
	}
	return results
}

func newDecimalTopN(capacity int, largest bool) *TopN[decimal.Decimal] {
	return NewTopN(capacity, largest, func(x, y decimal.Decimal) int { return x.Cmp(y) })
}

func retain[V any](
	groupByColumns []string,
	aggregations []a.AggConfig,
	groupedData map[string][]a.Aggregation,
	valueIdx int,
	retaining Retaining,
	newTop func(capacity int, largest bool) *TopN[V],
) RetainedData {
	switch retaining.GroupBy {
	case "*", "":
		return retainWithoutGrouping(
			groupByColumns,
			aggregations,
			groupedData,
			valueIdx,
			newTop(retaining.AmountRetained, retaining.Largest),
		)
	default:
		return retainGrouping(
			groupByColumns,
			aggregations,
			groupedData,
			valueIdx,
			retaining,
			newTop,
		)
	}
}

func retainWithoutGrouping[V any](
	groupByColumns []string,
	aggregations []a.AggConfig,
	groupedData map[string][]a.Aggregation,
	valueIdx int,
	topValues *TopN[V],
) RetainedData {
	for key, aggs := range groupedData {
		topValues.Insert(
			Entry[V]{
				Key:   key,
				Value: aggs[valueIdx].Result().(V),
				Aggs:  aggs,
			},
		)
	}

	result := RetainedData{
		KeyColumns:   groupByColumns,
		Aggregations: aggregations,
		Data:         make([][]interface{}, 0),
	}
	for _, entry := range topValues.Values() {
		row := getRowFromKeyAndAggregations(entry.Key, entry.Aggs)
		result.Data = append(result.Data, row)
	}

	return result
}

// retainGrouping keeps the top entries inside each value of the
// retaining's group-by column. Groups are emitted in key order.
func retainGrouping[V any](
	groupByColumns []string,
	aggregations []a.AggConfig,
	groupedData map[string][]a.Aggregation,
	valueIdx int,
	retaining Retaining,
	newTop func(capacity int, largest bool) *TopN[V],
) RetainedData {
	groupedTops := make(map[string]*TopN[V])
	keyIdx := getGroupByIndex(retaining.GroupBy, groupByColumns)

	for key, aggs := range groupedData {
		keyParts := getPartsFromKey(key, KeyPartsSeparator)
		groupKey := keyParts[keyIdx]
		if _, exists := groupedTops[groupKey]; !exists {
			groupedTops[groupKey] = newTop(retaining.AmountRetained, retaining.Largest)
		}
		groupedTops[groupKey].Insert(
			Entry[V]{
				Key:   key,
				Value: aggs[valueIdx].Result().(V),
				Aggs:  aggs,
			},
		)
	}

	result := RetainedData{
		KeyColumns:   groupByColumns,
		Aggregations: aggregations,
		Data:         make([][]interface{}, 0),
	}
	for _, groupKey := range sortedKeys(groupedTops) {
		for _, entry := range groupedTops[groupKey].Values() {
			row := getRowFromKeyAndAggregations(entry.Key, entry.Aggs)
			result.Data = append(result.Data, row)
		}
	}

	return result
}
