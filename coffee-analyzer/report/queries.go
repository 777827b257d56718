package report

import (
	"cmp"
	"fmt"
	"slices"

	agg "github.com/Uthara1292/small-business-analysis/aggregator/common"
	dr "github.com/Uthara1292/small-business-analysis/aggregator/common/dataRetainer"
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	sumFunc   = "sum"
	countFunc = "count"
)

// Retaining names of the item query.
const (
	topByQuantity      = "top-items-by-quantity"
	topByRevenue       = "top-items-by-revenue"
	chartTopByQuantity = "chart-top-items-by-quantity"
)

// Amount is a labelled money value.
type Amount struct {
	Label string
	Value decimal.Decimal
}

// Count is a labelled integer value.
type Count struct {
	Label string
	Value int64
}

// HourCount is the number of transactions started within one hour of day.
type HourCount struct {
	Hour  int
	Count int
}

// Share is a labelled count and its fraction of the total.
type Share struct {
	Label string
	Count int
	Share float64
}

func totalsQuery() *agg.Config {
	return &agg.Config{
		QueryName: "totals",
		Aggregations: []agg.AggConfig{
			{Col: ic.ColTotalSpent, Func: sumFunc},
			{Col: ic.ColTransactionID, Func: countFunc},
		},
	}
}

func itemsQuery(topN, chartTopN int) *agg.Config {
	return &agg.Config{
		QueryName: "items",
		GroupBy:   []string{ic.ColItem},
		Aggregations: []agg.AggConfig{
			{Col: ic.ColQuantity, Func: sumFunc},
			{Col: ic.ColTotalSpent, Func: sumFunc},
		},
		Retainings: []dr.Retaining{
			{Name: topByQuantity, AmountRetained: topN, Value: ic.ColQuantity, Largest: true},
			{Name: topByRevenue, AmountRetained: topN, Value: ic.ColTotalSpent, Largest: true},
			{Name: chartTopByQuantity, AmountRetained: chartTopN, Value: ic.ColQuantity, Largest: true},
		},
	}
}

func sumByQuery(column string) *agg.Config {
	return &agg.Config{
		QueryName:    "revenue-by-" + column,
		GroupBy:      []string{column},
		Aggregations: []agg.AggConfig{{Col: ic.ColTotalSpent, Func: sumFunc}},
	}
}

func countByQuery(column string) *agg.Config {
	return &agg.Config{
		QueryName:    "transactions-by-" + column,
		GroupBy:      []string{column},
		Aggregations: []agg.AggConfig{{Col: ic.ColTransactionID, Func: countFunc}},
	}
}

func runQuery(config *agg.Config, batch *ic.RowsBatch) (*agg.Aggregator, error) {
	aggregator, err := agg.NewAggregator(config)
	if err != nil {
		return nil, err
	}
	if err := aggregator.AggregateBatch(batch); err != nil {
		return nil, err
	}
	return aggregator, nil
}

// totals returns the revenue and the number of transactions.
func totals(batch *ic.RowsBatch) (decimal.Decimal, int, error) {
	aggregator, err := runQuery(totalsQuery(), batch)
	if err != nil {
		return decimal.Zero, 0, err
	}
	rows := aggregator.Result().Rows
	if len(rows) != 1 {
		return decimal.Zero, 0, fmt.Errorf("totals query returned %d rows", len(rows))
	}
	revenue, err := decimalAt(rows[0], 0)
	if err != nil {
		return decimal.Zero, 0, err
	}
	count, err := cast.ToIntE(rows[0][1])
	if err != nil {
		return decimal.Zero, 0, err
	}
	return revenue, count, nil
}

type itemRankings struct {
	byQuantity      []Count
	byRevenue       []Amount
	chartByQuantity []Count
}

func rankItems(batch *ic.RowsBatch, topN, chartTopN int) (*itemRankings, error) {
	aggregator, err := runQuery(itemsQuery(topN, chartTopN), batch)
	if err != nil {
		return nil, err
	}

	rankings := &itemRankings{}
	for _, retained := range aggregator.Retained() {
		// rows are [item, sum quantity, sum total]
		switch retained.Name {
		case topByQuantity, chartTopByQuantity:
			counts := make([]Count, 0, len(retained.Data))
			for _, row := range retained.Data {
				quantity, err := decimalAt(row, 1)
				if err != nil {
					return nil, err
				}
				counts = append(counts, Count{Label: cast.ToString(row[0]), Value: quantity.IntPart()})
			}
			if retained.Name == topByQuantity {
				rankings.byQuantity = counts
			} else {
				rankings.chartByQuantity = counts
			}
		case topByRevenue:
			for _, row := range retained.Data {
				revenue, err := decimalAt(row, 2)
				if err != nil {
					return nil, err
				}
				rankings.byRevenue = append(rankings.byRevenue, Amount{Label: cast.ToString(row[0]), Value: revenue})
			}
		}
	}
	return rankings, nil
}

// revenueBy sums revenue per value of column, in ascending key order.
func revenueBy(batch *ic.RowsBatch, column string) ([]Amount, error) {
	aggregator, err := runQuery(sumByQuery(column), batch)
	if err != nil {
		return nil, err
	}
	rows := aggregator.Result().Rows
	amounts := make([]Amount, 0, len(rows))
	for _, row := range rows {
		value, err := decimalAt(row, 1)
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, Amount{Label: cast.ToString(row[0]), Value: value})
	}
	return amounts, nil
}

// countBy counts transactions per value of column, in ascending key order.
func countBy(batch *ic.RowsBatch, column string) ([]Count, error) {
	aggregator, err := runQuery(countByQuery(column), batch)
	if err != nil {
		return nil, err
	}
	rows := aggregator.Result().Rows
	counts := make([]Count, 0, len(rows))
	for _, row := range rows {
		value, err := cast.ToInt64E(row[1])
		if err != nil {
			return nil, err
		}
		counts = append(counts, Count{Label: cast.ToString(row[0]), Value: value})
	}
	return counts, nil
}

// hourly counts transactions per hour of day, ascending by hour.
func hourly(batch *ic.RowsBatch) ([]HourCount, error) {
	counts, err := countBy(batch, ic.ColHour)
	if err != nil {
		return nil, err
	}
	hours := make([]HourCount, 0, len(counts))
	for _, c := range counts {
		hour, err := cast.ToIntE(c.Label)
		if err != nil {
			return nil, fmt.Errorf("invalid hour %q: %w", c.Label, err)
		}
		hours = append(hours, HourCount{Hour: hour, Count: int(c.Value)})
	}
	slices.SortFunc(hours, func(x, y HourCount) int { return cmp.Compare(x.Hour, y.Hour) })
	return hours, nil
}

// peakHour returns the hour with most transactions; the earliest wins a tie.
func peakHour(hours []HourCount) int {
	peak := -1
	best := -1
	for _, h := range hours {
		if h.Count > best {
			peak, best = h.Hour, h.Count
		}
	}
	return peak
}

// sortAmountsDesc orders by value, largest first, then by label.
func sortAmountsDesc(amounts []Amount) {
	slices.SortStableFunc(amounts, func(x, y Amount) int {
		if c := y.Value.Cmp(x.Value); c != 0 {
			return c
		}
		return cmp.Compare(x.Label, y.Label)
	})
}

// shares turns counts into fractions of their total, most frequent first.
func shares(counts []Count) []Share {
	var total int64
	for _, c := range counts {
		total += c.Value
	}
	out := make([]Share, 0, len(counts))
	for _, c := range counts {
		share := 0.0
		if total > 0 {
			share = float64(c.Value) / float64(total)
		}
		out = append(out, Share{Label: c.Label, Count: int(c.Value), Share: share})
	}
	slices.SortStableFunc(out, func(x, y Share) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.Label, y.Label)
	})
	return out
}

func decimalAt(row []interface{}, i int) (decimal.Decimal, error) {
	if i >= len(row) {
		return decimal.Zero, fmt.Errorf("row %v has no column %d", row, i)
	}
	value, ok := row[i].(decimal.Decimal)
	if !ok {
		return decimal.Zero, fmt.Errorf("column %d of row %v is %T, not a decimal", i, row, row[i])
	}
	return value, nil
}
