package common

import (
	"errors"
	"fmt"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// maxReportedViolations bounds how many violations Validate lists.
const maxReportedViolations = 10

var ErrInvalidDataset = errors.New("invalid dataset")

// VolumeStats summarizes transactions per day.
type VolumeStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// DatasetSummary describes a validated dataset.
type DatasetSummary struct {
	Records     int
	Days        int
	FirstID     int64
	LastID      int64
	Revenue     decimal.Decimal
	DailyCounts map[string]int
	Volume      VolumeStats
}

// Validate checks the generated records against the catalog and config:
// exact totals, consecutive ids from the first id, catalog consistency,
// ascending dates inside the range and at least the floor on every day.
func Validate(transactions []ic.Transaction, catalog []CatalogEntry, config *Config) (*DatasetSummary, error) {
	var violations []error
	report := func(format string, args ...interface{}) {
		if len(violations) < maxReportedViolations {
			violations = append(violations, fmt.Errorf(format, args...))
		}
	}

	index := catalogIndex(catalog)
	summary := &DatasetSummary{
		Records:     len(transactions),
		Days:        config.Days(),
		Revenue:     decimal.Zero,
		DailyCounts: make(map[string]int, config.Days()),
	}

	expectedID := config.FirstTransactionID
	previousDay := config.Start
	for i, t := range transactions {
		if t.TransactionID != expectedID {
			report("record %d: transaction id %d, expected %d", i, t.TransactionID, expectedID)
			expectedID = t.TransactionID
		}
		expectedID++

		if !t.TotalSpent.Equal(t.Price.Mul(decimal.NewFromInt(int64(t.Quantity)))) {
			report("transaction %d: total %s is not %s x %d", t.TransactionID, t.TotalSpent, t.Price, t.Quantity)
		}
		if t.Quantity < 1 {
			report("transaction %d: quantity %d is not positive", t.TransactionID, t.Quantity)
		}

		entry, ok := index[t.Item]
		switch {
		case !ok:
			report("transaction %d: item %q is not in the catalog", t.TransactionID, t.Item)
		case entry.Category != t.Category || !entry.Price.Equal(t.Price.Decimal):
			report("transaction %d: %s is %s at %s in the catalog, got %s at %s",
				t.TransactionID, t.Item, entry.Category, entry.Price, t.Category, t.Price)
		}

		if t.Date.Before(config.Start.Time) || t.Date.After(config.End.Time) {
			report("transaction %d: date %s outside [%s, %s]", t.TransactionID, t.Date, config.Start, config.End)
		} else if t.Date.Before(previousDay.Time) {
			report("transaction %d: date %s after records of %s", t.TransactionID, t.Date, previousDay)
		}
		previousDay = t.Date

		summary.DailyCounts[t.Date.String()]++
		summary.Revenue = summary.Revenue.Add(t.TotalSpent.Decimal)
	}

	counts := make(stats.Float64Data, 0, summary.Days)
	for day := config.Start; !day.After(config.End.Time); day = day.AddDays(1) {
		n := summary.DailyCounts[day.String()]
		if n < config.MinDailyTransactions {
			report("day %s: %d transactions, fewer than %d", day, n, config.MinDailyTransactions)
		}
		counts = append(counts, float64(n))
	}
	summary.Volume = volumeStats(counts)

	if len(transactions) > 0 {
		summary.FirstID = transactions[0].TransactionID
		summary.LastID = transactions[len(transactions)-1].TransactionID
	}

	if len(violations) > 0 {
		return summary, fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(violations...))
	}
	return summary, nil
}

func volumeStats(counts stats.Float64Data) VolumeStats {
	var vs VolumeStats
	if counts.Len() == 0 {
		return vs
	}
	vs.Mean, _ = counts.Mean()
	vs.Median, _ = counts.Median()
	vs.StdDev, _ = counts.StandardDeviation()
	vs.Min, _ = counts.Min()
	vs.Max, _ = counts.Max()
	return vs
}
