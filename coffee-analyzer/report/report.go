package report

import (
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// Options tunes the analysis.
type Options struct {
	InputPath string
	OutputDir string
	TopN      int
	ChartTopN int
}

// VolumeStats summarizes transactions per day.
type VolumeStats struct {
	Days   int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Report holds every figure the analyzer prints or charts.
type Report struct {
	Records int
	Columns int
	IDs     IDCheck

	TotalRevenue       decimal.Decimal
	AverageTransaction decimal.Decimal

	TopItemsByQuantity   []Count
	TopItemsByRevenue    []Amount
	ChartItemsByQuantity []Count
	CategoryRevenue      []Amount

	PeakHour           int
	HourlyTransactions []HourCount
	MonthlyRevenue     []Amount
	Payments           []Share
	DailyVolume        VolumeStats
}

// Analyze runs every query over the transactions. Month and Hour are
// derived from each record's date and time.
func Analyze(transactions []ic.Transaction, opts Options) (*Report, error) {
	if len(transactions) == 0 {
		return nil, ErrEmptyDataset
	}
	batch := ic.TransactionsToBatch(transactions)
	report := &Report{
		Records: len(transactions),
		Columns: len(ic.TransactionColumns) + 2,
		IDs:     CheckIDs(transactions),
	}

	revenue, count, err := totals(batch)
	if err != nil {
		return nil, err
	}
	report.TotalRevenue = revenue
	report.AverageTransaction = revenue.Div(decimal.NewFromInt(int64(count)))

	items, err := rankItems(batch, opts.TopN, opts.ChartTopN)
	if err != nil {
		return nil, err
	}
	report.TopItemsByQuantity = items.byQuantity
	report.TopItemsByRevenue = items.byRevenue
	report.ChartItemsByQuantity = items.chartByQuantity

	if report.CategoryRevenue, err = revenueBy(batch, ic.ColCategory); err != nil {
		return nil, err
	}
	sortAmountsDesc(report.CategoryRevenue)

	if report.HourlyTransactions, err = hourly(batch); err != nil {
		return nil, err
	}
	report.PeakHour = peakHour(report.HourlyTransactions)

	if report.MonthlyRevenue, err = revenueBy(batch, ic.ColMonth); err != nil {
		return nil, err
	}

	payments, err := countBy(batch, ic.ColPaymentMethod)
	if err != nil {
		return nil, err
	}
	report.Payments = shares(payments)

	daily, err := countBy(batch, ic.ColDate)
	if err != nil {
		return nil, err
	}
	report.DailyVolume = dailyVolume(daily)

	return report, nil
}

func dailyVolume(daily []Count) VolumeStats {
	counts := make(stats.Float64Data, 0, len(daily))
	for _, d := range daily {
		counts = append(counts, float64(d.Value))
	}
	vs := VolumeStats{Days: len(daily)}
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
