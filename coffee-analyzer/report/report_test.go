package report

import (
	"bytes"
	"math"
	"testing"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultOptions = Options{TopN: 5, ChartTopN: 10}

func sale(id int64, date string, at string, item string, category ic.Category, price string, quantity int, payment ic.PaymentMethod) ic.Transaction {
	d, err := ic.ParseDate(date)
	if err != nil {
		panic(err)
	}
	clock, err := ic.ParseClockTime(at)
	if err != nil {
		panic(err)
	}
	p := ic.MustMoney(price)
	return ic.Transaction{
		TransactionID: id,
		Date:          d,
		Time:          clock,
		Item:          item,
		Category:      category,
		Price:         p,
		Quantity:      quantity,
		TotalSpent:    p.Times(quantity),
		PaymentMethod: payment,
		CustomerType:  ic.Regular,
	}
}

func sampleSales() []ic.Transaction {
	return []ic.Transaction{
		sale(1000, "2025-01-01", "07:15", "Espresso", ic.Coffee, "3.00", 2, ic.CreditCard),
		sale(1001, "2025-01-01", "09:05", "Latte", ic.Coffee, "4.50", 1, ic.Cash),
		sale(1002, "2025-01-01", "09:40", "Croissant", ic.Bakery, "3.75", 3, ic.CreditCard),
		sale(1003, "2025-01-02", "12:30", "Avocado Toast", ic.Food, "8.50", 1, ic.MobilePayment),
		sale(1004, "2025-02-03", "07:55", "Green Tea", ic.Tea, "3.25", 1, ic.CreditCard),
		sale(1005, "2025-02-03", "12:01", "Espresso", ic.Coffee, "3.00", 1, ic.Cash),
	}
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSingleTransaction(t *testing.T) {
	transactions := []ic.Transaction{
		sale(1000, "2025-01-01", "08:30", "Espresso", ic.Coffee, "3.00", 2, ic.CreditCard),
	}

	report, err := Analyze(transactions, defaultOptions)
	require.NoError(t, err)

	assert.True(t, report.TotalRevenue.Equal(money("6.00")))
	assert.True(t, report.AverageTransaction.Equal(money("6.00")))
	require.Len(t, report.TopItemsByQuantity, 1)
	assert.Equal(t, Count{Label: "Espresso", Value: 2}, report.TopItemsByQuantity[0])
	require.Len(t, report.TopItemsByRevenue, 1)
	assert.Equal(t, "Espresso", report.TopItemsByRevenue[0].Label)
	assert.Equal(t, 8, report.PeakHour)
	assert.True(t, report.IDs.OK())

	var out bytes.Buffer
	NewPrinter(&out).Print(report, defaultOptions.TopN)
	assert.Contains(t, out.String(), "Total Revenue: $6.00")
	assert.Contains(t, out.String(), "Average Transaction Value: $6.00")
	assert.Contains(t, out.String(), "Peak Hour for Transactions: 8:00")
}

func TestAnalyze(t *testing.T) {
	report, err := Analyze(sampleSales(), Options{TopN: 2, ChartTopN: 10})
	require.NoError(t, err)

	assert.Equal(t, 6, report.Records)
	assert.Equal(t, 12, report.Columns)
	// 6.00 + 4.50 + 11.25 + 8.50 + 3.25 + 3.00
	assert.Equal(t, "36.50", report.TotalRevenue.StringFixed(2))
	assert.Equal(t, "6.08", report.AverageTransaction.StringFixed(2))

	// tied at 3, ranked by name
	assert.Equal(t, []Count{{"Croissant", 3}, {"Espresso", 3}}, report.TopItemsByQuantity)
	require.Len(t, report.TopItemsByRevenue, 2)
	assert.Equal(t, "Croissant", report.TopItemsByRevenue[0].Label)
	assert.Equal(t, "11.25", report.TopItemsByRevenue[0].Value.StringFixed(2))
	assert.Equal(t, "Espresso", report.TopItemsByRevenue[1].Label)
	assert.Len(t, report.ChartItemsByQuantity, 5)

	categories := make([]string, 0, len(report.CategoryRevenue))
	for _, a := range report.CategoryRevenue {
		categories = append(categories, a.Label)
	}
	// Coffee 13.50, Bakery 11.25, Food 8.50, Tea 3.25
	assert.Equal(t, []string{"Coffee", "Bakery", "Food", "Tea"}, categories)

	assert.Equal(t, []HourCount{{7, 2}, {9, 2}, {12, 2}}, report.HourlyTransactions)
	// three-way tie, earliest hour wins
	assert.Equal(t, 7, report.PeakHour)

	require.Len(t, report.MonthlyRevenue, 2)
	assert.Equal(t, "2025-01", report.MonthlyRevenue[0].Label)
	assert.Equal(t, "30.25", report.MonthlyRevenue[0].Value.StringFixed(2))
	assert.Equal(t, "2025-02", report.MonthlyRevenue[1].Label)
	assert.Equal(t, "6.25", report.MonthlyRevenue[1].Value.StringFixed(2))

	require.Len(t, report.Payments, 3)
	assert.Equal(t, "Credit Card", report.Payments[0].Label)
	assert.Equal(t, 3, report.Payments[0].Count)
	assert.InDelta(t, 0.5, report.Payments[0].Share, 1e-9)
	assert.Equal(t, "Cash", report.Payments[1].Label)
	assert.Equal(t, "Mobile Payment", report.Payments[2].Label)

	assert.Equal(t, 3, report.DailyVolume.Days)
	assert.Equal(t, 3.0, report.DailyVolume.Max)
	assert.Equal(t, 1.0, report.DailyVolume.Min)
	assert.InDelta(t, 2.0, report.DailyVolume.Mean, 1e-9)
}

func TestPeakHourPrefersLargestCount(t *testing.T) {
	assert.Equal(t, 10, peakHour([]HourCount{{7, 3}, {10, 9}, {11, 9}, {19, 1}}))
	assert.Equal(t, -1, peakHour(nil))
}

func TestAnalyzeEmpty(t *testing.T) {
	_, err := Analyze(nil, defaultOptions)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestCheckIDs(t *testing.T) {
	transactions := sampleSales()
	assert.True(t, CheckIDs(transactions).OK())

	transactions[2].TransactionID = 1009
	transactions[4].TransactionID = 1001
	check := CheckIDs(transactions)
	assert.False(t, check.OK())
	assert.Equal(t, uint64(1), check.Duplicates)
	assert.Equal(t, uint64(5), check.MissingCount)
	assert.Equal(t, []uint64{1002, 1004, 1006, 1007, 1008}, check.FirstMissing)
}

func TestCheckIDsBoundsListedGaps(t *testing.T) {
	transactions := sampleSales()[:2]
	transactions[0].TransactionID = 0
	transactions[1].TransactionID = math.MaxInt64

	check := CheckIDs(transactions)
	assert.False(t, check.OK())
	assert.Equal(t, uint64(math.MaxInt64-1), check.MissingCount)
	require.Len(t, check.FirstMissing, maxListedMissingIDs)
	assert.Equal(t, uint64(1), check.FirstMissing[0])
	assert.Equal(t, uint64(maxListedMissingIDs), check.FirstMissing[maxListedMissingIDs-1])

	var out bytes.Buffer
	NewPrinter(&out).Print(&Report{Records: 2, Columns: 12, IDs: check}, 0)
	assert.Contains(t, out.String(), "Warning: 9223372036854775806 transaction ids missing, 0 repeated.")
	assert.Contains(t, out.String(), "First missing ids: [1 2 3 4 5 6 7 8 9 10]")
}

func TestMoneyFormatting(t *testing.T) {
	pr := NewPrinter(&bytes.Buffer{})
	assert.Equal(t, "$0.00", pr.Money(decimal.Zero))
	assert.Equal(t, "$6.00", pr.Money(money("6")))
	assert.Equal(t, "$1,234.57", pr.Money(money("1234.565")))
	assert.Equal(t, "$81,233.25", pr.Money(money("81233.25")))
	assert.Equal(t, "-$3.50", pr.Money(money("-3.5")))
}
