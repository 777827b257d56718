package report

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSales(t *testing.T, path string, transactions []ic.Transaction) {
	t.Helper()
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, ic.WriteTransactions(file, transactions))
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath: filepath.Join(dir, "coffee_shop_sales.csv"),
		OutputDir: filepath.Join(dir, "visualizations"),
		TopN:      5,
		ChartTopN: 10,
	}

	_, err := Run(opts, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInputNotFound)

	_, statErr := os.Stat(opts.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "output directory must not be created")
}

func TestRunHeaderOnlyInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sales.csv")
	writeSales(t, input, nil)

	_, err := Run(Options{InputPath: input, OutputDir: filepath.Join(dir, "out"), TopN: 5, ChartTopN: 10}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestLoadRoundTrip(t *testing.T) {
	input := filepath.Join(t.TempDir(), "sales.csv")
	writeSales(t, input, sampleSales())

	loaded, err := Load(input)
	require.NoError(t, err)
	require.Len(t, loaded, 6)
	assert.Equal(t, "2025-02", loaded[4].Month())
	assert.Equal(t, 7, loaded[4].Hour())
	assert.Equal(t, "11.25", loaded[2].TotalSpent.String())
}

func TestRunWritesCharts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sales.csv")
	writeSales(t, input, sampleSales())
	opts := Options{InputPath: input, OutputDir: filepath.Join(dir, "visualizations"), TopN: 5, ChartTopN: 10}

	var out bytes.Buffer
	report, err := Run(opts, &out)
	require.NoError(t, err)
	assert.Equal(t, 6, report.Records)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Loading data...\n"))
	assert.Contains(t, text, "Data Loaded: 6 records, 12 columns.")
	assert.Contains(t, text, "Total Revenue: $36.50")
	assert.Contains(t, text, "Analysis Complete.")

	for _, name := range []string{
		"1_monthly_revenue_trend",
		"2_sales_by_category",
		"3_hourly_transactions",
		"4_top_selling_items",
		"5_payment_distribution",
	} {
		path := filepath.Join(opts.OutputDir, name+".xlsx")
		assert.Contains(t, text, "Saved: "+path)

		workbook, err := zip.OpenReader(path)
		require.NoError(t, err, name)
		var hasChart bool
		for _, f := range workbook.File {
			if strings.HasPrefix(f.Name, "xl/charts/chart") {
				hasChart = true
			}
		}
		workbook.Close()
		assert.True(t, hasChart, "%s has no chart part", name)
	}
}

func TestChartFormat(t *testing.T) {
	chart := Chart{
		File:   "x",
		Title:  "Payments",
		Kind:   pieChart,
		Header: [2]string{"Payment Method", "Transactions"},
		Points: []chartPoint{{"Cash", 2}, {"Credit Card", 3}},
	}
	format, err := chart.format()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "pie",
		"series": [{"name": "Sheet1!$B$1", "categories": "Sheet1!$A$2:$A$3", "values": "Sheet1!$B$2:$B$3"}],
		"title": {"name": "Payments"},
		"legend": {"position": "right"}
	}`, format)

	_, err = Chart{File: "empty", Kind: lineChart}.Write(t.TempDir())
	assert.Error(t, err)
}

func TestChartWorkbookRejectsBadFormat(t *testing.T) {
	chart := Chart{
		File:   "broken",
		Kind:   columnChart,
		Header: [2]string{"Category", "Revenue ($)"},
		Points: []chartPoint{{"Coffee", 12.5}},
	}
	_, err := chart.workbook(`{"type": "col", "series": [`)
	assert.Error(t, err)

	xlsx, err := chart.workbook(`{"type": "col", "series": [{"name": "Sheet1!$B$1", "categories": "Sheet1!$A$2:$A$2", "values": "Sheet1!$B$2:$B$2"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", xlsx.GetCellValue(chartSheet, "A2"))
}
