package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/360EntSecGroup-Skylar/excelize"
)

const chartSheet = "Sheet1"

// Chart kinds understood by excelize.
const (
	lineChart   = "line"
	columnChart = "col"
	barChart    = "bar"
	pieChart    = "pie"
)

type chartPoint struct {
	Label string
	Value float64
}

// Chart is one workbook: a two-column data table and a chart over it.
type Chart struct {
	File   string
	Title  string
	Kind   string
	Header [2]string
	Points []chartPoint
}

type chartSeries struct {
	Name       string `json:"name"`
	Categories string `json:"categories"`
	Values     string `json:"values"`
}

type chartTitle struct {
	Name string `json:"name"`
}

type chartLegend struct {
	Position string `json:"position"`
}

type chartFormat struct {
	Type   string        `json:"type"`
	Series []chartSeries `json:"series"`
	Title  chartTitle    `json:"title"`
	Legend *chartLegend  `json:"legend,omitempty"`
}

// Charts lists the workbooks written for a report, in output order.
func Charts(r *Report) []Chart {
	monthly := make([]chartPoint, 0, len(r.MonthlyRevenue))
	for _, a := range r.MonthlyRevenue {
		monthly = append(monthly, chartPoint{a.Label, a.Value.InexactFloat64()})
	}
	categories := make([]chartPoint, 0, len(r.CategoryRevenue))
	for _, a := range r.CategoryRevenue {
		categories = append(categories, chartPoint{a.Label, a.Value.InexactFloat64()})
	}
	hours := make([]chartPoint, 0, len(r.HourlyTransactions))
	for _, h := range r.HourlyTransactions {
		hours = append(hours, chartPoint{fmt.Sprintf("%d", h.Hour), float64(h.Count)})
	}
	items := make([]chartPoint, 0, len(r.ChartItemsByQuantity))
	for _, c := range r.ChartItemsByQuantity {
		items = append(items, chartPoint{c.Label, float64(c.Value)})
	}
	payments := make([]chartPoint, 0, len(r.Payments))
	for _, s := range r.Payments {
		payments = append(payments, chartPoint{s.Label, float64(s.Count)})
	}

	return []Chart{
		{"1_monthly_revenue_trend", "Monthly Revenue Trend", lineChart, [2]string{"Month", "Total Revenue ($)"}, monthly},
		{"2_sales_by_category", "Total Revenue by Product Category", columnChart, [2]string{"Category", "Revenue ($)"}, categories},
		{"3_hourly_transactions", "Hourly Transaction Volume", columnChart, [2]string{"Hour of Day", "Number of Transactions"}, hours},
		{"4_top_selling_items", "Top Best-Selling Items (Quantity)", barChart, [2]string{"Item", "Quantity Sold"}, items},
		{"5_payment_distribution", "Payment Method Distribution", pieChart, [2]string{"Payment Method", "Transactions"}, payments},
	}
}

// format builds the excelize chart definition over the data table.
func (c Chart) format() (string, error) {
	last := len(c.Points) + 1
	f := chartFormat{
		Type: c.Kind,
		Series: []chartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", chartSheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", chartSheet, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", chartSheet, last),
		}},
		Title: chartTitle{Name: c.Title},
	}
	if c.Kind == pieChart {
		f.Legend = &chartLegend{Position: "right"}
	}
	out, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Write saves the chart as dir/<File>.xlsx and returns the path.
func (c Chart) Write(dir string) (string, error) {
	if len(c.Points) == 0 {
		return "", fmt.Errorf("chart %s has no data", c.File)
	}
	format, err := c.format()
	if err != nil {
		return "", fmt.Errorf("chart %s: %w", c.File, err)
	}

	xlsx, err := c.workbook(format)
	if err != nil {
		return "", fmt.Errorf("chart %s: %w", c.File, err)
	}

	path := filepath.Join(dir, c.File+".xlsx")
	if err := xlsx.SaveAs(path); err != nil {
		return "", fmt.Errorf("could not save %s: %w", path, err)
	}
	return path, nil
}

// workbook lays out the data table and places the chart described by format
// next to it.
func (c Chart) workbook(format string) (*excelize.File, error) {
	xlsx := excelize.NewFile()
	xlsx.SetCellValue(chartSheet, "A1", c.Header[0])
	xlsx.SetCellValue(chartSheet, "B1", c.Header[1])
	for i, point := range c.Points {
		xlsx.SetCellValue(chartSheet, fmt.Sprintf("A%d", i+2), point.Label)
		xlsx.SetCellValue(chartSheet, fmt.Sprintf("B%d", i+2), point.Value)
	}
	if err := xlsx.AddChart(chartSheet, "D2", format); err != nil {
		return nil, err
	}
	return xlsx, nil
}
