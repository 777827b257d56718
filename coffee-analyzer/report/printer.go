package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes a Report as text, amounts grouped US style ($1,234.56).
type Printer struct {
	w io.Writer
	p *message.Printer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, p: message.NewPrinter(language.English)}
}

// Money formats an amount with a dollar sign, thousands separators and two
// decimals. It works on the decimal digits, so no rounding error creeps in.
func (pr *Printer) Money(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return pr.p.Sprintf("%s$%d.%s", sign, cast.ToInt64(whole), frac)
}

func (pr *Printer) Number(n int64) string {
	return pr.p.Sprintf("%d", n)
}

func (pr *Printer) line(format string, args ...interface{}) {
	fmt.Fprintf(pr.w, format+"\n", args...)
}

// Print writes the loaded-data line and the analysis sections.
func (pr *Printer) Print(r *Report, topN int) {
	pr.line("Data Loaded: %d records, %d columns.", r.Records, r.Columns)
	if !r.IDs.OK() {
		pr.line("Warning: %d transaction ids missing, %d repeated.", r.IDs.MissingCount, r.IDs.Duplicates)
		if len(r.IDs.FirstMissing) > 0 {
			pr.line("  First missing ids: %v", r.IDs.FirstMissing)
		}
	}

	pr.line("")
	pr.line("--- DEEP ANALYSIS ---")
	pr.line("Total Revenue: %s", pr.Money(r.TotalRevenue))
	pr.line("Average Transaction Value: %s", pr.Money(r.AverageTransaction))

	pr.line("")
	pr.line("Top %d Items by Quantity Sold:", topN)
	for _, c := range r.TopItemsByQuantity {
		pr.line("  %-24s %10s", c.Label, pr.Number(c.Value))
	}

	pr.line("")
	pr.line("Top %d Items by Revenue:", topN)
	for _, a := range r.TopItemsByRevenue {
		pr.line("  %-24s %12s", a.Label, pr.Money(a.Value))
	}

	pr.line("")
	pr.line("Sales by Category:")
	for _, a := range r.CategoryRevenue {
		pr.line("  %-24s %12s", a.Label, pr.Money(a.Value))
	}

	pr.line("")
	pr.line("Peak Hour for Transactions: %d:00", r.PeakHour)

	pr.line("")
	pr.line("Monthly Revenue:")
	for _, a := range r.MonthlyRevenue {
		pr.line("  %-24s %12s", a.Label, pr.Money(a.Value))
	}

	pr.line("")
	pr.line("Payment Method Distribution:")
	for _, s := range r.Payments {
		pr.line("  %-24s %10s %6.1f%%", s.Label, pr.Number(int64(s.Count)), s.Share*100)
	}

	v := r.DailyVolume
	pr.line("")
	pr.line("Daily Volume over %d days: mean %.1f, median %.1f, stddev %.1f, min %.0f, max %.0f",
		v.Days, v.Mean, v.Median, v.StdDev, v.Min, v.Max)
}
