package filter

import (
	"fmt"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Config selects the rows kept before aggregation. Empty fields disable
// their filter.
type Config struct {
	FromDate  string `json:"from-date" mapstructure:"from-date"`
	ToDate    string `json:"to-date" mapstructure:"to-date"`
	FromHour  *int   `json:"from-hour" mapstructure:"from-hour"`
	ToHour    *int   `json:"to-hour" mapstructure:"to-hour"`
	MinAmount string `json:"min-amount" mapstructure:"min-amount"`
}

type rowFilter func(batch *ic.RowsBatch) (*ic.RowsBatch, error)

// Apply runs every configured filter over the batch.
func (c Config) Apply(batch *ic.RowsBatch) (*ic.RowsBatch, error) {
	filters, err := c.filters()
	if err != nil {
		return nil, err
	}
	for _, f := range filters {
		if batch, err = f(batch); err != nil {
			return nil, err
		}
	}
	return batch, nil
}

func (c Config) filters() ([]rowFilter, error) {
	var filters []rowFilter
	if c.FromDate != "" || c.ToDate != "" {
		from, err := normalizeDate(c.FromDate)
		if err != nil {
			return nil, err
		}
		to, err := normalizeDate(c.ToDate)
		if err != nil {
			return nil, err
		}
		filters = append(filters, func(b *ic.RowsBatch) (*ic.RowsBatch, error) {
			return FilterRowsByDate(b, from, to)
		})
	}
	if c.FromHour != nil || c.ToHour != nil {
		from, to := 0, 24
		if c.FromHour != nil {
			from = *c.FromHour
		}
		if c.ToHour != nil {
			to = *c.ToHour
		}
		if from < 0 || to > 24 || from >= to {
			return nil, fmt.Errorf("invalid hour window [%d, %d)", from, to)
		}
		filters = append(filters, func(b *ic.RowsBatch) (*ic.RowsBatch, error) {
			return FilterRowsByHour(b, from, to)
		})
	}
	if c.MinAmount != "" {
		minAmount, err := decimal.NewFromString(c.MinAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid min-amount %q: %w", c.MinAmount, err)
		}
		filters = append(filters, func(b *ic.RowsBatch) (*ic.RowsBatch, error) {
			return FilterRowsByTransactionAmount(b, minAmount)
		})
	}
	return filters, nil
}

// normalizeDate accepts any unambiguous date format and returns it as
// YYYY-MM-DD.
func normalizeDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := dateparse.ParseStrict(s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.Format(ic.DateLayout), nil
}

// FilterRowsByDate keeps rows dated within [from, to]. An empty bound is open.
func FilterRowsByDate(batch *ic.RowsBatch, from, to string) (*ic.RowsBatch, error) {
	return filterRows(batch, ic.ColDate, func(value interface{}) (bool, error) {
		date, ok := value.(string)
		if !ok {
			return false, fmt.Errorf("%s column is not a string", ic.ColDate)
		}
		// YYYY-MM-DD sorts chronologically
		return (from == "" || date >= from) && (to == "" || date <= to), nil
	})
}

// FilterRowsByHour keeps rows whose hour of day is within [from, to).
func FilterRowsByHour(batch *ic.RowsBatch, from, to int) (*ic.RowsBatch, error) {
	return filterRows(batch, ic.ColHour, func(value interface{}) (bool, error) {
		hour, err := cast.ToIntE(value)
		if err != nil {
			return false, fmt.Errorf("%s column is not an integer: %w", ic.ColHour, err)
		}
		return hour >= from && hour < to, nil
	})
}

// FilterRowsByTransactionAmount keeps rows that spent at least minAmount.
func FilterRowsByTransactionAmount(batch *ic.RowsBatch, minAmount decimal.Decimal) (*ic.RowsBatch, error) {
	return filterRows(batch, ic.ColTotalSpent, func(value interface{}) (bool, error) {
		amount, ok := value.(decimal.Decimal)
		if !ok {
			return false, fmt.Errorf("%s column is not a decimal", ic.ColTotalSpent)
		}
		return amount.GreaterThanOrEqual(minAmount), nil
	})
}

func filterRows(batch *ic.RowsBatch, column string, keep func(value interface{}) (bool, error)) (*ic.RowsBatch, error) {
	index := batch.ColumnIndex(column)
	if index == -1 {
		return nil, fmt.Errorf("%s column not found", column)
	}

	filteredRows := make([][]interface{}, 0, len(batch.Rows))
	for _, row := range batch.Rows {
		if len(row) <= index {
			return nil, fmt.Errorf("row does not have enough columns")
		}
		ok, err := keep(row[index])
		if err != nil {
			return nil, err
		}
		if ok {
			filteredRows = append(filteredRows, row)
		}
	}
	return ic.NewRowsBatch(batch.ColumnNames, filteredRows), nil
}
