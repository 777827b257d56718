package aggfunctions

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

func NewSumAggregation() *SumAggregation {
	return &SumAggregation{sum: decimal.Zero}
}

// SumAggregation adds values exactly. Money columns must not drift, so
// the running total is a decimal regardless of the input type.
type SumAggregation struct {
	sum decimal.Decimal
}

func (s *SumAggregation) Add(value interface{}) Aggregation {
	switch v := value.(type) {
	case decimal.Decimal:
		s.sum = s.sum.Add(v)
	case int:
		s.sum = s.sum.Add(decimal.NewFromInt(int64(v)))
	case int64:
		s.sum = s.sum.Add(decimal.NewFromInt(v))
	case string:
		if parsed, err := decimal.NewFromString(v); err == nil {
			s.sum = s.sum.Add(parsed)
		}
	case fmt.Stringer:
		if parsed, err := decimal.NewFromString(v.String()); err == nil {
			s.sum = s.sum.Add(parsed)
		}
	default:
		// try parse to float64
		if parsed, err := cast.ToFloat64E(value); err == nil {
			s.sum = s.sum.Add(decimal.NewFromFloat(parsed))
		}
	}
	return s
}

func (s *SumAggregation) Result() interface{} {
	return s.sum
}
