package aggfunctions

import "github.com/spf13/cast"

func NewCountAggregation() *CountAggregation {
	return &CountAggregation{count: 0}
}

type CountAggregation struct {
	count int
}

func (c *CountAggregation) Add(value interface{}) Aggregation {
	// counts the row whatever the value is
	c.count++
	return c
}

func (c *CountAggregation) Result() interface{} {
	return c.count
}

// Set overrides the running count; unparsable values are ignored.
func (c *CountAggregation) Set(value interface{}) {
	if parsed, err := cast.ToIntE(value); err == nil {
		c.count = parsed
	}
}
