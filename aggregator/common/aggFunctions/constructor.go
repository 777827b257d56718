package aggfunctions

func NewAggregation(funcName string) Aggregation {
	switch funcName {
	case "sum":
		return NewSumAggregation()
	case "count":
		return NewCountAggregation()
	}
	return nil
}

// IsSupported reports whether NewAggregation knows funcName.
func IsSupported(funcName string) bool {
	return GetTypeOfAgg(funcName) != TypeUnknown
}
