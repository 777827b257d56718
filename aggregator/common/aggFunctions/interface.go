package aggfunctions

type AggConfig struct {
	Col  string `json:"col" mapstructure:"col"`
	Func string `json:"func" mapstructure:"func"`
}

type Aggregation interface {
	Add(value interface{}) Aggregation
	Result() interface{}
}

const (
	TypeInt     = "int"
	TypeDecimal = "decimal"
	TypeUnknown = "unknown"
)

// GetTypeOfAgg returns the dynamic type of Result() for an aggregation func.
func GetTypeOfAgg(funcName string) string {
	switch funcName {
	case "sum":
		return TypeDecimal
	case "count":
		return TypeInt
	default:
		return TypeUnknown
	}
}
