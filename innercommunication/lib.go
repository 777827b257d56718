package innercommunication

import (
	"fmt"
)

// RowsBatch is a column-named table handed to the aggregation engine.
type RowsBatch struct {
	ColumnNames []string
	Rows        [][]interface{}
}

func NewRowsBatch(columnNames []string, rows [][]interface{}) *RowsBatch {
	return &RowsBatch{
		ColumnNames: columnNames,
		Rows:        rows,
	}
}

// ColumnIndex returns the position of a column, or -1 if the batch lacks it.
func (rb *RowsBatch) ColumnIndex(name string) int {
	for i, col := range rb.ColumnNames {
		if col == name {
			return i
		}
	}
	return -1
}

// AnalysisColumns is the layout produced by TransactionsToBatch.
var AnalysisColumns = []string{
	ColTransactionID,
	ColDate,
	ColTime,
	ColItem,
	ColCategory,
	ColPrice,
	ColQuantity,
	ColTotalSpent,
	ColPaymentMethod,
	ColCustomerType,
	ColMonth,
	ColHour,
}

// TransactionsToBatch flattens transactions into a RowsBatch, adding the
// derived Month and Hour columns.
func TransactionsToBatch(transactions []Transaction) *RowsBatch {
	rows := make([][]interface{}, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []interface{}{
			t.TransactionID,
			t.Date.String(),
			t.Time.String(),
			t.Item,
			string(t.Category),
			t.Price.Decimal,
			t.Quantity,
			t.TotalSpent.Decimal,
			string(t.PaymentMethod),
			string(t.CustomerType),
			t.Month(),
			t.Hour(),
		})
	}
	return NewRowsBatch(AnalysisColumns, rows)
}

func (rb *RowsBatch) String() string {
	return fmt.Sprintf("RowsBatch{columns: %v, rows: %d}", rb.ColumnNames, len(rb.Rows))
}
