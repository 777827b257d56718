package innercommunication

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// WriteTransactions writes the header row followed by one row per transaction.
func WriteTransactions(w io.Writer, transactions []Transaction) error {
	if len(transactions) == 0 {
		// header-only table
		_, err := fmt.Fprintln(w, csvHeader())
		return err
	}
	if err := gocsv.Marshal(transactions, w); err != nil {
		return fmt.Errorf("failed to marshal transactions: %w", err)
	}
	return nil
}

// ReadTransactions parses a sales table. A table holding only the header
// yields an empty slice.
func ReadTransactions(r io.Reader) ([]Transaction, error) {
	var transactions []Transaction
	if err := gocsv.Unmarshal(r, &transactions); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}
	return transactions, nil
}

func csvHeader() string {
	return strings.Join(TransactionColumns, ",")
}
