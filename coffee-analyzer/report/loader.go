package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Uthara1292/small-business-analysis/bitmap"
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

var (
	ErrInputNotFound = errors.New("input file not found")
	ErrEmptyDataset  = errors.New("dataset has no records")
)

// IDCheck describes how the transaction ids of a dataset deviate from one
// gap-free run.
type IDCheck struct {
	MissingCount uint64
	// FirstMissing lists at most maxListedMissingIDs of the absent ids.
	FirstMissing []uint64
	Duplicates   uint64
}

const maxListedMissingIDs = 10

func (c IDCheck) OK() bool {
	return c.MissingCount == 0 && c.Duplicates == 0
}

// Load reads the sales table at path.
func Load(path string) ([]ic.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	transactions, err := ic.ReadTransactions(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	if len(transactions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}
	return transactions, nil
}

// CheckIDs collects the transaction ids into a bitmap and reports gaps and
// repeated ids.
func CheckIDs(transactions []ic.Transaction) IDCheck {
	ids := bitmap.New()
	var negative int
	for _, t := range transactions {
		if t.TransactionID < 0 {
			negative++
			continue
		}
		ids.Add(uint64(t.TransactionID))
	}
	if negative > 0 {
		log.Warningf("%d transactions have a negative id", negative)
	}

	check := IDCheck{
		MissingCount: ids.MissingCount(),
		FirstMissing: ids.FirstMissing(maxListedMissingIDs),
		Duplicates:   ids.Duplicates(),
	}
	if !ids.IsContiguous() {
		log.Warningf("Transaction ids are not contiguous: %s, %d missing", ids, check.MissingCount)
	}
	return check
}
