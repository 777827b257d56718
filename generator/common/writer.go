package common

import (
	"fmt"
	"os"
	"path/filepath"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/google/uuid"
)

// WriteDataset writes the sales table to path. Rows go to a run-specific
// temporary file first, renamed over path only once fully written.
func WriteDataset(path string, runID uuid.UUID, transactions []ic.Transaction) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create output directory: %w", err)
		}
	}

	tmpPath := fmt.Sprintf("%s.%s.tmp", path, runID)
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", tmpPath, err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if err = ic.WriteTransactions(file, transactions); err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("could not move dataset into place: %w", err)
	}

	log.Debugf("Wrote %d transactions to %s", len(transactions), path)
	return nil
}
