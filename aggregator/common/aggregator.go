package common

import (
	"errors"

	a "github.com/Uthara1292/small-business-analysis/aggregator/common/aggFunctions"
	dr "github.com/Uthara1292/small-business-analysis/aggregator/common/dataRetainer"
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/op/go-logging"
)

var ErrMissingColumn = errors.New("column not in batch")

var log = logging.MustGetLogger("log")

// Aggregator reduces RowsBatches into one set of aggregations per group.
type Aggregator struct {
	Config       *Config
	reducedData  map[string][]a.Aggregation
	dataRetainer dr.DataRetainer
	rowsSeen     int
	rowsSkipped  int
}

func NewAggregator(config *Config) (*Aggregator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{
		Config:       config,
		reducedData:  make(map[string][]a.Aggregation),
		dataRetainer: dr.NewDataRetainer(config.Retainings),
	}, nil
}

// AggregateBatch folds the batch rows into the groups. The batch must carry
// every group-by and aggregation column; rows of the wrong length are
// skipped.
func (ag *Aggregator) AggregateBatch(batch *ic.RowsBatch) error {
	if err := checkColumns(ag.Config, batch); err != nil {
		return err
	}
	groupByIndexes := getGroupByColIndexes(ag.Config, batch)
	aggIndexes := getAggColIndexes(ag.Config, batch)

	for _, row := range batch.Rows {
		ag.rowsSeen++
		if len(row) != len(batch.ColumnNames) {
			// ignore row
			log.Warningf("Row length %d does not match column names length %d, ignoring row", len(row), len(batch.ColumnNames))
			ag.rowsSkipped++
			continue
		}

		key := getGroupByKey(groupByIndexes, row)

		if _, exists := ag.reducedData[key]; !exists {
			ag.reducedData[key] = make([]a.Aggregation, len(ag.Config.Aggregations))
			for i, agg := range ag.Config.Aggregations {
				ag.reducedData[key][i] = a.NewAggregation(agg.Func)
			}
		}

		for i, agg := range ag.Config.Aggregations {
			ag.reducedData[key][i] = ag.reducedData[key][i].Add(row[aggIndexes[agg.Col]])
		}
	}
	return nil
}

// Groups returns the number of distinct group keys seen so far.
func (ag *Aggregator) Groups() int {
	return len(ag.reducedData)
}

// Result returns every group as a batch: group-by columns followed by one
// column per aggregation, named func_col.
func (ag *Aggregator) Result() *ic.RowsBatch {
	rows := getAggregatedRowsFromGroupedData(ag.reducedData)
	return getBatchFromAggregatedRows(ag.Config.GroupBy, ag.Config.Aggregations, rows)
}

// Retained applies the configured retainings; without any it returns all
// groups ordered by key.
func (ag *Aggregator) Retained() []dr.RetainedData {
	log.Debugf("Query %s: %d rows, %d skipped, %d groups",
		ag.Config.QueryName, ag.rowsSeen, ag.rowsSkipped, len(ag.reducedData))
	return ag.dataRetainer.RetainData(ag.Config.GroupBy, ag.Config.Aggregations, ag.reducedData)
}
