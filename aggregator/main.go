package main

import (
	"fmt"
	"os"

	"github.com/Uthara1292/small-business-analysis/aggregator/common"
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/op/go-logging"
)

const configFilePath = "config.json"

var log = logging.MustGetLogger("log")

// InitLogger Receives the log level to be set in go-logging as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	// Set the backends to be used.
	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	config, err := InitConfig(configFilePath)
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if err := InitLogger(config.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}
	log.Debugf("Config: %+v", config)

	transactions, err := loadTransactions(config.InputPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	aggregator, err := common.NewAggregator(&config.Query)
	if err != nil {
		log.Fatalf("Invalid query: %v", err)
	}
	batch, err := config.Filters.Apply(ic.TransactionsToBatch(transactions))
	if err != nil {
		log.Fatalf("Invalid filters: %v", err)
	}
	if err := aggregator.AggregateBatch(batch); err != nil {
		log.Fatalf("Query %s failed: %v", config.Query.QueryName, err)
	}
	log.Infof("Query %s: %d of %d transactions kept, %d groups",
		config.Query.QueryName, len(batch.Rows), len(transactions), aggregator.Groups())

	for _, retained := range aggregator.Retained() {
		if err := PrintRetained(os.Stdout, retained); err != nil {
			log.Fatalf("Failed to print %s: %v", retained.Name, err)
		}
	}
}

func loadTransactions(path string) ([]ic.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input: %w", err)
	}
	defer file.Close()
	return ic.ReadTransactions(file)
}
