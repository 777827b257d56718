package main

import (
	"os"
	"time"

	"github.com/Uthara1292/small-business-analysis/generator/common"

	"github.com/google/uuid"
	"github.com/op/go-logging"
)

const configFilePath = "config.json"

var log = logging.MustGetLogger("log")

// InitLogger Receives the log level to be set in go-logging as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
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

func clockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

func main() {
	config, err := common.InitConfig(configFilePath, clockSeed)
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if err := InitLogger(config.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}
	log.Debugf("Config: %+v", config)

	runID := uuid.New()
	if !config.SeedSet {
		log.Infof("No seed configured, using %d (set SEED to replay this run)", config.Seed)
	}
	log.Infof("Generating transactions from %s to %s (run %s, seed %d)", config.Start, config.End, runID, config.Seed)

	catalog := common.BuildCatalog(common.DefaultMenu)
	simulator, err := common.NewSimulator(config, catalog, common.NewRandomSource(config.Seed))
	if err != nil {
		log.Fatalf("Failed to create simulator: %v", err)
	}
	if config.ShowProgress {
		simulator.SetProgressOutput(os.Stderr)
	}

	transactions := simulator.Run()

	summary, err := common.Validate(transactions, catalog, config)
	if err != nil {
		log.Fatalf("Generated dataset failed validation: %v", err)
	}
	log.Infof("Daily volume: mean %.1f, median %.1f, stddev %.1f, min %.0f, max %.0f",
		summary.Volume.Mean, summary.Volume.Median, summary.Volume.StdDev, summary.Volume.Min, summary.Volume.Max)
	log.Infof("Transaction ids %d..%d, revenue %s", summary.FirstID, summary.LastID, summary.Revenue.StringFixed(2))

	if err := common.WriteDataset(config.OutputPath, runID, transactions); err != nil {
		log.Fatalf("Failed to save dataset: %v", err)
	}

	log.Infof("Data generation complete. Saved to %s", config.OutputPath)
	log.Infof("Total records: %d", len(transactions))
}
