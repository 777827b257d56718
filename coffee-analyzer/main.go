package main

import (
	"errors"
	"io"
	"os"

	"github.com/Uthara1292/small-business-analysis/coffee-analyzer/report"

	"github.com/op/go-logging"
)

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

	if err := analyze(config, os.Stdout); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}

// analyze runs the report. A missing input table is reported and ends the
// run early without error, since there is nothing to analyze yet.
func analyze(config *Config, out io.Writer) error {
	_, err := report.Run(config.Options(), out)
	if errors.Is(err, report.ErrInputNotFound) {
		log.Errorf("Error: %s not found. Please run the generator first.", config.InputPath)
		return nil
	}
	return err
}
