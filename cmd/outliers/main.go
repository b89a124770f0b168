package main

import (
	"fmt"
	"io"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/smartcontractkit/outlier-stats/cmd/outliers/config"
	"github.com/smartcontractkit/outlier-stats/cmd/outliers/run"
	"github.com/smartcontractkit/outlier-stats/cmd/outliers/telemetry"
	"github.com/smartcontractkit/outlier-stats/pkg/outliers"
)

var (
	datasetFile     = flag.StringP("dataset-file", "f", "./dataset.json", "file path to read the dataset from")
	outputDirectory = flag.StringP("output-directory", "o", "./outliers_logs", "directory path to output log files")
	multiplier      = flag.Float64P("multiplier", "m", outliers.DefaultMultiplier, "fence multiplier; overrides the dataset value when set")
	verbose         = flag.BoolP("verbose", "v", false, "write the run log and dataset copy to the output directory")
	presorted       = flag.Bool("presorted", false, "trust the dataset to be ranked ascending by score and skip ranking")
	metricsFile     = flag.String("metrics-file", "", "file path to write report metrics to in prometheus text format")
)

func main() {
	// ----- collect run parameters
	flag.Parse()

	procLog := log.New(log.Writer(), "[outliers-startup] ", log.LstdFlags)

	// ----- read dataset file
	procLog.Println("loading dataset ...")
	dataset, err := run.LoadDataset(*datasetFile)
	if err != nil {
		procLog.Printf("failed to load dataset: %s", err)
		os.Exit(1)
	}

	// ----- setup output directory and file handles
	outputs, err := run.SetupOutput(*outputDirectory, *verbose, dataset)
	if err != nil {
		procLog.Printf("failed to setup output directory: %s", err)
		os.Exit(1)
	}

	opts := analysis{
		multiplierSet: flag.CommandLine.Changed("multiplier"),
		multiplier:    *multiplier,
		presorted:     *presorted,
		metricsFile:   *metricsFile,
	}

	if _, err := analyze(os.Stdout, dataset, opts, procLog, outputs.Log); err != nil {
		procLog.Printf("%s", err)
		_ = outputs.Close()
		os.Exit(1)
	}

	if err := outputs.Close(); err != nil {
		procLog.Printf("failed to close outputs: %s", err)
		os.Exit(1)
	}
}

// analysis holds the parsed run parameters that shape a detection run.
type analysis struct {
	multiplierSet bool
	multiplier    float64
	presorted     bool
	metricsFile   string
}

func analyze(out io.Writer, dataset config.Dataset, opts analysis, procLog, runLog *log.Logger) (telemetry.Report, error) {
	k := resolveMultiplier(dataset, opts.multiplierSet, opts.multiplier)

	records := dataset.Records
	if !opts.presorted {
		records = outliers.SortByScore(records)
	} else if !outliers.IsRanked(records) {
		procLog.Println("dataset marked presorted is not ranked ascending; quartiles follow file order")
	}

	runLog.Printf("analyzing %d records with multiplier %v", len(records), k)

	report, err := telemetry.NewReport(dataset.Title, records, k)
	if err != nil {
		return report, fmt.Errorf("failed to detect outliers: %w", err)
	}

	runLog.Printf("run %s: %d outliers outside [%v, %v]", report.RunID, len(report.Outliers), report.Fences.Lower, report.Fences.Upper)

	if _, err := fmt.Fprintln(out, report.PrintTabularResults()); err != nil {
		return report, err
	}

	if opts.metricsFile != "" {
		metrics := telemetry.NewMetrics()
		metrics.Observe(report)

		if err := metrics.WriteToTextfile(opts.metricsFile); err != nil {
			return report, fmt.Errorf("failed to write metrics file: %w", err)
		}
	}

	return report, nil
}

// resolveMultiplier picks the fence multiplier: an explicit flag wins over the
// dataset value, which wins over the default.
func resolveMultiplier(dataset config.Dataset, flagSet bool, flagValue float64) float64 {
	if flagSet {
		return flagValue
	}

	if dataset.Multiplier != nil {
		return *dataset.Multiplier
	}

	return outliers.DefaultMultiplier
}
