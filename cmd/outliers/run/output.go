package run

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/smartcontractkit/outlier-stats/cmd/outliers/config"
)

const (
	logFileName     = "outliers.log"
	datasetFileName = "dataset.json"
)

type Outputs struct {
	Log           *log.Logger
	logFileHandle *os.File
}

func (out *Outputs) Close() error {
	var err error

	if out.logFileHandle != nil {
		err = errors.Join(err, out.logFileHandle.Close())
	}

	return err
}

// SetupOutput prepares the run log. Nothing is written to disk unless verbose
// is set, in which case the output directory receives the run log and a copy
// of the analyzed dataset.
func SetupOutput(path string, verbose bool, dataset config.Dataset) (*Outputs, error) {
	if !verbose {
		return &Outputs{
			Log: log.New(io.Discard, "", 0),
		}, nil
	}

	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, err
	}

	logger, lggF, err := openRunLog(path)
	if err != nil {
		return nil, err
	}

	if err := saveDatasetToOutput(path, dataset); err != nil {
		_ = lggF.Close()

		return nil, err
	}

	return &Outputs{
		Log:           logger,
		logFileHandle: lggF,
	}, nil
}

func openRunLog(path string) (*log.Logger, *os.File, error) {
	var perms fs.FileMode = 0666

	flag := os.O_RDWR | os.O_CREATE | os.O_TRUNC

	f, err := os.OpenFile(fmt.Sprintf("%s/%s", path, logFileName), flag, perms)
	if err != nil {
		return nil, nil, err
	}

	return log.New(f, "[outliers] ", log.LstdFlags|log.Lmsgprefix), f, nil
}

func saveDatasetToOutput(path string, dataset config.Dataset) error {
	b, err := dataset.Encode()
	if err != nil {
		return err
	}

	return os.WriteFile(fmt.Sprintf("%s/%s", path, datasetFileName), b, 0666)
}
