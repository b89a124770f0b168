package run

import (
	"os"

	"github.com/pkg/errors"

	"github.com/smartcontractkit/outlier-stats/cmd/outliers/config"
)

func LoadDataset(path string) (config.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Dataset{}, errors.Wrapf(err, "failed to read dataset file %s", path)
	}

	dataset, err := config.DecodeDataset(data)
	if err != nil {
		return dataset, errors.Wrapf(err, "dataset file %s", path)
	}

	return dataset, nil
}
