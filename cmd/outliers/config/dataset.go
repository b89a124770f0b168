package config

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

var (
	ErrEncoding       = fmt.Errorf("encoding/decoding failure")
	ErrInvalidDataset = fmt.Errorf("invalid dataset")
)

// Dataset is a named collection of scored records to be analyzed for
// outliers.
type Dataset struct {
	// Title is used as the heading of the rendered report.
	Title string `json:"title"`
	// Multiplier overrides the default fence multiplier when set.
	Multiplier *float64 `json:"multiplier,omitempty"`
	// Records are the measurements in file order. They are not required to be
	// ranked.
	Records []Record `json:"records"`
}

// Record is a single named score.
type Record struct {
	Name  string  `json:"name"`
	Value float64 `json:"score"`
}

func (r Record) Score() float64 {
	return r.Value
}

// Encode applies JSON encoding of a dataset to bytes.
func (d Dataset) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Validate checks the dataset for values the detector cannot accept.
func (d Dataset) Validate() error {
	if d.Multiplier != nil && (*d.Multiplier < 0 || math.IsNaN(*d.Multiplier)) {
		return fmt.Errorf("%w: multiplier must not be negative, got %v", ErrInvalidDataset, *d.Multiplier)
	}

	return nil
}

// DecodeDataset uses JSON encoding to decode bytes to a dataset. Records
// without a name are named by their 1-based position in the file.
func DecodeDataset(encoded []byte) (Dataset, error) {
	var dataset Dataset

	if err := json.Unmarshal(encoded, &dataset); err != nil {
		return dataset, fmt.Errorf("%w: failed to decode dataset: %s", ErrEncoding, err.Error())
	}

	if dataset.Records == nil {
		dataset.Records = make([]Record, 0)
	}

	for idx := range dataset.Records {
		if dataset.Records[idx].Name == "" {
			dataset.Records[idx].Name = strconv.Itoa(idx + 1)
		}
	}

	if err := dataset.Validate(); err != nil {
		return dataset, err
	}

	return dataset, nil
}
