package run

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/outlier-stats/cmd/outliers/config"
)

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads and decodes a dataset file", func(t *testing.T) {
		path := filepath.Join(dir, "scores.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"title":"scores","records":[{"name":"a","score":1}]}`), 0600))

		dataset, err := LoadDataset(path)
		require.NoError(t, err)

		assert.Equal(t, "scores", dataset.Title)
		assert.Equal(t, []config.Record{{Name: "a", Value: 1}}, dataset.Records)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDataset(filepath.Join(dir, "missing.json"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`not json`), 0600))

		_, err := LoadDataset(path)

		assert.ErrorIs(t, err, config.ErrEncoding)
	})
}

func TestSetupOutput(t *testing.T) {
	dataset := config.Dataset{
		Title:   "scores",
		Records: []config.Record{{Name: "a", Value: 1}},
	}

	t.Run("quiet output writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quiet")

		outputs, err := SetupOutput(path, false, dataset)
		require.NoError(t, err)

		outputs.Log.Println("discarded")
		assert.NoError(t, outputs.Close())

		_, err = os.Stat(path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("verbose output keeps log and dataset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "verbose")

		outputs, err := SetupOutput(path, true, dataset)
		require.NoError(t, err)

		outputs.Log.Println("detection complete")
		require.NoError(t, outputs.Close())

		logged, err := os.ReadFile(filepath.Join(path, logFileName))
		require.NoError(t, err)
		assert.Contains(t, string(logged), "[outliers] detection complete")

		saved, err := LoadDataset(filepath.Join(path, datasetFileName))
		require.NoError(t, err)
		assert.Equal(t, dataset, saved)
	})
	t.Run("verbose output reuses an existing directory", func(t *testing.T) {
		path := t.TempDir()

		outputs, err := SetupOutput(path, true, dataset)
		require.NoError(t, err)
		require.NoError(t, outputs.Close())

		_, err = os.Stat(filepath.Join(path, datasetFileName))
		assert.NoError(t, err)
	})
}
