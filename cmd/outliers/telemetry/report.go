package telemetry

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/smartcontractkit/outlier-stats/cmd/outliers/config"
	"github.com/smartcontractkit/outlier-stats/pkg/outliers"
)

// Report is the result of one outlier detection run over a ranked dataset.
type Report struct {
	RunID    uuid.UUID
	Title    string
	Summary  Summary
	Fences   outliers.Fences
	Outliers []config.Record
}

// NewReport runs outlier detection over records, which must already be
// ranked ascending by score.
func NewReport(title string, records []config.Record, multiplier float64) (Report, error) {
	fences, err := outliers.ComputeFences(records, multiplier)
	if err != nil {
		return Report{}, err
	}

	found, err := outliers.Detect(records, multiplier)
	if err != nil {
		return Report{}, err
	}

	scores := make([]float64, len(records))
	for i, record := range records {
		scores[i] = record.Score()
	}

	return Report{
		RunID:    uuid.New(),
		Title:    title,
		Summary:  Summarize(scores),
		Fences:   fences,
		Outliers: found,
	}, nil
}

func (r Report) PrintTabularResults() string {
	return r.summaryTable() + "\n" + r.outlierTable()
}

func (r Report) summaryTable() string {
	tw := table.NewWriter()
	tw.SetTitle(r.title())
	tw.AppendHeader(table.Row{"Statistic", "Value"})

	tw.AppendRows([]table.Row{
		{"Run", r.RunID.String()},
		{"Count", r.Summary.Count},
		{"Mean", formatStat(r.Summary.Mean)},
		{"Std Dev", formatStat(r.Summary.StdDev)},
		{"Std Err", formatStat(r.Summary.StdErr)},
		{"Min", formatScore(r.Summary.Min)},
		{"Max", formatScore(r.Summary.Max)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Q1", formatScore(r.Fences.Q1)},
		{"Q3", formatScore(r.Fences.Q3)},
		{"IQR", formatScore(r.Fences.IQR)},
		{"Multiplier", formatScore(r.Fences.Multiplier)},
		{"Lower Fence", formatScore(r.Fences.Lower)},
		{"Upper Fence", formatScore(r.Fences.Upper)},
	})

	return tw.Render()
}

func (r Report) outlierTable() string {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Outliers (%d)", len(r.Outliers)))
	tw.AppendHeader(table.Row{"Name", "Score", "Side"})

	for _, record := range r.Outliers {
		tw.AppendRow(table.Row{record.Name, formatScore(record.Score()), fenceSide(r.Fences, record.Score())})
	}

	return tw.Render()
}

func (r Report) title() string {
	title := r.Title
	if title == "" {
		title = "Dataset"
	}

	return title
}

// fenceSide names the fence a score lies beyond. With a negative IQR the
// fences cross and a score can lie beyond both.
func fenceSide(f outliers.Fences, v float64) string {
	low, high := v < f.Lower, v > f.Upper

	switch {
	case low && high:
		return "both"
	case high:
		return "high"
	case low:
		return "low"
	default:
		return ""
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
