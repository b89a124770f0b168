package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of a set of scores.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	StdErr float64
	Min    float64
	Max    float64
}

// Summarize computes the descriptive statistics of scores. The standard
// deviation is the sample (n-1) deviation; it is reported as zero for fewer
// than two scores. Scores must be finite numbers.
func Summarize(scores []float64) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	summary := Summary{
		Count: len(scores),
		Min:   floats.Min(scores),
		Max:   floats.Max(scores),
	}

	if len(scores) == 1 {
		summary.Mean = scores[0]

		return summary
	}

	summary.Mean, summary.StdDev = stat.MeanStdDev(scores, nil)
	summary.StdErr = stat.StdErr(summary.StdDev, float64(len(scores)))

	return summary
}
