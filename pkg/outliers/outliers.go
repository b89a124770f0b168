package outliers

import (
	"fmt"
	"math"
)

const (
	// MinSampleSize is the smallest collection the quartile estimate is
	// computed for.
	MinSampleSize = 5
	// DefaultMultiplier is the conventional Tukey fence multiplier.
	DefaultMultiplier = 1.5
)

var (
	ErrDataTooSmall      = fmt.Errorf("collection too small to be analyzed")
	ErrInvalidMultiplier = fmt.Errorf("multiplier must be a non-negative number")
)

// DataTooSmallError is returned when a collection holds fewer than
// MinSampleSize measurements. An empty collection produces the same error.
type DataTooSmallError struct {
	Size int
	Min  int
}

func (e *DataTooSmallError) Error() string {
	return fmt.Sprintf("%s: collection must have at least %d objects, got %d", ErrDataTooSmall, e.Min, e.Size)
}

func (e *DataTooSmallError) Is(target error) bool {
	return target == ErrDataTooSmall
}

// Measurement is anything ranked by a single numeric score.
type Measurement interface {
	Score() float64
}

// Value is a bare score.
type Value float64

func (v Value) Score() float64 {
	return float64(v)
}

// Values converts raw scores to measurements.
func Values(scores ...float64) []Value {
	values := make([]Value, len(scores))
	for i, s := range scores {
		values[i] = Value(s)
	}

	return values
}

// Fences holds the quartile boundaries of a ranked collection and the range
// outside of which a score counts as an outlier.
type Fences struct {
	Q1         float64
	Q3         float64
	IQR        float64
	Multiplier float64
	Lower      float64
	Upper      float64
}

// Contains reports whether the score lies inside the fences. Scores equal to
// a fence are inside.
func (f Fences) Contains(v float64) bool {
	return !(v > f.Upper || v < f.Lower)
}

// ComputeFences calculates the quartile fences of data. The collection must
// already be sorted ascending by score.
func ComputeFences[T Measurement](data []T, multiplier float64) (Fences, error) {
	return fencesBy(data, score[T], multiplier)
}

// Detect returns the measurements of data that fall outside the quartile
// fences, in their original order. data must already be sorted ascending by
// score; it is not sorted or modified here.
func Detect[T Measurement](data []T, multiplier float64) ([]T, error) {
	return DetectBy(data, score[T], multiplier)
}

// DetectDefault is Detect with DefaultMultiplier.
func DetectDefault[T Measurement](data []T) ([]T, error) {
	return Detect(data, DefaultMultiplier)
}

// DetectBy is Detect for records that expose their score through a function
// instead of the Measurement interface.
func DetectBy[T any](data []T, scoreFn func(T) float64, multiplier float64) ([]T, error) {
	fences, err := fencesBy(data, scoreFn, multiplier)
	if err != nil {
		return nil, err
	}

	outliers := make([]T, 0)
	for _, datum := range data {
		if !fences.Contains(scoreFn(datum)) {
			outliers = append(outliers, datum)
		}
	}

	return outliers, nil
}

func fencesBy[T any](data []T, scoreFn func(T) float64, multiplier float64) (Fences, error) {
	n := len(data)
	if n < MinSampleSize {
		return Fences{}, &DataTooSmallError{Size: n, Min: MinSampleSize}
	}

	if multiplier < 0 || math.IsNaN(multiplier) {
		return Fences{}, fmt.Errorf("%w: got %v", ErrInvalidMultiplier, multiplier)
	}

	// rank estimator: floor(n/4) and floor(3n/4), no interpolation
	q1 := scoreFn(data[n/4])
	q3 := scoreFn(data[n*3/4])
	iqr := q3 - q1

	return Fences{
		Q1:         q1,
		Q3:         q3,
		IQR:        iqr,
		Multiplier: multiplier,
		Lower:      q1 - iqr*multiplier,
		Upper:      q3 + iqr*multiplier,
	}, nil
}

func score[T Measurement](m T) float64 {
	return m.Score()
}
