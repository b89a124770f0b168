package outliers

import (
	"cmp"
	"slices"
)

// Compare orders two measurements by score.
func Compare[T Measurement](a, b T) int {
	return cmp.Compare(a.Score(), b.Score())
}

// SortByScore returns a copy of data ranked ascending by score. Equal scores
// keep their relative order.
func SortByScore[T Measurement](data []T) []T {
	sorted := slices.Clone(data)
	slices.SortStableFunc(sorted, Compare[T])

	return sorted
}

// IsRanked reports whether data is sorted ascending by score.
func IsRanked[T Measurement](data []T) bool {
	return slices.IsSortedFunc(data, Compare[T])
}
