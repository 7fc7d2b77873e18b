package utils

import "fmt"

func FormatSeconds(v float64) string {
	return fmt.Sprintf("%.5f", v)
}

func FormatCount(v int64) string {
	return fmt.Sprintf("%d", v)
}

// LostUpdates is how far a counter fell short of its expected value.
func LostUpdates(final, expected int64) int64 {
	if final >= expected {
		return 0
	}
	return expected - final
}
