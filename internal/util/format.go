package util

import (
	"strconv"
	"strings"
)

// FormatTick formats a time value for the axis: at most two decimals, trailing
// zeros dropped, no negative zero.
func FormatTick(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatScalar formats a solved scalar for summaries and logs
func FormatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
