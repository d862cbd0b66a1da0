package format

import (
	"fmt"
	"math"
	"strconv"
)

// Percent renders a gauge value rounded half up to a whole number, without
// a sign.
func Percent(v float64) string {
	return roundHalfUp(v)
}

// Rate renders a transfer rate in KB/s rounded half up.
func Rate(kbps float64) string {
	return roundHalfUp(kbps) + " KB/s"
}

func roundHalfUp(v float64) string {
	return strconv.FormatFloat(math.Floor(v+0.5), 'f', 0, 64)
}

// Megabytes renders a cumulative transfer total with one decimal.
func Megabytes(mb float64) string {
	return fmt.Sprintf("%.1f MB", mb)
}

// Gigabytes renders a capacity with one decimal.
func Gigabytes(gb float64) string {
	return fmt.Sprintf("%.1f GB", gb)
}

// Celsius renders a temperature with one decimal.
func Celsius(c float64) string {
	return fmt.Sprintf("%.1f°C", c)
}

// GHz renders a clock frequency with two decimals.
func GHz(f float64) string {
	return fmt.Sprintf("%.2f GHz", f)
}
