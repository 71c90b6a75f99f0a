package service

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders whole US dollars the way en-US locales do: "$1,235", "-$987,654".
func FormatCurrency(value float64) string {
	rounded := math.Round(value)
	if rounded == 0 {
		return "$0"
	}
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + "$" + humanize.Comma(int64(rounded))
}

// FormatMultiple renders an ROI multiple, e.g. "6.2x".
func FormatMultiple(value float64) string {
	return fmt.Sprintf("%.1fx", value)
}

// FormatPercent renders a signed percentage with one decimal, e.g. "+58.5%".
func FormatPercent(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

func roundTo1Decimal(value float64) float64 {
	return math.Round(value*10) / 10
}
