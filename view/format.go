package view

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Currency formats whole currency units, e.g. "$142,500".
func Currency(v float64) string {
	rounded := int64(math.Round(v))
	if rounded < 0 {
		return "-$" + humanize.Comma(-rounded)
	}
	return "$" + humanize.Comma(rounded)
}

// Percent drops trailing zeros: 5.2 renders as "5.2%".
func Percent(v float64) string {
	return humanize.Ftoa(v) + "%"
}

func WholePercent(v int) string {
	return humanize.Comma(int64(v)) + "%"
}

func sliderValue(v float64) string {
	return humanize.Ftoa(v)
}
