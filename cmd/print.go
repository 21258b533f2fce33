package cmd

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"skyscraper/mcgd/indicator"
)

// formatValue renders a value at the configured precision. Non-finite values
// print as-is; decimal cannot represent them and they must not be clamped.
func formatValue(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).Round(places).String()
}

func printSeries(closes []float64, s *indicator.Series) {
	fmt.Printf("idx\tclose\t%s\n", s.Name)
	for i, v := range s.Values {
		fmt.Printf("%d\t%s\t%s\n", i, formatValue(closes[i], flags.Round), formatValue(v, flags.Round))
	}
}
