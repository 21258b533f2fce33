package indicator

// VerifySeries checks that a series exists and carries at least minLen
// observations. It returns the series untouched when valid and nil
// otherwise; downstream code treats nil as "no result" rather than an error.
func VerifySeries(series []float64, minLen int) []float64 {
	if series == nil || len(series) < minLen {
		return nil
	}
	return series
}
