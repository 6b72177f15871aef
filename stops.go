package ggrad

// GenerateStops returns n evenly spaced stop offsets, i/n for i in
// [0, n). The sequence covers [0, 1) with a fixed sample width of 1/n and
// never reaches 1; the last sample's color holds to the end of the span.
// n <= 0 yields nil.
func GenerateStops(n int) []float64 {
	if n <= 0 {
		return nil
	}
	stops := make([]float64, n)
	for i := range stops {
		stops[i] = float64(i) / float64(n)
	}
	return stops
}
