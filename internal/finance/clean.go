package finance

// alignSeries truncates the timestamp and close arrays to a common length.
// Yahoo occasionally returns one more timestamp than close price.
func alignSeries(ts []int64, cl []float64) ([]int64, []float64) {
	if len(ts) == len(cl) {
		return ts, cl
	}
	n := len(ts)
	if len(cl) < n {
		n = len(cl)
	}
	return ts[:n], cl[:n]
}
