package stats

import "sort"

// Median mengembalikan median dari kumpulan nilai, atau nil bila kosong.
// n ganjil: nilai tengah. n genap: rata-rata dua nilai tengah — sama persis
// dengan PERCENTILE_CONT(0.5) di sisi database.
func Median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	var m float64
	if n%2 == 0 {
		m = (sorted[n/2-1] + sorted[n/2]) / 2.0
	} else {
		m = sorted[n/2]
	}
	return &m
}
