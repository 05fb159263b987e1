package stats

import (
	"math"
	"sort"
)

// Description is a one-pass summary of a sample
type Description struct {
	Count  int
	Mean   float64
	Median float64
	P90    float64
}

// Describe sorts a copy of values once and derives the summary from it
func Describe(values []float64) Description {
	if len(values) == 0 {
		return Description{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Description{
		Count:  len(sorted),
		Mean:   Mean(sorted),
		Median: quantileSorted(sorted, 0.5),
		P90:    quantileSorted(sorted, 0.9),
	}
}

// Mean calculates the arithmetic mean
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Quantile calculates the q-th quantile (0 <= q <= 1) with linear interpolation
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return quantileSorted(sorted, q)
}

func quantileSorted(sorted []float64, q float64) float64 {
	q = math.Max(0, math.Min(1, q))

	index := q * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
