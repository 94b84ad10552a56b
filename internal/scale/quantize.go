package scale

import "math"

// Quantize partitions [Min, Max] into len(Range) equal-width buckets
type Quantize struct {
	Min   float64
	Max   float64
	Range []string
}

// NewQuantize creates a quantizing scale. The domain must not be degenerate
// and the range must hold at least one value.
func NewQuantize(min, max float64, values []string) (Quantize, error) {
	if min == max || math.IsNaN(min) || math.IsNaN(max) || len(values) == 0 {
		return Quantize{}, ErrDegenerateDomain
	}
	if min > max {
		min, max = max, min
	}
	return Quantize{Min: min, Max: max, Range: values}, nil
}

// Step is the width of one bucket
func (q Quantize) Step() float64 {
	return (q.Max - q.Min) / float64(len(q.Range))
}

// Index returns floor(n*(v-min)/(max-min)) clamped to [0, n-1]
func (q Quantize) Index(v float64) int {
	n := len(q.Range)
	i := int(math.Floor(float64(n) * (v - q.Min) / (q.Max - q.Min)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// Value returns the range value of the bucket v falls in
func (q Quantize) Value(v float64) string {
	return q.Range[q.Index(v)]
}

// Thresholds returns the n-1 interior bucket boundaries, min + k*step for k in 1..n-1
func (q Quantize) Thresholds() []float64 {
	n := len(q.Range)
	step := q.Step()
	out := make([]float64, 0, n-1)
	for k := 1; k < n; k++ {
		out = append(out, q.Min+float64(k)*step)
	}
	return out
}

// Midpoints returns the midpoint of every bucket interval
func (q Quantize) Midpoints() []float64 {
	n := len(q.Range)
	step := q.Step()
	out := make([]float64, n)
	for i := range out {
		out[i] = q.Min + step*float64(i) + step/2
	}
	return out
}
