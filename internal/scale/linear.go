// Package scale holds the mappings from data values to pixels, colors and labels.
package scale

import (
	"errors"
	"math"
)

// ErrDegenerateDomain is returned when a scale domain collapses to a point
var ErrDegenerateDomain = errors.New("scale domain collapses to a single value")

// Linear is a continuous affine map from Domain to Range
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear creates a linear scale over [d0, d1] -> [r0, r1]
func NewLinear(d0, d1, r0, r1 float64) (Linear, error) {
	if d0 == d1 || math.IsNaN(d0) || math.IsNaN(d1) {
		return Linear{}, ErrDegenerateDomain
	}
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}, nil
}

// Map returns the range value for v. Values outside the domain extrapolate.
func (s Linear) Map(v float64) float64 {
	t := (v - s.Domain[0]) / (s.Domain[1] - s.Domain[0])
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}
