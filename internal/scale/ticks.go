package scale

const (
	decadeFirst = 1760
	decadeLast  = 2010
	decadeStep  = 10
)

// DecadeTicks returns the years 1760, 1770, ..., 2010 that fall inside [minYear, maxYear]
func DecadeTicks(minYear, maxYear int) []int {
	var ticks []int
	for y := decadeFirst; y <= decadeLast; y += decadeStep {
		if y >= minYear && y <= maxYear {
			ticks = append(ticks, y)
		}
	}
	return ticks
}
