package scale

import "math"

// MonthNames are the labels of the vertical axis, January first
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName quantizes [1, 13) into the twelve month names.
// Values outside the domain yield "".
func MonthName(m float64) string {
	if m < 1 || m >= 13 || math.IsNaN(m) {
		return ""
	}
	return MonthNames[int(math.Floor(m))-1]
}
