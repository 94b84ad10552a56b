package scale

// Spectral is the 11-color diverging palette, ordered cold to warm
var Spectral = []string{
	"#5E4FA2", "#3288BD", "#66C2A5", "#ABDDA4", "#E6F598", "#FFFFBF",
	"#FEE08B", "#FDAE61", "#F46D43", "#D53E4F", "#9E0142",
}
