package chart

import (
	"fmt"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/scale"
)

// TooltipText is the hover text of one record: month and year, absolute
// temperature, then signed variance, one per line.
func TooltipText(r models.MonthlyRecord, base float64) string {
	return fmt.Sprintf("%s %d\n%s°C\n%s°C",
		scale.MonthName(float64(r.Month)),
		r.Year,
		FormatTemperature(base+r.Variance),
		FormatSigned(r.Variance),
	)
}

// Enter shows the tooltip for r
func Enter(t models.Tooltip, r models.MonthlyRecord, base float64) models.Tooltip {
	t.Visible = true
	t.Text = TooltipText(r, base)
	return t
}

// Move places the tooltip next to the pointer
func Move(t models.Tooltip, pageX, pageY float64) models.Tooltip {
	t.Left = pageX + t.Offset.X
	t.Top = pageY + t.Offset.Y
	return t
}

// Leave hides the tooltip. Its text is kept until the next Enter.
func Leave(t models.Tooltip) models.Tooltip {
	t.Visible = false
	return t
}
