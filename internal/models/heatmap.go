package models

// Scene is the fully computed heatmap, ready to be drawn by a renderer
type Scene struct {
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Margin   Margin   `json:"margin"`
	Title    Text     `json:"title"`
	Subtitle Text     `json:"subtitle"`
	Cells    []Cell   `json:"cells"`
	XAxis    Axis     `json:"x_axis"`
	YAxis    Axis     `json:"y_axis"`
	Legend   Legend   `json:"legend"`
	Tooltip  Tooltip  `json:"tooltip"`
	Base     float64  `json:"base_temperature"`
	Palette  []string `json:"palette"`
}

// Margin reserves room around the plot for axes, titles and the legend
type Margin struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// Cell is one rectangle of the heatmap
type Cell struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Fill      string  `json:"fill"`
	Bucket    int     `json:"bucket"` // 0-10, cold to warm
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	Variance  float64 `json:"variance"`
	Tooltip   string  `json:"tooltip"`
}

// Text is a positioned label
type Text struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value string  `json:"value"`
}

// Orient is the side of the plot an axis is drawn on
type Orient string

const (
	OrientLeft   Orient = "left"
	OrientBottom Orient = "bottom"
)

// Tick is one axis tick. Pos is in pixels along the axis direction.
type Tick struct {
	Value float64 `json:"value"`
	Pos   float64 `json:"pos"`
	Label string  `json:"label"`
}

// Axis is a tick axis. Offset is the translation across the axis direction
// (x for a left axis, y for a bottom axis).
type Axis struct {
	ID     string  `json:"id"`
	Orient Orient  `json:"orient"`
	Offset float64 `json:"offset"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Ticks  []Tick  `json:"ticks"`
}

// LegendEntry is one swatch of the color legend
type LegendEntry struct {
	Value  float64 `json:"value"` // midpoint of the bucket interval
	Bucket int     `json:"bucket"`
	Color  string  `json:"color"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Legend maps the color buckets to their variance values
type Legend struct {
	ID      string        `json:"id"`
	Entries []LegendEntry `json:"entries"`
	Axis    Axis          `json:"axis"`
}

// Point is a pixel offset
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tooltip is the floating hover overlay. It is toggled, never removed.
type Tooltip struct {
	ID      string  `json:"id"`
	Visible bool    `json:"visible"`
	Text    string  `json:"text"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Offset  Point   `json:"offset"`
}
