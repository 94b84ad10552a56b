package models

// TooltipQuery represents query parameters for looking up one cell
type TooltipQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// TooltipResponse is the hover text for one record
type TooltipResponse struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Variance float64 `json:"variance"`
	Text     string  `json:"text"`
}
