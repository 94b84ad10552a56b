package models

// MonthlyRecord is one (year, month) observation of the temperature anomaly
type MonthlyRecord struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`    // 1-12
	Variance float64 `json:"variance"` // °C delta from the base temperature
}

// TemperatureDataset is the decoded global-temperature resource
type TemperatureDataset struct {
	BaseTemperature float64         `json:"baseTemperature"` // °C
	MonthlyVariance []MonthlyRecord `json:"monthlyVariance"`
}

// Years returns the year of every record, in record order
func (d *TemperatureDataset) Years() []float64 {
	years := make([]float64, len(d.MonthlyVariance))
	for i, r := range d.MonthlyVariance {
		years[i] = float64(r.Year)
	}
	return years
}

// Variances returns the variance of every record, in record order
func (d *TemperatureDataset) Variances() []float64 {
	temps := make([]float64, len(d.MonthlyVariance))
	for i, r := range d.MonthlyVariance {
		temps[i] = r.Variance
	}
	return temps
}

// Find returns the record for a (year, month) pair
func (d *TemperatureDataset) Find(year, month int) (MonthlyRecord, bool) {
	for _, r := range d.MonthlyVariance {
		if r.Year == year && r.Month == month {
			return r, true
		}
	}
	return MonthlyRecord{}, false
}
