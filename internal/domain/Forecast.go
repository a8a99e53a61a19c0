package domain

import "time"

// TrendLine é a reta ajustada por mínimos quadrados: y = Intercept + Slope*x
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Points    int     `json:"points"`
}

// At avalia a reta no índice x
func (t TrendLine) At(x float64) float64 {
	return t.Intercept + t.Slope*x
}

// ForecastPoint é um mês futuro com a receita projetada
type ForecastPoint struct {
	Month          string    `json:"month"` // Formato yyyy-mm
	MonthStart     time.Time `json:"month_start"`
	PredictedSales float64   `json:"predicted_sales"`
}
