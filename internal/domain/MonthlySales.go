package domain

import (
	"time"
)

// MonthLayout é o formato do rótulo mensal (yyyy-mm)
const MonthLayout = "2006-01"

// MonthlySales representa a receita agregada de um mês
type MonthlySales struct {
	Month         string    `json:"month"` // Formato yyyy-mm (ex: 2023-02)
	MonthStart    time.Time `json:"month_start"`
	TotalSales    float64   `json:"total_sales"`
	MovingAverage float64   `json:"moving_avg"`
}
