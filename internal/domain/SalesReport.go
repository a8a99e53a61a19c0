package domain

import "time"

// SalesReport combina a série mensal, o ranking de produtos e a previsão de uma execução
type SalesReport struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Monthly     []MonthlySales  `json:"monthly"`
	TopProducts []ProductSales  `json:"top_products"`
	Categories  []CategorySales `json:"categories,omitempty"`
	Trend       TrendLine       `json:"trend"`
	Forecast    []ForecastPoint `json:"forecast"`
	Insights    []string        `json:"insights"`
}
