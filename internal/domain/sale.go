package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma linha da tabela de fatos sales_data
type Sale struct {
	OrderID     int64           `json:"order_id"`
	OrderDate   time.Time       `json:"order_date"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	StoreID     int64           `json:"store_id"`
}

// Amount retorna quantidade × preço
func (s Sale) Amount() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// CategorySales representa a receita agregada de uma categoria
type CategorySales struct {
	Category   string  `json:"category"`
	TotalSales float64 `json:"total_sales"`
}
