package domain

// ProductSales representa um produto no ranking de unidades vendidas
type ProductSales struct {
	Position    int    `json:"position"`
	ProductName string `json:"product_name"`
	UnitsSold   int    `json:"units_sold"`
}

type ProductRankingResponse struct {
	Ranking []ProductSales `json:"ranking"`
	Limit   int            `json:"limit"`
}
