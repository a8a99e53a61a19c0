package presenter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

// PrintTopProducts imprime a tabela de produtos mais vendidos
func PrintTopProducts(w io.Writer, products []domain.ProductSales) {
	fmt.Fprintf(w, "Top %d Best Selling Products:\n", len(products))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Product Name", "Units Sold"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)

	for _, p := range products {
		table.Append([]string{
			strconv.Itoa(p.Position),
			p.ProductName,
			strconv.Itoa(p.UnitsSold),
		})
	}

	table.Render()
}

func PrintInsights(w io.Writer, insights []string) {
	fmt.Fprintln(w, "\n✅ Insights:")
	for _, insight := range insights {
		fmt.Fprintf(w, "- %s\n", insight)
	}
}

// PrintReport imprime o ranking de produtos seguido das observações
func PrintReport(w io.Writer, report *domain.SalesReport) {
	PrintTopProducts(w, report.TopProducts)
	PrintInsights(w, report.Insights)
}
