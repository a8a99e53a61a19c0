// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vfg2006/sales-forecast/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

const (
	SalesTable = "sales_data"

	monthExpr = "substr(order_date, 1, 7)"
)

type SalesRepository interface {
	Count(ctx context.Context) (int, error)
	InsertMany(ctx context.Context, sales []domain.Sale) error
	MonthlyTotals(ctx context.Context) ([]domain.MonthlySales, error)
	TopProducts(ctx context.Context, limit int) ([]domain.ProductSales, error)
	CategoryTotals(ctx context.Context) ([]domain.CategorySales, error)
}

type salesRepository struct {
	conn sqldb.Conn
}

func NewSalesRepository(conn sqldb.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.conn.Builder().
		Select("COUNT(*)").
		From(SalesTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// InsertMany insere todas as vendas em uma única transação
func (r *salesRepository) InsertMany(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	query := r.conn.Builder().
		Insert(SalesTable).
		Columns(
			"order_id",
			"order_date",
			"product_id",
			"product_name",
			"category",
			"quantity",
			"price",
			"store_id",
		)

	for _, sale := range sales {
		query = query.Values(
			sale.OrderID,
			sale.OrderDate.Format(time.DateOnly),
			sale.ProductID,
			sale.ProductName,
			sale.Category,
			sale.Quantity,
			sale.Price,
			sale.StoreID,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}
		return nil
	})
}

// MonthlyTotals soma quantidade × preço por mês, em ordem cronológica
func (r *salesRepository) MonthlyTotals(ctx context.Context) ([]domain.MonthlySales, error) {
	query, args, err := r.conn.Builder().
		Select(
			monthExpr+" AS month",
			"SUM(quantity * price) AS total_sales",
		).
		From(SalesTable).
		GroupBy(monthExpr).
		OrderBy("month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	monthly := make([]domain.MonthlySales, 0)
	for rows.Next() {
		var item domain.MonthlySales
		if err := rows.Scan(&item.Month, &item.TotalSales); err != nil {
			return nil, fmt.Errorf("erro ao escanear total mensal: %w", err)
		}
		monthly = append(monthly, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return monthly, nil
}

// TopProducts retorna os produtos com mais unidades vendidas. Empates ficam na
// ordem em que o produto apareceu pela primeira vez.
func (r *salesRepository) TopProducts(ctx context.Context, limit int) ([]domain.ProductSales, error) {
	if limit <= 0 {
		return []domain.ProductSales{}, nil
	}

	query, args, err := r.conn.Builder().
		Select(
			"product_name",
			"SUM(quantity) AS units_sold",
		).
		From(SalesTable).
		GroupBy("product_name").
		OrderBy("units_sold DESC", "MIN(order_id) ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]domain.ProductSales, 0, limit)
	for rows.Next() {
		var item domain.ProductSales
		if err := rows.Scan(&item.ProductName, &item.UnitsSold); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *salesRepository) CategoryTotals(ctx context.Context) ([]domain.CategorySales, error) {
	query, args, err := r.conn.Builder().
		Select(
			"category",
			"SUM(quantity * price) AS total_sales",
		).
		From(SalesTable).
		GroupBy("category").
		OrderBy("total_sales DESC", "category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.CategorySales, 0)
	for rows.Next() {
		var item domain.CategorySales
		if err := rows.Scan(&item.Category, &item.TotalSales); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}
