// Package migration cria o schema de vendas e insere os dados de demonstração
package migration

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-forecast/infrastructure/repository"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

const createSalesTable = `
CREATE TABLE IF NOT EXISTS ` + repository.SalesTable + ` (
    order_id INTEGER,
    order_date TEXT,
    product_id INTEGER,
    product_name TEXT,
    category TEXT,
    quantity INTEGER,
    price REAL,
    store_id INTEGER
)`

// CreateSchema cria a tabela sales_data se ela ainda não existir
func CreateSchema(ctx context.Context, conn sqldb.Queryer) error {
	if _, err := conn.Exec(ctx, createSalesTable); err != nil {
		return errors.Wrap(err, "erro ao criar tabela de vendas")
	}
	return nil
}

// SeedIfEmpty insere as vendas de demonstração apenas quando a tabela está vazia.
// Retorna a quantidade de linhas inseridas.
func SeedIfEmpty(ctx context.Context, repo repository.SalesRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao verificar vendas existentes")
	}

	if count > 0 {
		logrus.WithField("rows", count).Debug("migration: tabela de vendas já populada, seed ignorado")
		return 0, nil
	}

	sales := SeedSales()
	if err := repo.InsertMany(ctx, sales); err != nil {
		return 0, errors.Wrap(err, "erro ao inserir vendas de demonstração")
	}

	logrus.WithField("rows", len(sales)).Info("migration: vendas de demonstração inseridas")
	return len(sales), nil
}

// Run cria o schema e popula a tabela quando necessário
func Run(ctx context.Context, conn sqldb.Queryer, repo repository.SalesRepository) error {
	if err := CreateSchema(ctx, conn); err != nil {
		return err
	}

	_, err := SeedIfEmpty(ctx, repo)
	return err
}

// SeedSales retorna as 8 vendas fixas de demonstração
func SeedSales() []domain.Sale {
	return []domain.Sale{
		newSale(1, "2023-01-10", 101, "Laptop", "Electronics", 2, 60000, 1),
		newSale(2, "2023-02-15", 102, "Phone", "Electronics", 5, 20000, 1),
		newSale(3, "2023-02-25", 103, "Shirt", "Clothing", 10, 1200, 2),
		newSale(4, "2023-03-05", 104, "Shoes", "Clothing", 3, 3000, 2),
		newSale(5, "2023-03-20", 105, "Fridge", "Appliances", 1, 40000, 1),
		newSale(6, "2023-04-15", 102, "Phone", "Electronics", 4, 21000, 3),
		newSale(7, "2023-05-12", 106, "AC", "Appliances", 2, 35000, 1),
		newSale(8, "2023-05-22", 103, "Shirt", "Clothing", 15, 1100, 2),
	}
}

func newSale(orderID int64, date string, productID int64, name, category string, quantity int, price int64, storeID int64) domain.Sale {
	orderDate, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	return domain.Sale{
		OrderID:     orderID,
		OrderDate:   orderDate,
		ProductID:   productID,
		ProductName: name,
		Category:    category,
		Quantity:    quantity,
		Price:       decimal.NewFromInt(price),
		StoreID:     storeID,
	}
}
