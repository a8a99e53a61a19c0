package ranking

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/infrastructure/repository"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

type RankingService interface {
	GetTopProducts(ctx context.Context, limit int) (*domain.ProductRankingResponse, error)
}

type ProductRankingService struct {
	SalesRepository repository.SalesRepository
}

func NewProductRankingService(salesRepository repository.SalesRepository) RankingService {
	return &ProductRankingService{
		SalesRepository: salesRepository,
	}
}

func (s *ProductRankingService) GetTopProducts(ctx context.Context, limit int) (*domain.ProductRankingResponse, error) {
	products, err := s.SalesRepository.TopProducts(ctx, limit)
	if err != nil {
		return nil, err
	}

	updatePositions(products)

	logrus.WithFields(logrus.Fields{
		"limit":    limit,
		"products": len(products),
	}).Debug("ranking: top produtos calculado")

	return &domain.ProductRankingResponse{
		Ranking: products,
		Limit:   limit,
	}, nil
}

// updatePositions ordena por unidades vendidas e numera a partir de 1. A
// ordenação é estável para manter o desempate vindo do repositório.
func updatePositions(products []domain.ProductSales) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].UnitsSold > products[j].UnitsSold
	})

	for i := range products {
		products[i].Position = i + 1
	}
}
