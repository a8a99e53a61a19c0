package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestProductRankingService_GetTopProducts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		limit    int
		setup    func(repo *mocks.MockSalesRepository)
		wantErr  bool
		validate func(t *testing.T, result *domain.ProductRankingResponse)
	}{
		{
			name:  "Atribui posições na ordem do repositório",
			limit: 5,
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().TopProducts(ctx, 5).Return([]domain.ProductSales{
					{ProductName: "Shirt", UnitsSold: 25},
					{ProductName: "Phone", UnitsSold: 9},
					{ProductName: "Shoes", UnitsSold: 3},
					{ProductName: "Laptop", UnitsSold: 2},
					{ProductName: "AC", UnitsSold: 2},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.ProductRankingResponse) {
				require.Len(t, result.Ranking, 5)
				assert.Equal(t, 5, result.Limit)
				for i, p := range result.Ranking {
					assert.Equal(t, i+1, p.Position)
				}
				// Empate mantém a ordem de primeira aparição
				assert.Equal(t, "Laptop", result.Ranking[3].ProductName)
				assert.Equal(t, "AC", result.Ranking[4].ProductName)
			},
		},
		{
			name:  "Reordena por unidades vendidas de forma estável",
			limit: 3,
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().TopProducts(ctx, 3).Return([]domain.ProductSales{
					{ProductName: "Fridge", UnitsSold: 1},
					{ProductName: "Phone", UnitsSold: 9},
					{ProductName: "AC", UnitsSold: 1},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.ProductRankingResponse) {
				assert.Equal(t, []domain.ProductSales{
					{Position: 1, ProductName: "Phone", UnitsSold: 9},
					{Position: 2, ProductName: "Fridge", UnitsSold: 1},
					{Position: 3, ProductName: "AC", UnitsSold: 1},
				}, result.Ranking)
			},
		},
		{
			name:  "Erro no repositório - propaga o erro",
			limit: 5,
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().TopProducts(ctx, 5).Return(nil, errors.New("no such table: sales_data"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSalesRepository(ctrl)
			tt.setup(repo)

			service := NewProductRankingService(repo)
			result, err := service.GetTopProducts(ctx, tt.limit)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}
