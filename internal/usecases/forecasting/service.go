// Package forecasting agrega as vendas mensais, calcula a média móvel e projeta a tendência
package forecasting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/infrastructure/repository"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/usecases/ranking"
	"github.com/vfg2006/sales-forecast/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

// Observações fixas impressas ao final do relatório
var fixedInsights = []string{
	"Electronics dominate sales (Laptop, Phone).",
	"Sales are seasonal (peaks visible in data).",
	"Forecast shows upward demand trend for next 6 months.",
}

// Forecaster define as operações do pipeline de previsão
type Forecaster interface {
	// GetMonthlySales retorna os totais mensais com a média móvel
	GetMonthlySales(ctx context.Context) ([]domain.MonthlySales, error)

	// BuildReport executa o pipeline completo: agregação, ranking, tendência e previsão
	BuildReport(ctx context.Context) (*domain.SalesReport, error)
}

type Service struct {
	salesRepository  repository.SalesRepository
	rankingService   ranking.RankingService
	periods          int
	window           int
	topProductsLimit int
	now              func() time.Time
}

func NewService(
	cfg *config.Config,
	salesRepository repository.SalesRepository,
	rankingService ranking.RankingService,
) Forecaster {
	return &Service{
		salesRepository:  salesRepository,
		rankingService:   rankingService,
		periods:          cfg.Forecast.Periods,
		window:           cfg.Forecast.MovingAverageWindow,
		topProductsLimit: cfg.Report.TopProductsLimit,
		now:              time.Now,
	}
}

// Insights retorna as três observações textuais do relatório
func Insights() []string {
	insights := make([]string, len(fixedInsights))
	copy(insights, fixedInsights)
	return insights
}

func (s *Service) GetMonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	monthly, err := s.salesRepository.MonthlyTotals(ctx)
	if err != nil {
		return nil, NewForecastError(err, apiErrors.ErrDatabaseOperation, "erro ao buscar totais mensais")
	}

	monthly, err = ApplyTrend(monthly, s.window)
	if err != nil {
		return nil, NewForecastError(err, apiErrors.ErrInvalidFormat, "erro ao calcular média móvel")
	}

	return monthly, nil
}

func (s *Service) BuildReport(ctx context.Context) (*domain.SalesReport, error) {
	monthly, err := s.GetMonthlySales(ctx)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.rankingService.GetTopProducts(ctx, s.topProductsLimit)
	if err != nil {
		return nil, NewForecastError(err, apiErrors.ErrDatabaseOperation, "erro ao buscar top produtos")
	}

	categories, err := s.salesRepository.CategoryTotals(ctx)
	if err != nil {
		return nil, NewForecastError(err, apiErrors.ErrDatabaseOperation, "erro ao buscar totais por categoria")
	}

	trend, forecast, err := Project(monthly, s.periods)
	if err != nil {
		return nil, NewForecastError(err, apiErrors.ErrInsufficientData, fmt.Sprintf("%d mês(es) disponível(is)", len(monthly)))
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewForecastError(err, apiErrors.ErrInternalServer, "erro ao gerar id do relatório")
	}

	logrus.WithFields(logrus.Fields{
		"report_id": id,
		"months":    len(monthly),
		"slope":     utils.RoundWithTwoDecimalPlace(trend.Slope),
		"intercept": utils.RoundWithTwoDecimalPlace(trend.Intercept),
		"forecast":  len(forecast),
	}).Info("forecast: relatório gerado")

	return &domain.SalesReport{
		ID:          id,
		GeneratedAt: s.now(),
		Monthly:     monthly,
		TopProducts: topProducts.Ranking,
		Categories:  categories,
		Trend:       trend,
		Forecast:    forecast,
		Insights:    Insights(),
	}, nil
}
