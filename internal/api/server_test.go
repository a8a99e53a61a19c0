package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/presenter"
	forecastingmocks "github.com/vfg2006/sales-forecast/internal/usecases/forecasting/mocks"
	rankingmocks "github.com/vfg2006/sales-forecast/internal/usecases/ranking/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
		Report: config.Report{TopProductsLimit: 5},
	}
}

func TestServer_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)
	rankingService := rankingmocks.NewMockRankingService(ctrl)

	forecaster.EXPECT().GetMonthlySales(gomock.Any()).Return([]domain.MonthlySales{
		{Month: "2023-01", TotalSales: 120000, MovingAverage: 120000},
	}, nil)
	rankingService.EXPECT().GetTopProducts(gomock.Any(), 5).Return(&domain.ProductRankingResponse{Limit: 5}, nil)

	srv, err := New(testConfig(), forecaster, rankingService, presenter.NewChartRenderer(3), nil)
	require.NoError(t, err)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/healthcheck", http.StatusOK},
		{http.MethodGet, "/v1/sales/monthly", http.StatusOK},
		{http.MethodGet, "/v1/sales/top-products", http.StatusOK},
		{http.MethodPost, "/v1/cron/report", http.StatusServiceUnavailable},
		{http.MethodGet, "/v1/cron/report/status", http.StatusServiceUnavailable},
		{http.MethodGet, "/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv, err := New(testConfig(), forecastingmocks.NewMockForecaster(ctrl), rankingmocks.NewMockRankingService(ctrl), presenter.NewChartRenderer(3), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não desligou após cancelamento do contexto")
	}
}
