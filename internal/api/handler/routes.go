package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecast/internal/api/handler/router"
	"github.com/vfg2006/sales-forecast/internal/presenter"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/internal/usecases/ranking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(
	forecaster forecasting.Forecaster,
	rankingService ranking.RankingService,
	renderer *presenter.ChartRenderer,
	defaultLimit int,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlySales(forecaster),
		},
		{
			Path:    "/v1/sales/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(rankingService, defaultLimit),
		},
		{
			Path:    "/v1/sales/forecast",
			Method:  http.MethodGet,
			Handler: GetForecastReport(forecaster),
		},
		{
			Path:    "/v1/sales/chart",
			Method:  http.MethodGet,
			Handler: GetSalesChart(forecaster, renderer),
		},
	}
}

func CronJobs(service ReportSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/report",
			Method:  http.MethodPost,
			Handler: RunReportSync(service),
		},
		{
			Path:    "/v1/cron/report/status",
			Method:  http.MethodGet,
			Handler: GetReportSyncStatus(service),
		},
	}
}
