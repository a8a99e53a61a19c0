package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-forecast/internal/presenter"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/internal/usecases/ranking"
	"github.com/vfg2006/sales-forecast/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

// MaxTopProductsLimit é o maior limite aceito em /v1/sales/top-products
const MaxTopProductsLimit = 50

// writeForecastError traduz erros do pipeline para o payload padronizado
func writeForecastError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := forecasting.CodeOf(err)
	log.ForContext(r.Context()).WithError(err).WithField("code", code).Error(message)
	apiErrors.WriteError(w, code, message, err.Error())
}

// GetMonthlySales retorna os totais mensais com a média móvel
func GetMonthlySales(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monthly, err := service.GetMonthlySales(r.Context())
		if err != nil {
			writeForecastError(w, r, err, "Erro ao buscar vendas mensais")
			return
		}

		writeJSON(w, http.StatusOK, monthly)
	}
}

// GetTopProducts retorna o ranking de produtos por unidades vendidas
func GetTopProducts(service ranking.RankingService, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLimit

		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > MaxTopProductsLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit deve estar entre 1 e 50", raw)
				return
			}
			limit = parsed
		}

		result, err := service.GetTopProducts(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar top produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar top produtos", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// GetForecastReport executa o pipeline completo e retorna o relatório
func GetForecastReport(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.BuildReport(r.Context())
		if err != nil {
			writeForecastError(w, r, err, "Erro ao gerar previsão")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetSalesChart renderiza o gráfico do relatório em PNG
func GetSalesChart(service forecasting.Forecaster, renderer *presenter.ChartRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.BuildReport(r.Context())
		if err != nil {
			writeForecastError(w, r, err, "Erro ao gerar previsão")
			return
		}

		// Renderiza em memória para não enviar um PNG pela metade em caso de erro
		var buf bytes.Buffer
		if err := renderer.WritePNG(&buf, report); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao renderizar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
