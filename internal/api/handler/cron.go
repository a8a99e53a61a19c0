package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/pkg/apiErrors"
)

// ReportSyncer é o agendador de atualização do relatório visto pela API
type ReportSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunReportSync dispara manualmente a atualização do gráfico
func RunReportSync(service ReportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReportSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Serviço de atualização do relatório não disponível", nil)
			return
		}

		if !service.TriggerManualSync() {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Atualização do relatório já em andamento",
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Atualização do relatório iniciada com sucesso",
		})
	}
}

// GetReportSyncStatus retorna o status do agendador
func GetReportSyncStatus(service ReportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Serviço de atualização do relatório não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}
