package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportSyncer struct {
	accept    bool
	triggered int
}

func (f *fakeReportSyncer) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeReportSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accept, "last_report_id": "rep0000001"}
}

func TestRunReportSync(t *testing.T) {
	tests := []struct {
		name       string
		service    ReportSyncer
		wantStatus int
	}{
		{"Atualização iniciada", &fakeReportSyncer{accept: true}, http.StatusAccepted},
		{"Atualização em andamento", &fakeReportSyncer{accept: false}, http.StatusConflict},
		{"Serviço indisponível", nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RunReportSync(tt.service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/report", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if fake, ok := tt.service.(*fakeReportSyncer); ok {
				assert.Equal(t, 1, fake.triggered)
			}
		})
	}
}

func TestGetReportSyncStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	GetReportSyncStatus(&fakeReportSyncer{accept: true}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/report/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rep0000001", body["last_report_id"])
	assert.Equal(t, false, body["sync_running"])
}

func TestHealthcheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
