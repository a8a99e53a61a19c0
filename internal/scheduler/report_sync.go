// Package scheduler contém os serviços de agendamento para atualização do relatório
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/presenter"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
)

// ErrSyncRunning indica que já existe uma atualização em andamento
var ErrSyncRunning = errors.New("report sync already running")

type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	ChartPath    string
}

// ReportSyncService regenera periodicamente o relatório e o arquivo do gráfico
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	forecaster          forecasting.Forecaster
	renderer            *presenter.ChartRenderer
	config              ReportSyncConfig
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReportID        string
	lastError           string
}

func NewReportSyncService(
	forecaster forecasting.Forecaster,
	renderer *presenter.ChartRenderer,
	cfg *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.ReportSync.Enabled,      // Default: desabilitado
		ChartPath:    cfg.Report.ChartPath,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"chart_path":    syncConfig.ChartPath,
	}).Debug("Configuração do agendador do relatório carregada")

	return &ReportSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		forecaster: forecaster,
		renderer:   renderer,
		config:     syncConfig,
		baseCtx:    context.Background(),
	}
}

func (s *ReportSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshReport gera o relatório e grava o gráfico em ChartPath
func (s *ReportSyncService) RefreshReport(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do relatório já está em execução")
		return ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	reportID, err := s.refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		return err
	}

	s.lastError = ""
	s.lastReportID = reportID
	return nil
}

func (s *ReportSyncService) refresh(ctx context.Context) (string, error) {
	report, err := s.forecaster.BuildReport(ctx)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar relatório: %w", err)
	}

	if err := s.renderer.Save(report, s.config.ChartPath); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"report_id":  report.ID,
		"chart_path": s.config.ChartPath,
	}).Info("Relatório atualizado")

	return report.ID, nil
}

// TriggerManualSync inicia manualmente uma atualização do relatório.
// Retorna false se já houver uma em andamento.
func (s *ReportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Atualização do relatório já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando atualização manual do relatório")
	go func() {
		if err := s.RefreshReport(s.baseCtx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na atualização manual do relatório")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"chart_path":             s.config.ChartPath,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report_id":         s.lastReportID,
		"last_error":             s.lastError,
	}
}
