package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-forecast/internal/api"
	"github.com/vfg2006/sales-forecast/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the report refresh scheduler",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		reportSyncService := scheduler.NewReportSyncService(a.forecaster, a.renderer, a.cfg)
		if err := reportSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório")
		} else {
			logrus.Info("Agendador do relatório iniciado com sucesso")
		}

		server, err := api.New(a.cfg, a.forecaster, a.rankingService, a.renderer, reportSyncService)
		if err != nil {
			return err
		}

		return server.Run(ctx)
	},
}
