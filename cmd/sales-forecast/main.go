package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-forecast/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-forecast/infrastructure/migration"
	"github.com/vfg2006/sales-forecast/infrastructure/repository"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/presenter"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/internal/usecases/ranking"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "sales-forecast",
	Short: "Sales analytics: monthly totals, moving average, top products and a linear forecast",
	Long: `Seeds the local sales store when empty, aggregates monthly sales with a trailing
moving average, ranks products by units sold, fits a linear trend and forecasts the
next months. The chart is written to CHART_PATH and the ranking and insights are
printed to stdout.`,
	SilenceUsage: true,
	RunE:         runPipeline,
}

func init() {
	rootCmd.AddCommand(serveCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// app reúne as dependências montadas a partir da configuração
type app struct {
	cfg            *config.Config
	conn           *sqldb.Connection
	forecaster     forecasting.Forecaster
	rankingService ranking.RankingService
	renderer       *presenter.ChartRenderer
}

// bootstrap carrega a configuração, abre o banco, aplica o seed e monta os serviços
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	level := log.Configure(cfg.App.LogLevel)
	logrus.Debugf("Nível de log configurado para: %s", level)

	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco estabelecida com sucesso")

	salesRepo := repository.NewSalesRepository(conn)
	if err := migration.Run(ctx, conn, salesRepo); err != nil {
		_ = conn.Close()
		return nil, err
	}

	rankingService := ranking.NewProductRankingService(salesRepo)

	return &app{
		cfg:            cfg,
		conn:           conn,
		forecaster:     forecasting.NewService(cfg, salesRepo, rankingService),
		rankingService: rankingService,
		renderer:       presenter.NewChartRenderer(cfg.Forecast.MovingAverageWindow),
	}, nil
}

func (a *app) Close() {
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com o banco")
	}
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.forecaster.BuildReport(ctx)
	if err != nil {
		return err
	}

	if err := a.renderer.Save(report, a.cfg.Report.ChartPath); err != nil {
		return err
	}
	logrus.WithField("chart_path", a.cfg.Report.ChartPath).Info("Gráfico gravado")

	presenter.PrintReport(cmd.OutOrStdout(), report)
	return nil
}
