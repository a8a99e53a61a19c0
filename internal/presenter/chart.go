// Package presenter renderiza o gráfico de previsão e o resumo textual do relatório
package presenter

import (
	"fmt"
	"image/color"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	chartTitle  = "Sales Forecasting & Demand Planning"
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

var (
	actualColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	averageColor  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	forecastColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

type ChartRenderer struct {
	window int
}

// NewChartRenderer cria o renderizador; window é usado apenas na legenda da média móvel
func NewChartRenderer(window int) *ChartRenderer {
	return &ChartRenderer{window: window}
}

// Build monta o gráfico com as séries real, média móvel e previsão sobre um eixo de datas
func (c *ChartRenderer) Build(report *domain.SalesReport) (*plot.Plot, error) {
	if report == nil || len(report.Monthly) == 0 {
		return nil, errors.New("relatório sem dados mensais")
	}

	p := plot.New()
	p.Title.Text = chartTitle
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Sales Revenue"
	p.X.Tick.Marker = plot.TimeTicks{Format: domain.MonthLayout}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	actual := make(plotter.XYs, len(report.Monthly))
	average := make(plotter.XYs, len(report.Monthly))
	for i, m := range report.Monthly {
		x := float64(m.MonthStart.Unix())
		actual[i] = plotter.XY{X: x, Y: m.TotalSales}
		average[i] = plotter.XY{X: x, Y: m.MovingAverage}
	}

	actualLine, actualPoints, err := plotter.NewLinePoints(actual)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar série de vendas reais")
	}
	actualLine.Color = actualColor
	actualPoints.Color = actualColor
	actualPoints.Shape = draw.CircleGlyph{}
	p.Add(actualLine, actualPoints)
	p.Legend.Add("Actual Sales", actualLine, actualPoints)

	averageLine, err := plotter.NewLine(average)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar série da média móvel")
	}
	averageLine.Color = averageColor
	averageLine.Width = vg.Points(2)
	p.Add(averageLine)
	p.Legend.Add(fmt.Sprintf("%d-Month Moving Avg", c.window), averageLine)

	if len(report.Forecast) > 0 {
		forecast := make(plotter.XYs, len(report.Forecast))
		for i, f := range report.Forecast {
			forecast[i] = plotter.XY{X: float64(f.MonthStart.Unix()), Y: f.PredictedSales}
		}

		forecastLine, forecastPoints, err := plotter.NewLinePoints(forecast)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar série da previsão")
		}
		forecastLine.Color = forecastColor
		forecastLine.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		forecastPoints.Color = forecastColor
		forecastPoints.Shape = draw.CrossGlyph{}
		p.Add(forecastLine, forecastPoints)
		p.Legend.Add("Forecast", forecastLine, forecastPoints)
	}

	return p, nil
}

// Save grava o gráfico no caminho indicado; o formato vem da extensão do arquivo
func (c *ChartRenderer) Save(report *domain.SalesReport, path string) error {
	p, err := c.Build(report)
	if err != nil {
		return err
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return errors.Wrapf(err, "erro ao salvar gráfico em %s", path)
	}
	return nil
}

// WritePNG escreve o gráfico em PNG no writer
func (c *ChartRenderer) WritePNG(w io.Writer, report *domain.SalesReport) error {
	p, err := c.Build(report)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return errors.Wrap(err, "erro ao preparar gráfico PNG")
	}

	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "erro ao escrever gráfico PNG")
	}
	return nil
}
