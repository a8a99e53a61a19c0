package forecasting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-forecast/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// FitTrend ajusta uma reta por mínimos quadrados sobre os índices 0..N-1
func FitTrend(values []float64) (domain.TrendLine, error) {
	if len(values) < 2 {
		return domain.TrendLine{}, fmt.Errorf("%w (recebidos %d)", ErrInsufficientData, len(values))
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(xs, values, nil, false)

	return domain.TrendLine{
		Slope:     slope,
		Intercept: intercept,
		Points:    len(values),
	}, nil
}

// FutureMonths retorna periods meses consecutivos a partir do mês seguinte a last
func FutureMonths(last time.Time, periods int) []time.Time {
	start := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, last.Location())

	months := make([]time.Time, 0, periods)
	for i := 1; i <= periods; i++ {
		months = append(months, start.AddDate(0, i, 0))
	}
	return months
}

// Project ajusta a tendência da série mensal e avalia a reta nos índices N..N+periods-1
func Project(monthly []domain.MonthlySales, periods int) (domain.TrendLine, []domain.ForecastPoint, error) {
	values := make([]float64, len(monthly))
	for i, m := range monthly {
		values[i] = m.TotalSales
	}

	trend, err := FitTrend(values)
	if err != nil {
		return domain.TrendLine{}, nil, err
	}

	last := monthly[len(monthly)-1].MonthStart
	if last.IsZero() {
		if last, err = ParseMonth(monthly[len(monthly)-1].Month); err != nil {
			return domain.TrendLine{}, nil, err
		}
	}

	n := len(monthly)
	points := make([]domain.ForecastPoint, 0, periods)
	for i, month := range FutureMonths(last, periods) {
		points = append(points, domain.ForecastPoint{
			Month:          month.Format(domain.MonthLayout),
			MonthStart:     month,
			PredictedSales: trend.At(float64(n + i)),
		})
	}

	return trend, points, nil
}
