package forecasting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

// ParseMonth converte um rótulo yyyy-mm no primeiro dia do mês, em UTC
func ParseMonth(label string) (time.Time, error) {
	month, err := time.Parse(domain.MonthLayout, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedMonth, label)
	}
	return month, nil
}

// MovingAverage calcula a média móvel das últimas window posições. No início da
// série a janela é menor (mínimo de 1 valor).
func MovingAverage(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	averages := make([]float64, len(values))
	for i := range values {
		start := max(0, i-window+1)

		sum := 0.0
		for _, v := range values[start : i+1] {
			sum += v
		}
		averages[i] = sum / float64(i+1-start)
	}

	return averages, nil
}

// ApplyTrend preenche MonthStart e MovingAverage de cada mês. A entrada deve
// estar em ordem cronológica; a saída tem o mesmo tamanho.
func ApplyTrend(monthly []domain.MonthlySales, window int) ([]domain.MonthlySales, error) {
	values := make([]float64, len(monthly))
	for i, m := range monthly {
		values[i] = m.TotalSales
	}

	averages, err := MovingAverage(values, window)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MonthlySales, len(monthly))
	for i, m := range monthly {
		start, err := ParseMonth(m.Month)
		if err != nil {
			return nil, err
		}

		if i > 0 && !start.After(result[i-1].MonthStart) {
			return nil, fmt.Errorf("meses fora de ordem: %s após %s", m.Month, result[i-1].Month)
		}

		result[i] = domain.MonthlySales{
			Month:         m.Month,
			MonthStart:    start,
			TotalSales:    m.TotalSales,
			MovingAverage: averages[i],
		}
	}

	return result, nil
}
