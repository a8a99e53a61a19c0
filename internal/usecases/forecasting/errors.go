package forecasting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-forecast/pkg/apiErrors"
)

var (
	// ErrInsufficientData indica menos de 2 meses na série; a reta fica indeterminada
	ErrInsufficientData = errors.New("at least 2 monthly points are required to fit a trend")
	ErrMalformedMonth   = errors.New("malformed month label")
	ErrInvalidWindow    = errors.New("moving average window must be positive")
)

// ForecastError é um erro com contexto adicional para a API
type ForecastError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ForecastError) Unwrap() error {
	return e.Err
}

func NewForecastError(err error, code string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// CodeOf retorna o código de API do erro, ou erro interno quando não há um
func CodeOf(err error) string {
	var forecastErr *ForecastError
	if errors.As(err, &forecastErr) && forecastErr.Code != "" {
		return forecastErr.Code
	}
	return apiErrors.ErrInternalServer
}
