package collector

import "StockForecast/internal/model"

// Source supplies an ordered sequence of observations.
type Source interface {
	Load() ([]model.Observation, error)
	Name() string
}
