package collector

import (
	"time"

	"StockForecast/internal/model"
)

// DemoSource returns the fixed six-day demonstration dataset.
type DemoSource struct{}

func (DemoSource) Name() string { return "demo" }

func (DemoSource) Load() ([]model.Observation, error) {
	prices := []float64{100, 102, 101, 103, 105, 104}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	obs := make([]model.Observation, len(prices))
	for i, p := range prices {
		obs[i] = model.Observation{Price: p, Time: start.AddDate(0, 0, i)}
	}
	return obs, nil
}
