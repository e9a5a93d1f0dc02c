package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockForecast/internal/config"
)

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{}
	cfg.Forecast.WindowSize = 5
	cfg.Data.Source = config.SourceDemo

	applyFlags(cfg, "", 0)
	assert.Equal(t, 5, cfg.Forecast.WindowSize)
	assert.Equal(t, config.SourceDemo, cfg.Data.Source)

	applyFlags(cfg, "prices.JSON", 3)
	assert.Equal(t, 3, cfg.Forecast.WindowSize)
	assert.Equal(t, config.SourceJSON, cfg.Data.Source)
	assert.Equal(t, "prices.JSON", cfg.Data.Path)

	applyFlags(cfg, "prices.csv", 0)
	assert.Equal(t, config.SourceCSV, cfg.Data.Source)
}
