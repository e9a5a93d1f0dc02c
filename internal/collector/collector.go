package collector

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"StockForecast/internal/config"
	"StockForecast/internal/series"
)

// NewSource picks the Source named by the data section of cfg.
func NewSource(cfg *config.Config) (Source, error) {
	switch cfg.Data.Source {
	case config.SourceDemo, "":
		return DemoSource{}, nil
	case config.SourceCSV:
		return &CSVSource{Path: cfg.Data.Path}, nil
	case config.SourceJSON:
		return &JSONSource{Path: cfg.Data.Path}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

// Collector loads observations from a Source into a fresh sequence store.
type Collector struct {
	Source Source
}

// NewCollector creates a new Collector.
func NewCollector(src Source) *Collector {
	return &Collector{Source: src}
}

// Collect appends every observation from the source, in order, to a new Store.
func (c *Collector) Collect() (*series.Store, error) {
	obs, err := c.Source.Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.Source.Name(), err)
	}

	store := series.NewStoreFrom(obs)
	log.Debug().Str("source", c.Source.Name()).Int("observations", store.Len()).Msg("sequence loaded")
	return store, nil
}
