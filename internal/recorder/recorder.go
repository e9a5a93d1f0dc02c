package recorder

import "StockForecast/internal/model"

// Recorder journals produced forecasts and their backtest steps.
type Recorder interface {
	RecordForecast(f *model.Forecast) (int64, error)
	Close() error
}
