package recorder

import "StockForecast/internal/model"

// NoopRecorder is used when no journal database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordForecast(_ *model.Forecast) (int64, error) { return 0, nil }
func (n *NoopRecorder) Close() error                                  { return nil }
