package model

import "time"

// Forecast is the outcome of one predict + backtest run.
type Forecast struct {
	Symbol       string
	WindowSize   int
	Observations int
	Predicted    float64
	Accuracy     float64
	Steps        []BacktestStep
	GeneratedAt  time.Time
}

// BacktestStep is one replayed prediction against a known price.
type BacktestStep struct {
	Index     int
	Time      time.Time
	Predicted float64
	Actual    float64
	Error     float64
}
