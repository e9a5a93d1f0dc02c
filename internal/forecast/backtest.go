package forecast

import (
	"math"

	"StockForecast/internal/model"
)

// Result is the detailed outcome of a backtest.
type Result struct {
	Steps       []model.BacktestStep
	TotalError  float64
	Predictions int
	Accuracy    float64 // percentage, unbounded below
}

// ScoreAccuracy replays PredictNext over every prefix obs[:i] for i >= windowSize
// and returns (1 - meanAbsError) * 100. Sequences shorter than two observations,
// or with no eligible prefix, score 0.
func ScoreAccuracy(obs []model.Observation, windowSize int) (float64, error) {
	res, err := Backtest(obs, windowSize)
	if err != nil {
		return 0, err
	}
	return res.Accuracy, nil
}

// Backtest is ScoreAccuracy with the per-prefix detail kept.
func Backtest(obs []model.Observation, windowSize int) (*Result, error) {
	res := &Result{}
	if len(obs) < 2 {
		return res, nil
	}

	// Prefixes are cut from a private copy so a concurrent append to the
	// caller's backing array cannot shift them mid-run.
	snap := make([]model.Observation, len(obs))
	copy(snap, obs)

	for i := max(windowSize, 0); i < len(snap); i++ {
		predicted, err := PredictNext(snap[:i], windowSize)
		if err != nil {
			return nil, err
		}
		actual := snap[i].Price
		stepErr := math.Abs(predicted - actual)

		res.Steps = append(res.Steps, model.BacktestStep{
			Index:     i,
			Time:      snap[i].Time,
			Predicted: predicted,
			Actual:    actual,
			Error:     stepErr,
		})
		res.TotalError += stepErr
		res.Predictions++
	}

	if res.Predictions > 0 {
		res.Accuracy = (1 - res.TotalError/float64(res.Predictions)) * 100
	}
	return res, nil
}
