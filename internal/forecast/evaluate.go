package forecast

import (
	"time"

	"StockForecast/internal/model"
)

// Evaluate runs the live prediction over the full sequence, then the backtest,
// and packages both into a Forecast.
func Evaluate(obs []model.Observation, windowSize int) (*model.Forecast, error) {
	predicted, err := PredictNext(obs, windowSize)
	if err != nil {
		return nil, err
	}
	res, err := Backtest(obs, windowSize)
	if err != nil {
		return nil, err
	}
	return &model.Forecast{
		WindowSize:   windowSize,
		Observations: len(obs),
		Predicted:    predicted,
		Accuracy:     res.Accuracy,
		Steps:        res.Steps,
		GeneratedAt:  time.Now(),
	}, nil
}
