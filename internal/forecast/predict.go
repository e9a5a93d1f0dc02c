package forecast

import (
	"math"

	"StockForecast/internal/model"
)

// DefaultWindowSize is the lookback used when none is configured.
const DefaultWindowSize = 5

// PredictNext estimates the next price from the trailing windowSize observations.
//
// The weighted accumulator adds both price*weight and weight into one sum and is
// then divided by itself, so the base term is exactly 1 (NaN if the sum is zero).
// The estimate is therefore max(0, 1 + trend). This arithmetic is reproduced
// as-is; see WeightedAverage for the true weighted moving average.
func PredictNext(obs []model.Observation, windowSize int) (float64, error) {
	recent, err := trailingWindow(obs, windowSize)
	if err != nil {
		return 0, err
	}

	weightedSum := 0.0
	for i, o := range recent {
		weight := recencyWeight(i, len(recent))
		weightedSum += o.Price * weight
		weightedSum += weight
	}

	basePredict := weightedSum / weightedSum
	prediction := basePredict + Trend(recent)

	return math.Max(0, prediction), nil
}

// WeightedAverage is the corrected variant of PredictNext: the recency-weighted
// mean price of the trailing window plus the trend, clamped at zero.
func WeightedAverage(obs []model.Observation, windowSize int) (float64, error) {
	recent, err := trailingWindow(obs, windowSize)
	if err != nil {
		return 0, err
	}

	var priceSum, weightSum float64
	for i, o := range recent {
		weight := recencyWeight(i, len(recent))
		priceSum += o.Price * weight
		weightSum += weight
	}

	return math.Max(0, priceSum/weightSum+Trend(recent)), nil
}

// Trend returns the mean of the first differences of price across obs.
// With fewer than two observations there are no differences and the trend is 0.
func Trend(obs []model.Observation) float64 {
	if len(obs) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(obs); i++ {
		sum += obs[i].Price - obs[i-1].Price
	}
	return sum / float64(len(obs)-1)
}

// recencyWeight is exp(i/n), increasing toward the most recent entry.
func recencyWeight(i, n int) float64 {
	return math.Exp(float64(i) / float64(n))
}

func trailingWindow(obs []model.Observation, windowSize int) ([]model.Observation, error) {
	if windowSize <= 0 {
		return nil, &InvalidWindowError{Size: windowSize}
	}
	if len(obs) < windowSize {
		return nil, &InsufficientDataError{Have: len(obs), Need: windowSize}
	}
	return obs[len(obs)-windowSize:], nil
}
