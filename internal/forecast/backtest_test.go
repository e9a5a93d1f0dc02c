package forecast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAccuracy_ShortSequence(t *testing.T) {
	for _, prices := range [][]float64{{}, {100}} {
		got, err := ScoreAccuracy(makeObs(prices...), 5)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	}
}

func TestScoreAccuracy_NoEligibleWindow(t *testing.T) {
	for _, prices := range [][]float64{
		{100, 101},
		{100, 101, 102},
		{100, 102, 101, 103, 105},
	} {
		got, err := ScoreAccuracy(makeObs(prices...), 5)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got, "len %d", len(prices))
	}
}

func TestScoreAccuracy_ReferenceDataset(t *testing.T) {
	// One prefix (i=5): predicted 2.25 vs actual 104 → error 101.75.
	got, err := ScoreAccuracy(makeObs(100, 102, 101, 103, 105, 104), 5)
	require.NoError(t, err)
	assert.InDelta(t, -10075.0, got, 1e-9)
}

func TestBacktest_Steps(t *testing.T) {
	obs := makeObs(100, 102, 101, 103, 105, 104, 106)
	res, err := Backtest(obs, 5)
	require.NoError(t, err)

	require.Len(t, res.Steps, 2)
	assert.Equal(t, 2, res.Predictions)

	assert.Equal(t, 5, res.Steps[0].Index)
	assert.Equal(t, obs[5].Time, res.Steps[0].Time)
	assert.Equal(t, 2.25, res.Steps[0].Predicted)
	assert.Equal(t, 104.0, res.Steps[0].Actual)
	assert.Equal(t, 101.75, res.Steps[0].Error)

	assert.Equal(t, 1.5, res.Steps[1].Predicted)
	assert.Equal(t, 104.5, res.Steps[1].Error)

	assert.InDelta(t, 206.25, res.TotalError, 1e-9)
	assert.InDelta(t, -10212.5, res.Accuracy, 1e-9)

	score, err := ScoreAccuracy(obs, 5)
	require.NoError(t, err)
	assert.Equal(t, res.Accuracy, score)
}

func TestBacktest_PerfectFitScoresHundred(t *testing.T) {
	// Flat series of 1s: every prediction is 1 + 0 and matches exactly.
	res, err := Backtest(makeObs(1, 1, 1, 1), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Predictions)
	assert.Equal(t, 100.0, res.Accuracy)
}

func TestBacktest_DoesNotMutateInput(t *testing.T) {
	obs := makeObs(100, 102, 101, 103, 105, 104)
	before := make([]float64, len(obs))
	for i, o := range obs {
		before[i] = o.Price
	}
	_, err := Backtest(obs, 3)
	require.NoError(t, err)
	for i, o := range obs {
		assert.Equal(t, before[i], o.Price)
	}
}

func TestBacktest_InvalidWindowPropagates(t *testing.T) {
	_, err := ScoreAccuracy(makeObs(1, 2, 3), 0)
	var iwe *InvalidWindowError
	assert.True(t, errors.As(err, &iwe))
}
