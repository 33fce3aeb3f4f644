package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vincent-Talen/Advanced-Datamining/internal/nn"
)

// A noise-free plane y = 2*x1 - 3*x2 + 1.
var (
	planeInputs  = [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}, {3, 2}, {2, 3}}
	planeTargets = []float64{1, 3, -2, 0, 2, -3, 1, -4}
)

func TestLinearRegressionLearnsPlane(t *testing.T) {
	m := NewLinearRegression(2)

	losses, err := m.Fit(planeInputs, planeTargets, FitConfig{LearningRate: 0.02, Epochs: 2000})
	require.NoError(t, err)
	require.Len(t, losses, 2000)
	assert.Less(t, losses[len(losses)-1], 1e-9)

	yhats, err := m.Predict([][]float64{{4, 4}, {-1, 2}})
	require.NoError(t, err)
	assert.InDelta(t, -3.0, yhats[0], 1e-4)
	assert.InDelta(t, -7.0, yhats[1], 1e-4)
}

func TestLinearRegressionLossDecreasesMonotonically(t *testing.T) {
	m := NewLinearRegression(2)

	losses, err := m.Fit(planeInputs, planeTargets, FitConfig{})
	require.NoError(t, err)
	require.Len(t, losses, 1000)
	for i := 1; i < len(losses); i++ {
		assert.LessOrEqual(t, losses[i], losses[i-1]+1e-12, "epoch %d", i)
	}
	assert.Less(t, losses[len(losses)-1], 1e-9)
}

func TestLinearRegressionPredictDoesNotTrain(t *testing.T) {
	m := NewLinearRegression(2)
	yhats, err := m.Predict(planeInputs)
	require.NoError(t, err)

	// Zero-initialized parameters predict 0 everywhere until trained.
	for _, yhat := range yhats {
		assert.Zero(t, yhat)
	}
}

func TestLinearRegressionValidatesInput(t *testing.T) {
	m := NewLinearRegression(2)

	_, err := m.Fit(planeInputs, planeTargets[:3], FitConfig{Epochs: 1})
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)
}

func TestLinearRegressionString(t *testing.T) {
	assert.Equal(t, "LinearRegression(dim=2)", NewLinearRegression(2).String())
}
