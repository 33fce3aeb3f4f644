package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vincent-Talen/Advanced-Datamining/internal/nn"
)

// A noise-free line y = 3x - 1 that a single linear unit can fit exactly.
var (
	lineInputs  = [][]float64{{-2}, {-1}, {0}, {1}, {2}, {3}}
	lineTargets = []float64{-7, -4, -1, 2, 5, 8}
)

func TestNeuronLearnsLine(t *testing.T) {
	m := NewNeuron(1, nn.Linear, nn.SquaredError)

	losses, err := m.Fit(lineInputs, lineTargets, FitConfig{LearningRate: 0.05, Epochs: 2000})
	require.NoError(t, err)
	require.Len(t, losses, 2000)
	assert.Less(t, losses[len(losses)-1], 1e-12)

	yhats, err := m.Predict(lineInputs)
	require.NoError(t, err)
	for i, y := range lineTargets {
		assert.InDelta(t, y, yhats[i], 1e-6)
	}
}

func TestNeuronDefaults(t *testing.T) {
	// Zero-value activation, loss and config fall back to a linear unit with
	// squared error, learning rate 0.001 and 1000 epochs.
	m := NewNeuron(1, nn.Activation{}, nn.Loss{})

	losses, err := m.Fit(lineInputs, lineTargets, FitConfig{})
	require.NoError(t, err)
	require.Len(t, losses, 1000)
	assert.Less(t, losses[len(losses)-1], 1e-6)

	yhats, err := m.Predict([][]float64{{10}})
	require.NoError(t, err)
	assert.InDelta(t, 29.0, yhats[0], 1e-2)
}

func TestNeuronSigmoidClassifier(t *testing.T) {
	xs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	ys := []float64{0, 1, 1, 1}
	m := NewNeuron(2, nn.Sigmoid, nn.BinaryCrossEntropy)

	losses, err := m.Fit(xs, ys, FitConfig{LearningRate: 0.5, Epochs: 2000})
	require.NoError(t, err)
	assert.Less(t, losses[len(losses)-1], losses[0])

	yhats, err := m.Predict(xs)
	require.NoError(t, err)
	for i, y := range ys {
		if y == 1 {
			assert.Greater(t, yhats[i], 0.5, "example %d", i)
		} else {
			assert.Less(t, yhats[i], 0.5, "example %d", i)
		}
	}
}

func TestNeuronValidatesInput(t *testing.T) {
	m := NewNeuron(2, nn.Linear, nn.SquaredError)

	_, err := m.Fit([][]float64{{1, 2}}, []float64{1, 2}, FitConfig{Epochs: 1})
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)

	_, err = m.Predict([][]float64{{1}})
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)
}

func TestNeuronString(t *testing.T) {
	m := NewNeuron(2, nn.Tanh, nn.AbsoluteError)
	assert.Equal(t, "Neuron(dim=2, activation=tanh, loss=absolute_error)", m.String())
}
