package model

import (
	"fmt"
	"io"

	"github.com/Vincent-Talen/Advanced-Datamining/internal/nn"
)

// Neuron is a generalized single-unit model: one dense unit with a pluggable
// activation and loss, trained by true chain-rule gradient descent
// (delta = loss'(yhat, y) * activation'(pre-activation)).
type Neuron struct {
	dim int
	net *nn.Network
	out *nn.OutputLayer
}

// FitConfig holds configuration for the gradient-descent learners.
type FitConfig struct {
	LearningRate float64   // Step size (defaults: 0.001 Neuron, 0.01 LinearRegression)
	Epochs       int       // Passes over the dataset (default: 1000)
	Progress     io.Writer // Destination for an epoch progress bar (default: none)
}

// NewNeuron creates a neuron over feature vectors of length dim. A zero-value
// activation defaults to Linear and a zero-value loss to SquaredError.
// Weights and bias start at zero.
func NewNeuron(dim int, act nn.Activation, loss nn.Loss) *Neuron {
	out := nn.NewOutputLayer(1, act, loss)
	net := nn.NewNetwork(nn.NewInputLayer(dim))
	if err := net.Add(out); err != nil {
		panic(err) // unreachable: the layer is freshly constructed
	}
	zeroParameters(out)
	return &Neuron{dim: dim, net: net, out: out}
}

// String renders the model for debugging.
func (m *Neuron) String() string {
	return fmt.Sprintf("Neuron(dim=%d, activation=%s, loss=%s)",
		m.dim, m.out.Activation(), m.out.Loss())
}

// Predict returns the unit's output for each input vector without mutating
// parameters.
func (m *Neuron) Predict(xs [][]float64) ([]float64, error) {
	return predictScalars(m.net, xs)
}

// Fit trains the unit with per-example gradient descent in caller order and
// returns the mean loss of each epoch.
func (m *Neuron) Fit(xs [][]float64, ys []float64, cfg FitConfig) ([]float64, error) {
	return fitScalars(m.net, xs, ys, cfg, 0.001)
}

// fitScalars adapts scalar targets to the network training surface.
func fitScalars(net *nn.Network, xs [][]float64, ys []float64, cfg FitConfig, defaultLR float64) ([]float64, error) {
	lr := cfg.LearningRate
	if lr == 0 {
		lr = defaultLR
	}
	epochs := cfg.Epochs
	if epochs == 0 {
		epochs = 1000
	}
	targets := make([][]float64, len(ys))
	for i, y := range ys {
		targets[i] = []float64{y}
	}
	return net.Fit(xs, targets, nn.FitConfig{
		LearningRate: lr,
		Epochs:       epochs,
		Progress:     cfg.Progress,
	})
}
