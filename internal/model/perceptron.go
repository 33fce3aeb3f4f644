// Package model provides the single-unit learners: Perceptron, Neuron and
// LinearRegression. Each is a thin configuration of a one-layer network with
// a fixed activation/loss pairing, exposing a simplified fit/predict surface
// over scalar targets.
package model

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/Vincent-Talen/Advanced-Datamining/internal/nn"
)

// Perceptron is Rosenblatt's binary single-unit classifier: a one-layer
// network with the Heaviside step activation, predicting 0 or 1.
//
// The step function's derivative is 0 everywhere it is defined, so the
// chain-rule gradient would never move the parameters; Fit therefore applies
// the classic perceptron learning rule, which is the same gradient-descent
// update with the activation derivative taken as 1:
//
//	error  = yhat - y
//	weight -= lr * error * x
//	bias   -= lr * error
type Perceptron struct {
	dim    int
	net    *nn.Network
	out    *nn.OutputLayer
	fitted bool
}

// PerceptronConfig holds configuration for Perceptron.Fit.
type PerceptronConfig struct {
	LearningRate float64 // Update scale (default: 1, the classic rule)
	Epochs       int     // Maximum passes; 0 trains until convergence
}

// NewPerceptron creates a perceptron over feature vectors of length dim.
// Weights and bias start at zero.
func NewPerceptron(dim int) *Perceptron {
	out := nn.NewOutputLayer(1, nn.Step, nn.SquaredError)
	net := nn.NewNetwork(nn.NewInputLayer(dim))
	if err := net.Add(out); err != nil {
		panic(err) // unreachable: the layer is freshly constructed
	}
	zeroParameters(out)
	return &Perceptron{dim: dim, net: net, out: out}
}

// String renders the model for debugging.
func (p *Perceptron) String() string {
	return fmt.Sprintf("Perceptron(dim=%d)", p.dim)
}

// Fitted reports whether a full training pass completed without a single
// parameter update, meaning the model classifies every training example
// correctly.
func (p *Perceptron) Fitted() bool { return p.fitted }

// Predict returns the predicted class (0 or 1) for each input vector.
// Parameters are never mutated.
func (p *Perceptron) Predict(xs [][]float64) ([]float64, error) {
	return predictScalars(p.net, xs)
}

// Fit trains with the perceptron rule over the examples in caller order.
// With cfg.Epochs == 0 it iterates until an entire pass makes no update,
// which terminates only if the classes are linearly separable. Returns the
// number of epochs completed.
func (p *Perceptron) Fit(xs [][]float64, ys []float64, cfg PerceptronConfig) (int, error) {
	if len(xs) != len(ys) {
		return 0, errors.Wrapf(nn.ErrDimensionMismatch, "fit: %d inputs versus %d targets", len(xs), len(ys))
	}
	lr := cfg.LearningRate
	if lr == 0 {
		lr = 1.0
	}

	epochs := 0
	for !p.fitted && (cfg.Epochs == 0 || epochs < cfg.Epochs) {
		updated := false
		for i, x := range xs {
			yhat, err := p.net.Predict(x)
			if err != nil {
				return epochs, err
			}
			if diff := yhat[0] - ys[i]; diff != 0 {
				updated = true
				floats.AddScaled(p.out.Weights().RawRowView(0), -lr*diff, x)
				p.out.Biases()[0] -= lr * diff
			}
		}
		epochs++
		if !updated {
			p.fitted = true
		}
	}
	return epochs, nil
}

// zeroParameters clears a freshly allocated unit so training starts from the
// origin, the way the classic single-unit models are specified.
func zeroParameters(out *nn.OutputLayer) {
	rows, cols := out.Weights().Dims()
	weights := make([][]float64, rows)
	for j := range weights {
		weights[j] = make([]float64, cols)
	}
	if err := out.SetParameters(weights, make([]float64, rows)); err != nil {
		panic(err) // unreachable: shapes match by construction
	}
}

// predictScalars runs forward-only inference and unwraps the single output
// unit of each prediction.
func predictScalars(net *nn.Network, xs [][]float64) ([]float64, error) {
	yhats := make([]float64, len(xs))
	for i, x := range xs {
		out, err := net.Predict(x)
		if err != nil {
			return nil, err
		}
		yhats[i] = out[0]
	}
	return yhats, nil
}
