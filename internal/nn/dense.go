package nn

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DenseLayer is a fully connected layer: the only layer kind with trainable
// parameters. It holds a weight matrix of shape (num_outputs x num_inputs)
// and a bias vector of length num_outputs, and applies its activation
// function elementwise to the affine pre-activation values.
//
// Weights are allocated lazily when the layer is attached to a chain, because
// num_inputs is unknown until the preceding layer is fixed; biases start at
// zero and weights use normalized Xavier initialization.
type DenseLayer struct {
	chainMeta
	act     Activation
	weights *mat.Dense
	biases  []float64
}

// NewDenseLayer creates a dense layer with numOutputs units. A zero-value
// activation defaults to Linear.
func NewDenseLayer(numOutputs int, act Activation) *DenseLayer {
	if act.F == nil {
		act = Linear
	}
	return &DenseLayer{
		chainMeta: chainMeta{
			numOutputs: numOutputs,
			name:       nextLayerName("DenseLayer"),
		},
		act: act,
	}
}

// Activation returns the layer's activation function.
func (l *DenseLayer) Activation() Activation { return l.act }

// Weights returns the live weight matrix, shaped (num_outputs x num_inputs).
// It is nil until the layer is attached to a chain.
func (l *DenseLayer) Weights() *mat.Dense { return l.weights }

// Biases returns the live bias vector of length num_outputs.
func (l *DenseLayer) Biases() []float64 { return l.biases }

// SetParameters replaces the layer's weights and biases, for deterministic
// setups and tests. The layer must already be attached; weights must be
// (num_outputs x num_inputs) and biases of length num_outputs.
func (l *DenseLayer) SetParameters(weights [][]float64, biases []float64) error {
	if l.weights == nil {
		return errors.Wrapf(ErrChainState, "%s: parameters are only allocated once the layer is part of a chain", l.name)
	}
	if len(weights) != l.numOutputs {
		return &DimensionError{Layer: l.name, Want: l.numOutputs, Got: len(weights)}
	}
	if len(biases) != l.numOutputs {
		return &DimensionError{Layer: l.name, Want: l.numOutputs, Got: len(biases)}
	}
	for j, row := range weights {
		if len(row) != l.numInputs {
			return &DimensionError{Layer: l.name, Want: l.numInputs, Got: len(row)}
		}
		copy(l.weights.RawRowView(j), row)
	}
	copy(l.biases, biases)
	return nil
}

// String renders the layer's sizes and parameter shapes for debugging.
func (l *DenseLayer) String() string {
	return fmt.Sprintf("DenseLayer(num_inputs=%d, num_outputs=%d, name=%q, activation=%q, weights=%dx%d, biases=%d)",
		l.numInputs, l.numOutputs, l.name, l.act.Name, l.numOutputs, l.numInputs, l.numOutputs)
}

func (l *DenseLayer) attach(pos, numInputs int) error {
	if l.owned {
		return errors.Wrapf(ErrChainState, "%s: layer already belongs to a chain", l.name)
	}
	l.pos = pos
	l.numInputs = numInputs
	l.weights = xavierDense(numInputs, l.numOutputs)
	l.biases = make([]float64, l.numOutputs)
	l.owned = true
	return nil
}

// forward computes, per unit j, the pre-activation
// bias_j + sum_i(weight[j][i] * x_i) and applies the activation function.
// The input, pre-activation and output vectors are recorded in p for the
// matching backward step.
func (l *DenseLayer) forward(p *pass, x []float64) ([]float64, error) {
	if len(x) != l.numInputs {
		return nil, &DimensionError{Layer: l.name, Want: l.numInputs, Got: len(x)}
	}
	pre := make([]float64, l.numOutputs)
	out := make([]float64, l.numOutputs)
	for j := 0; j < l.numOutputs; j++ {
		pre[j] = l.biases[j] + floats.Dot(l.weights.RawRowView(j), x)
		out[j] = l.act.F(pre[j])
	}
	if !allFinite(out) {
		return nil, errors.Wrapf(ErrNumeric, "%s: forward pass", l.name)
	}
	cache := &p.caches[l.pos]
	cache.input = x
	cache.preActivation = pre
	cache.output = out
	return out, nil
}

// backward turns the incoming gradient with respect to this layer's output
// into the per-unit error signal delta, propagates the gradient with respect
// to the layer's input, and only then updates the parameters in place:
//
//	delta_j        = grad_j * activation'(pre_j)
//	input_grad_i   = sum_j weight[j][i] * delta_j   (pre-update weights)
//	weight[j][i]  -= lr * delta_j * input_i
//	bias_j        -= lr * delta_j
//
// The input gradient must be computed before any update so that it reflects
// the weights as they existed during the forward pass. Both delta and the
// input gradient are validated for finiteness before any mutation, so a
// numeric failure never leaves the layer half-updated.
func (l *DenseLayer) backward(p *pass, grad []float64, lr float64) ([]float64, error) {
	cache := &p.caches[l.pos]
	if cache.output == nil {
		return nil, errors.Wrapf(ErrChainState, "%s: backward without a matching forward", l.name)
	}
	if len(grad) != l.numOutputs {
		return nil, &DimensionError{Layer: l.name, Want: l.numOutputs, Got: len(grad)}
	}

	delta := make([]float64, l.numOutputs)
	for j := 0; j < l.numOutputs; j++ {
		delta[j] = grad[j] * l.act.Prime(cache.preActivation[j])
	}

	inputGrad := make([]float64, l.numInputs)
	for j := 0; j < l.numOutputs; j++ {
		floats.AddScaled(inputGrad, delta[j], l.weights.RawRowView(j))
	}
	if !allFinite(delta) || !allFinite(inputGrad) {
		return nil, errors.Wrapf(ErrNumeric, "%s: backward pass", l.name)
	}

	for j := 0; j < l.numOutputs; j++ {
		floats.AddScaled(l.weights.RawRowView(j), -lr*delta[j], cache.input)
		l.biases[j] -= lr * delta[j]
	}
	return inputGrad, nil
}
