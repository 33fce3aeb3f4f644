package nn

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// SoftmaxLayer is a parameterless loss-bearing layer for multinomial
// classification. It normalizes the values it receives into probabilities
// (none below 0, summing to 1) and terminates the chain with its loss
// function. Place it after a dense layer with a linear activation so that it
// receives raw scores.
type SoftmaxLayer struct {
	chainMeta
	loss Loss
}

// NewSoftmaxLayer creates a softmax output layer. Its size is taken from the
// preceding layer when it is attached. A zero-value loss defaults to
// CategoricalCrossEntropy.
func NewSoftmaxLayer(loss Loss) *SoftmaxLayer {
	if loss.F == nil {
		loss = CategoricalCrossEntropy
	}
	return &SoftmaxLayer{
		chainMeta: chainMeta{name: nextLayerName("SoftmaxLayer")},
		loss:      loss,
	}
}

// Loss returns the layer's loss function.
func (l *SoftmaxLayer) Loss() Loss { return l.loss }

// String renders the layer for debugging.
func (l *SoftmaxLayer) String() string {
	return fmt.Sprintf("SoftmaxLayer(num_inputs=%d, num_outputs=%d, name=%q, loss=%q)",
		l.numInputs, l.numOutputs, l.name, l.loss.Name)
}

func (l *SoftmaxLayer) seals() {}

func (l *SoftmaxLayer) attach(pos, numInputs int) error {
	if l.owned {
		return errors.Wrapf(ErrChainState, "%s: layer already belongs to a chain", l.name)
	}
	l.pos = pos
	l.numInputs = numInputs
	l.numOutputs = numInputs
	l.owned = true
	return nil
}

// forward applies the max-shifted exponential normalization
//
//	yhat_i = exp(x_i - max(x)) / sum_k exp(x_k - max(x))
//
// The shift leaves the result unchanged algebraically but keeps the
// exponentials from overflowing for large scores.
func (l *SoftmaxLayer) forward(p *pass, x []float64) ([]float64, error) {
	if len(x) != l.numInputs {
		return nil, &DimensionError{Layer: l.name, Want: l.numInputs, Got: len(x)}
	}
	maxVal := x[0]
	for _, v := range x[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	out := make([]float64, l.numOutputs)
	var sum float64
	for i, v := range x {
		out[i] = math.Exp(v - maxVal)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	if !allFinite(out) {
		return nil, errors.Wrapf(ErrNumeric, "%s: forward pass", l.name)
	}
	cache := &p.caches[l.pos]
	cache.input = x
	cache.output = out
	return out, nil
}

// lossValue sums the per-unit losses of the probabilities against the pass
// target, the same convention as OutputLayer.
func (l *SoftmaxLayer) lossValue(p *pass) (float64, error) {
	out := p.caches[l.pos].output
	if out == nil {
		return 0, errors.Wrapf(ErrChainState, "%s: loss requested without a matching forward", l.name)
	}
	if len(p.target) != l.numOutputs {
		return 0, &DimensionError{Layer: l.name, Want: l.numOutputs, Got: len(p.target)}
	}
	var sum float64
	for i, yhat := range out {
		sum += l.loss.F(yhat, p.target[i])
	}
	return sum, nil
}

// backward seeds the pass with the loss derivative when called with a nil
// gradient and folds it through the softmax Jacobian:
//
//	input_grad_i = sum_o grad_o * yhat_o * ([i==o] - yhat_i)
//
// The layer has no parameters, so nothing is updated.
func (l *SoftmaxLayer) backward(p *pass, grad []float64, lr float64) ([]float64, error) {
	out := p.caches[l.pos].output
	if out == nil {
		return nil, errors.Wrapf(ErrChainState, "%s: backward without a matching forward", l.name)
	}
	if grad == nil {
		if len(p.target) != l.numOutputs {
			return nil, &DimensionError{Layer: l.name, Want: l.numOutputs, Got: len(p.target)}
		}
		grad = make([]float64, l.numOutputs)
		for i, yhat := range out {
			grad[i] = l.loss.Prime(yhat, p.target[i])
		}
	} else if len(grad) != l.numOutputs {
		return nil, &DimensionError{Layer: l.name, Want: l.numOutputs, Got: len(grad)}
	}

	inputGrad := make([]float64, l.numInputs)
	for i := range inputGrad {
		var sum float64
		for o, g := range grad {
			kron := 0.0
			if i == o {
				kron = 1.0
			}
			sum += g * out[o] * (kron - out[i])
		}
		inputGrad[i] = sum
	}
	if !allFinite(inputGrad) {
		return nil, errors.Wrapf(ErrNumeric, "%s: backward pass", l.name)
	}
	return inputGrad, nil
}
