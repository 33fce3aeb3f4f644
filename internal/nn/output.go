package nn

import (
	"fmt"

	"github.com/pkg/errors"
)

// OutputLayer is a DenseLayer that also owns a loss function. It terminates a
// chain: its recorded output is the network's prediction, and during training
// it seeds backpropagation with the loss derivative against the pass target.
type OutputLayer struct {
	DenseLayer
	loss Loss
}

// NewOutputLayer creates a loss-bearing dense layer with numOutputs units.
// A zero-value activation defaults to Linear and a zero-value loss to
// SquaredError.
func NewOutputLayer(numOutputs int, act Activation, loss Loss) *OutputLayer {
	if act.F == nil {
		act = Linear
	}
	if loss.F == nil {
		loss = SquaredError
	}
	l := &OutputLayer{
		DenseLayer: DenseLayer{
			chainMeta: chainMeta{
				numOutputs: numOutputs,
				name:       nextLayerName("OutputLayer"),
			},
			act: act,
		},
		loss: loss,
	}
	return l
}

// Loss returns the layer's loss function.
func (l *OutputLayer) Loss() Loss { return l.loss }

// String renders the layer's sizes, parameter shapes and loss for debugging.
func (l *OutputLayer) String() string {
	return fmt.Sprintf("OutputLayer(num_inputs=%d, num_outputs=%d, name=%q, activation=%q, loss=%q, weights=%dx%d, biases=%d)",
		l.numInputs, l.numOutputs, l.name, l.act.Name, l.loss.Name, l.numOutputs, l.numInputs, l.numOutputs)
}

func (l *OutputLayer) seals() {}

// lossValue sums the per-unit losses of the recorded prediction against the
// pass target. The sum convention matches the derivative used to seed
// backpropagation: d(sum)/d(yhat_i) is exactly Prime(yhat_i, y_i).
func (l *OutputLayer) lossValue(p *pass) (float64, error) {
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

// backward initiates backpropagation when called with a nil gradient: the
// seed is the loss derivative with respect to each predicted value. The rest
// is the ordinary DenseLayer backward step.
func (l *OutputLayer) backward(p *pass, grad []float64, lr float64) ([]float64, error) {
	if grad == nil {
		out := p.caches[l.pos].output
		if out == nil {
			return nil, errors.Wrapf(ErrChainState, "%s: backward without a matching forward", l.name)
		}
		if len(p.target) != l.numOutputs {
			return nil, &DimensionError{Layer: l.name, Want: l.numOutputs, Got: len(p.target)}
		}
		grad = make([]float64, l.numOutputs)
		for i, yhat := range out {
			grad[i] = l.loss.Prime(yhat, p.target[i])
		}
	}
	return l.DenseLayer.backward(p, grad, lr)
}
