package nn

import (
	"fmt"

	"github.com/pkg/errors"
)

// InputLayer is the sized pass-through entry point of every network. It has
// no parameters and its forward output is the identity of its input; its only
// job is to validate the incoming vector length and anchor the chain.
type InputLayer struct {
	chainMeta
}

// NewInputLayer creates an input layer for feature vectors of length
// numInputs.
func NewInputLayer(numInputs int) *InputLayer {
	return &InputLayer{chainMeta{
		numInputs:  numInputs,
		numOutputs: numInputs,
		name:       nextLayerName("InputLayer"),
		owned:      true, // always the head of a chain
	}}
}

// String renders the layer for debugging.
func (l *InputLayer) String() string {
	return fmt.Sprintf("InputLayer(num_inputs=%d, num_outputs=%d, name=%q)",
		l.numInputs, l.numOutputs, l.name)
}

// attach always fails: an input layer has no preceding layer to take its
// input size from.
func (l *InputLayer) attach(pos, numInputs int) error {
	return errors.Wrapf(ErrChainState, "%s: an input layer can only be the head of a chain", l.name)
}

func (l *InputLayer) forward(p *pass, x []float64) ([]float64, error) {
	if len(x) != l.numInputs {
		return nil, &DimensionError{Layer: l.name, Want: l.numInputs, Got: len(x)}
	}
	p.caches[l.pos].output = x
	return x, nil
}

// backward terminates backpropagation: the input layer has no parameters and
// nothing upstream to propagate to.
func (l *InputLayer) backward(p *pass, grad []float64, lr float64) ([]float64, error) {
	return nil, nil
}
