// Package nn implements a small from-scratch neural network core: a chain of
// layers with explicit forward, backward and update steps.
//
// This package provides the building blocks for constructing networks:
//   - Layer interface: common chain protocol for all layer kinds
//   - InputLayer: sized pass-through entry point
//   - DenseLayer: fully connected layer with trainable weights and biases
//   - OutputLayer: loss-bearing DenseLayer that terminates a chain
//   - SoftmaxLayer: loss-bearing probability output for classification
//   - Activations and losses: closed registries of pure function pairs
//   - Network: ordered container driving forward/backward traversal
//
// All gradients are hand-derived and applied per example; there is no tensor
// batching and no taped autodiff.
package nn

import (
	"fmt"
	"sync"
)

// Layer is the common protocol of every unit in a network chain. A layer
// transforms an input vector of length NumInputs into an output vector of
// length NumOutputs.
//
// The traversal methods are unexported: layers are driven exclusively by the
// Network container, which owns the chain order and the per-example pass
// state.
type Layer interface {
	// NumInputs returns the size of the incoming vector. It is 0 until the
	// layer has been attached to a chain, because the input size is only
	// known once the preceding layer is fixed.
	NumInputs() int

	// NumOutputs returns the size of the outgoing vector.
	NumOutputs() int

	// Name returns the layer's debug label, assigned from a process-wide
	// per-kind counter unless overridden with SetName. Names are cosmetic
	// and never used in computation.
	Name() string

	// SetName overrides the generated debug label.
	SetName(name string)

	// String renders the layer's sizes and parameter shapes for debugging.
	String() string

	// attach fixes the layer's chain position and input size, allocating
	// parameters once the sizes are known. A layer already owned by a
	// chain rejects a second attach with ErrChainState.
	attach(pos, numInputs int) error

	// forward computes the layer's output for x, recording whatever the
	// matching backward step will need in p.
	forward(p *pass, x []float64) ([]float64, error)

	// backward consumes the gradient of the loss with respect to this
	// layer's output, updates any trainable parameters with learning rate
	// lr, and returns the gradient with respect to this layer's input.
	backward(p *pass, grad []float64, lr float64) ([]float64, error)
}

// lossBearing is implemented by layers that own a loss function and may
// therefore terminate a chain and initiate backpropagation.
type lossBearing interface {
	Layer

	// lossValue returns the summed per-unit loss of the recorded
	// prediction against the pass target.
	lossValue(p *pass) (float64, error)

	// seals marks the chain as complete: nothing may be added after.
	seals()
}

// chainMeta holds the size and chain bookkeeping shared by all layer kinds.
type chainMeta struct {
	numInputs  int
	numOutputs int
	name       string
	pos        int
	owned      bool
}

func (m *chainMeta) NumInputs() int      { return m.numInputs }
func (m *chainMeta) NumOutputs() int     { return m.numOutputs }
func (m *chainMeta) Name() string        { return m.name }
func (m *chainMeta) SetName(name string) { m.name = name }

// layerCounter hands out per-kind sequence numbers for default layer names.
// Purely cosmetic.
var layerCounter = struct {
	mu     sync.Mutex
	counts map[string]int
}{counts: make(map[string]int)}

func nextLayerName(kind string) string {
	layerCounter.mu.Lock()
	defer layerCounter.mu.Unlock()
	layerCounter.counts[kind]++
	return fmt.Sprintf("%s_%d", kind, layerCounter.counts[kind])
}
