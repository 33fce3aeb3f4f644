package nn

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/Vincent-Talen/Advanced-Datamining/internal/parallel"
	"github.com/Vincent-Talen/Advanced-Datamining/internal/train"
)

// Network is an ordered chain of layers. Traversal is an index-driven loop
// over the slice rather than pointer-chasing recursion, so arbitrarily long
// chains never grow the call stack.
//
// A Network is not safe for concurrent use: training mutates layer parameters
// in place. Serialize example processing per network instance, or build
// independent networks per goroutine. Activation and Loss values are
// immutable and may be shared freely.
type Network struct {
	layers []Layer
}

// FitConfig holds configuration for Network.Fit.
type FitConfig struct {
	LearningRate float64   // Step size for parameter updates (default: 0.01)
	Epochs       int       // Passes over the dataset (default: 1)
	Progress     io.Writer // Destination for an epoch progress bar (default: none)
}

// NewNetwork creates a network anchored by the given input layer.
func NewNetwork(input *InputLayer) *Network {
	return &Network{layers: []Layer{input}}
}

// Add attaches layer after the current terminal layer of the chain. The new
// layer's input size is back-filled from the tail's output size, and its
// parameters (if any) are allocated at that point.
//
// Returns ErrChainState when the chain is already sealed by a loss-bearing
// layer, or when the layer being added already belongs to a chain.
func (n *Network) Add(layer Layer) error {
	tail := n.layers[len(n.layers)-1]
	if _, sealed := tail.(lossBearing); sealed {
		return errors.Wrapf(ErrChainState, "%s is a loss-bearing terminal layer, nothing can be added after it", tail.Name())
	}
	if err := layer.attach(len(n.layers), tail.NumOutputs()); err != nil {
		return err
	}
	n.layers = append(n.layers, layer)
	return nil
}

// Len returns the number of layers in the chain, including the input layer.
func (n *Network) Len() int { return len(n.layers) }

// Layer returns the layer at the given chain position.
func (n *Network) Layer(i int) (Layer, bool) {
	if i < 0 || i >= len(n.layers) {
		return nil, false
	}
	return n.layers[i], true
}

// LayerByName returns the layer carrying the given debug label.
func (n *Network) LayerByName(name string) (Layer, bool) {
	for _, l := range n.layers {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}

// String renders the whole chain for debugging.
func (n *Network) String() string {
	parts := make([]string, len(n.layers))
	for i, l := range n.layers {
		parts[i] = l.String()
	}
	return strings.Join(parts, " +\n\t")
}

// Predict feeds x forward through the chain and returns the terminal layer's
// output. It never mutates parameters, so repeated calls with the same input
// yield identical results.
func (n *Network) Predict(x []float64) ([]float64, error) {
	p := newPass(len(n.layers), nil)
	return n.runForward(p, x)
}

// PredictBatch runs Predict over every input vector, fanning large batches
// out across goroutines. Forward passes keep their state in per-call scratch,
// so this is safe as long as no Fit runs concurrently.
func (n *Network) PredictBatch(xs [][]float64) ([][]float64, error) {
	outs := make([][]float64, len(xs))
	err := parallel.ForErr(len(xs), func(i int) error {
		out, err := n.Predict(xs[i])
		outs[i] = out
		return err
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return outs, nil
}

// Loss feeds x forward and returns the summed per-unit loss of the prediction
// against target. Parameters are not mutated. The chain must be terminated by
// a loss-bearing layer.
func (n *Network) Loss(x, target []float64) (float64, error) {
	term, err := n.terminal()
	if err != nil {
		return 0, err
	}
	p := newPass(len(n.layers), target)
	if _, err := n.runForward(p, x); err != nil {
		return 0, err
	}
	return term.lossValue(p)
}

// Fit trains the network with per-example gradient descent: every epoch feeds
// each (input, target) pair forward, seeds the loss gradient at the terminal
// layer and propagates it backward, letting each dense layer update its own
// parameters. Examples are visited in the order given; the caller controls
// shuffling.
//
// Returns the mean per-example loss of each epoch, in order. Fit runs to
// completion for the configured number of epochs; early stopping belongs at
// the call site.
func (n *Network) Fit(xs, targets [][]float64, cfg FitConfig) ([]float64, error) {
	term, err := n.terminal()
	if err != nil {
		return nil, err
	}
	if len(xs) != len(targets) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "fit: %d inputs versus %d targets", len(xs), len(targets))
	}
	if len(xs) == 0 {
		return nil, errors.Wrap(ErrDimensionMismatch, "fit: empty dataset")
	}
	lr := cfg.LearningRate
	if lr == 0 {
		lr = 0.01
	}
	epochs := cfg.Epochs
	if epochs == 0 {
		epochs = 1
	}
	var tracker *train.Tracker
	if cfg.Progress != nil {
		tracker = train.NewTracker(epochs, cfg.Progress)
	}

	epochLosses := make([]float64, 0, epochs)
	for epoch := 1; epoch <= epochs; epoch++ {
		var total float64
		for i, x := range xs {
			p := newPass(len(n.layers), targets[i])
			if _, err := n.runForward(p, x); err != nil {
				return epochLosses, err
			}
			val, err := term.lossValue(p)
			if err != nil {
				return epochLosses, err
			}
			total += val
			if err := n.runBackward(p, lr); err != nil {
				return epochLosses, err
			}
		}
		epochLosses = append(epochLosses, total/float64(len(xs)))
		if tracker != nil {
			tracker.Update(epoch)
		}
	}
	return epochLosses, nil
}

// terminal returns the chain's loss-bearing terminal layer.
func (n *Network) terminal() (lossBearing, error) {
	tail := n.layers[len(n.layers)-1]
	term, ok := tail.(lossBearing)
	if !ok {
		return nil, errors.Wrapf(ErrChainState, "%s is not loss-bearing: terminate the chain with an output or softmax layer", tail.Name())
	}
	return term, nil
}

func (n *Network) runForward(p *pass, x []float64) ([]float64, error) {
	out := x
	var err error
	for _, l := range n.layers {
		if out, err = l.forward(p, out); err != nil {
			return nil, err
		}
	}
	p.forwardDone = true
	return out, nil
}

func (n *Network) runBackward(p *pass, lr float64) error {
	if !p.forwardDone {
		return errors.Wrap(ErrChainState, "backward without a completed forward pass")
	}
	var grad []float64
	var err error
	for i := len(n.layers) - 1; i >= 0; i-- {
		if grad, err = n.layers[i].backward(p, grad, lr); err != nil {
			return err
		}
	}
	return nil
}
