// Copyright 2025 The Advanced-Datamining Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/Vincent-Talen/Advanced-Datamining/internal/nn"
)

// Layer is the common protocol of every unit in a network chain.
type Layer = nn.Layer

// Network is an ordered chain of layers.
type Network = nn.Network

// FitConfig holds configuration for Network.Fit.
type FitConfig = nn.FitConfig

// NewNetwork creates a network anchored by the given input layer.
func NewNetwork(input *InputLayer) *Network {
	return nn.NewNetwork(input)
}

// Layers

// InputLayer is the sized pass-through entry point of every network.
type InputLayer = nn.InputLayer

// NewInputLayer creates an input layer for feature vectors of length
// numInputs.
func NewInputLayer(numInputs int) *InputLayer {
	return nn.NewInputLayer(numInputs)
}

// DenseLayer is a fully connected layer with trainable weights and biases.
type DenseLayer = nn.DenseLayer

// NewDenseLayer creates a dense layer with numOutputs units.
//
// Example:
//
//	layer := nn.NewDenseLayer(4, nn.Tanh)
func NewDenseLayer(numOutputs int, act Activation) *DenseLayer {
	return nn.NewDenseLayer(numOutputs, act)
}

// OutputLayer is a loss-bearing DenseLayer that terminates a chain.
type OutputLayer = nn.OutputLayer

// NewOutputLayer creates a loss-bearing dense layer with numOutputs units.
func NewOutputLayer(numOutputs int, act Activation, loss Loss) *OutputLayer {
	return nn.NewOutputLayer(numOutputs, act, loss)
}

// SoftmaxLayer is a parameterless loss-bearing probability output layer.
type SoftmaxLayer = nn.SoftmaxLayer

// NewSoftmaxLayer creates a softmax output layer.
func NewSoftmaxLayer(loss Loss) *SoftmaxLayer {
	return nn.NewSoftmaxLayer(loss)
}

// Activations

// Activation is an elementwise activation function paired with its analytic
// derivative.
type Activation = nn.Activation

// The closed set of activation functions.
var (
	Linear    = nn.Linear
	Sign      = nn.Sign
	Step      = nn.Step
	Tanh      = nn.Tanh
	Softsign  = nn.Softsign
	Sigmoid   = nn.Sigmoid
	Softplus  = nn.Softplus
	ReLU      = nn.ReLU
	Swish     = nn.Swish
	Nipuna    = nn.Nipuna
	ELiSH     = nn.ELiSH
	HardELiSH = nn.HardELiSH
)

// ActivationByName looks up an activation function by its registered name,
// returning ErrUnknownFunction for names outside the closed set.
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// ActivationNames returns the registered activation names.
func ActivationNames() []string { return nn.ActivationNames() }

// Losses

// Loss is a per-unit cost function paired with its analytic derivative with
// respect to the prediction.
type Loss = nn.Loss

// The closed set of loss functions.
var (
	SquaredError            = nn.SquaredError
	AbsoluteError           = nn.AbsoluteError
	Hinge                   = nn.Hinge
	BinaryCrossEntropy      = nn.BinaryCrossEntropy
	CategoricalCrossEntropy = nn.CategoricalCrossEntropy
)

// LossByName looks up a loss function by its registered name, returning
// ErrUnknownFunction for names outside the closed set.
func LossByName(name string) (Loss, error) {
	return nn.LossByName(name)
}

// LossNames returns the registered loss names.
func LossNames() []string { return nn.LossNames() }

// Errors

// DimensionError reports a vector whose length disagrees with a layer's
// declared size.
type DimensionError = nn.DimensionError

// Common errors.
var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrChainState        = nn.ErrChainState
	ErrUnknownFunction   = nn.ErrUnknownFunction
	ErrNumeric           = nn.ErrNumeric
)
