// Copyright 2025 The Advanced-Datamining Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the single-unit learners: Perceptron, Neuron and
// LinearRegression.
package model

import (
	"github.com/Vincent-Talen/Advanced-Datamining/internal/model"
	"github.com/Vincent-Talen/Advanced-Datamining/internal/nn"
)

// Perceptron is Rosenblatt's binary single-unit classifier.
type Perceptron = model.Perceptron

// PerceptronConfig holds configuration for Perceptron.Fit.
type PerceptronConfig = model.PerceptronConfig

// NewPerceptron creates a perceptron over feature vectors of length dim.
//
// Example:
//
//	p := model.NewPerceptron(2)
//	epochs, _ := p.Fit(xs, ys, model.PerceptronConfig{})
func NewPerceptron(dim int) *Perceptron {
	return model.NewPerceptron(dim)
}

// Neuron is a generalized single-unit model with a pluggable activation and
// loss, trained by gradient descent.
type Neuron = model.Neuron

// FitConfig holds configuration for the gradient-descent learners.
type FitConfig = model.FitConfig

// NewNeuron creates a neuron over feature vectors of length dim.
//
// Example:
//
//	n := model.NewNeuron(2, nn.Sigmoid, nn.BinaryCrossEntropy)
func NewNeuron(dim int, act nn.Activation, loss nn.Loss) *Neuron {
	return model.NewNeuron(dim, act, loss)
}

// LinearRegression is a single unit with the identity activation and squared
// error loss.
type LinearRegression = model.LinearRegression

// NewLinearRegression creates a linear regression unit over feature vectors
// of length dim.
func NewLinearRegression(dim int) *LinearRegression {
	return model.NewLinearRegression(dim)
}
