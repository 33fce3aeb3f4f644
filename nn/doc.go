// Copyright 2025 The Advanced-Datamining Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layer-chain neural network core.
//
// # Overview
//
// This package contains:
//   - Layers: InputLayer, DenseLayer, OutputLayer, SoftmaxLayer
//   - Activations: Linear, Sign, Step, Tanh, Softsign, Sigmoid, Softplus,
//     ReLU, Swish, Nipuna, ELiSH, HardELiSH
//   - Loss functions: SquaredError, AbsoluteError, Hinge,
//     BinaryCrossEntropy, CategoricalCrossEntropy
//   - Network: the chain container with Add/Predict/Loss/Fit
//
// # Basic Usage
//
//	import "github.com/Vincent-Talen/Advanced-Datamining/nn"
//
//	func main() {
//	    net := nn.NewNetwork(nn.NewInputLayer(2))
//	    _ = net.Add(nn.NewDenseLayer(4, nn.Tanh))
//	    _ = net.Add(nn.NewOutputLayer(1, nn.Sigmoid, nn.BinaryCrossEntropy))
//
//	    losses, _ := net.Fit(xs, ys, nn.FitConfig{LearningRate: 0.1, Epochs: 500})
//	    yhat, _ := net.Predict([]float64{0, 1})
//	    ...
//	}
package nn
