// Package main provides the vlearn command, small demos of the learning
// library.
package main

import (
	"fmt"
	"os"

	"github.com/Vincent-Talen/Advanced-Datamining/model"
	"github.com/Vincent-Talen/Advanced-Datamining/nn"
)

const version = "v0.1.0-dev"

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "version":
		fmt.Printf("vlearn %s\n", version)
	case "and":
		runAND()
	case "regress":
		runRegression()
	case "xor":
		runXOR()
	default:
		fmt.Println("vlearn - build and train small neural networks from scratch")
		fmt.Printf("Version: %s\n\n", version)
		fmt.Println("Commands:")
		fmt.Println("  version    Show version")
		fmt.Println("  and        Train a perceptron on the AND gate")
		fmt.Println("  regress    Train a linear regression unit on a synthetic line")
		fmt.Println("  xor        Train a two-layer network on the XOR gate")
	}
}

var gateInputs = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

func runAND() {
	targets := []float64{0, 0, 0, 1}

	p := model.NewPerceptron(2)
	epochs, err := p.Fit(gateInputs, targets, model.PerceptronConfig{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%v fully fitted after %d epochs\n", p, epochs)
	yhats, _ := p.Predict(gateInputs)
	for i, x := range gateInputs {
		fmt.Printf("  %v -> %v (want %v)\n", x, yhats[i], targets[i])
	}
}

func runRegression() {
	// y = 2*x1 - 3*x2 + 1, noise-free
	xs := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}, {3, 2}, {2, 3}}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x[0] - 3*x[1] + 1
	}

	m := model.NewLinearRegression(2)
	losses, err := m.Fit(xs, ys, model.FitConfig{LearningRate: 0.02, Epochs: 2000, Progress: os.Stderr})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%v: mean loss %.6f after %d epochs\n", m, losses[len(losses)-1], len(losses))
	yhats, _ := m.Predict(xs)
	for i, x := range xs {
		fmt.Printf("  %v -> %.3f (want %.0f)\n", x, yhats[i], ys[i])
	}
}

func runXOR() {
	targets := [][]float64{{0}, {1}, {1}, {0}}

	net := nn.NewNetwork(nn.NewInputLayer(2))
	for _, layer := range []nn.Layer{
		nn.NewDenseLayer(4, nn.Tanh),
		nn.NewOutputLayer(1, nn.Sigmoid, nn.BinaryCrossEntropy),
	} {
		if err := net.Add(layer); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	fmt.Println(net)

	losses, err := net.Fit(gateInputs, targets, nn.FitConfig{LearningRate: 0.5, Epochs: 5000, Progress: os.Stderr})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("mean loss %.6f after %d epochs\n", losses[len(losses)-1], len(losses))
	for i, x := range gateInputs {
		yhat, _ := net.Predict(x)
		fmt.Printf("  %v -> %.3f (want %v)\n", x, yhat[0], targets[i][0])
	}
}
