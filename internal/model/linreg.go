package model

import (
	"fmt"

	"github.com/Vincent-Talen/Advanced-Datamining/internal/nn"
)

// LinearRegression is a single unit with the identity activation and squared
// error loss: the perceptron adapted to predict numbers instead of classes.
// Because raw error values can be large, updates are scaled by the learning
// rate so the model converges instead of overshooting.
type LinearRegression struct {
	dim int
	net *nn.Network
	out *nn.OutputLayer
}

// NewLinearRegression creates a linear regression unit over feature vectors
// of length dim. Weights and bias start at zero.
func NewLinearRegression(dim int) *LinearRegression {
	out := nn.NewOutputLayer(1, nn.Linear, nn.SquaredError)
	net := nn.NewNetwork(nn.NewInputLayer(dim))
	if err := net.Add(out); err != nil {
		panic(err) // unreachable: the layer is freshly constructed
	}
	zeroParameters(out)
	return &LinearRegression{dim: dim, net: net, out: out}
}

// String renders the model for debugging.
func (m *LinearRegression) String() string {
	return fmt.Sprintf("LinearRegression(dim=%d)", m.dim)
}

// Predict returns the predicted value for each input vector without mutating
// parameters.
func (m *LinearRegression) Predict(xs [][]float64) ([]float64, error) {
	return predictScalars(m.net, xs)
}

// Fit trains the unit with per-example gradient descent in caller order and
// returns the mean loss of each epoch.
func (m *LinearRegression) Fit(xs [][]float64, ys []float64, cfg FitConfig) ([]float64, error) {
	return fitScalars(m.net, xs, ys, cfg, 0.01)
}
