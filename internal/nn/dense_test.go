package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildUnit assembles Input(2) -> Output(2, act, loss) with fixed parameters.
func buildUnit(t *testing.T, act Activation, loss Loss) (*Network, *OutputLayer) {
	t.Helper()
	out := NewOutputLayer(2, act, loss)
	net := NewNetwork(NewInputLayer(2))
	require.NoError(t, net.Add(out))
	require.NoError(t, out.SetParameters(
		[][]float64{{0.3, -0.5}, {0.8, 0.1}},
		[]float64{0.1, -0.2},
	))
	return net, out
}

func TestDenseForwardMath(t *testing.T) {
	net, _ := buildUnit(t, Linear, SquaredError)

	got, err := net.Predict([]float64{1, 2})
	require.NoError(t, err)

	// pre_0 = 0.1 + 0.3*1 - 0.5*2 = -0.6
	// pre_1 = -0.2 + 0.8*1 + 0.1*2 = 0.8
	assert.InDelta(t, -0.6, got[0], 1e-12)
	assert.InDelta(t, 0.8, got[1], 1e-12)
}

func TestDenseForwardAppliesActivation(t *testing.T) {
	net, _ := buildUnit(t, Sigmoid, SquaredError)

	got, err := net.Predict([]float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, Sigmoid.F(-0.6), got[0], 1e-12)
	assert.InDelta(t, Sigmoid.F(0.8), got[1], 1e-12)
}

func TestDenseForwardDimensionMismatch(t *testing.T) {
	net, _ := buildUnit(t, Linear, SquaredError)

	_, err := net.Predict([]float64{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 2, dimErr.Want)
	assert.Equal(t, 3, dimErr.Got)
}

func TestPredictIsIdempotent(t *testing.T) {
	net, out := buildUnit(t, Tanh, SquaredError)

	first, err := net.Predict([]float64{0.4, -1.2})
	require.NoError(t, err)
	second, err := net.Predict([]float64{0.4, -1.2})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Forward-only calls must not move parameters.
	assert.Equal(t, []float64{0.3, -0.5}, out.Weights().RawRowView(0))
	assert.Equal(t, []float64{0.1, -0.2}, out.Biases())
}

// TestDenseWeightGradientCheck verifies the analytic backward gradient for
// every weight and bias against a centered finite difference of the loss.
func TestDenseWeightGradientCheck(t *testing.T) {
	const (
		lr = 0.1
		h  = 1e-5
	)
	x := []float64{0.7, -0.3}
	target := []float64{1, 0}

	for _, tc := range []struct {
		name string
		act  Activation
		loss Loss
	}{
		{"linear_squared", Linear, SquaredError},
		{"sigmoid_squared", Sigmoid, SquaredError},
		{"tanh_squared", Tanh, SquaredError},
		{"sigmoid_bce", Sigmoid, BinaryCrossEntropy},
	} {
		t.Run(tc.name, func(t *testing.T) {
			net, out := buildUnit(t, tc.act, tc.loss)

			// Numeric gradient per weight via loss perturbation. Loss is
			// forward-only, so the parameters stay untouched between probes.
			numGradW := [2][2]float64{}
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					orig := out.Weights().At(j, i)
					out.Weights().Set(j, i, orig+h)
					up, err := net.Loss(x, target)
					require.NoError(t, err)
					out.Weights().Set(j, i, orig-h)
					down, err := net.Loss(x, target)
					require.NoError(t, err)
					out.Weights().Set(j, i, orig)
					numGradW[j][i] = (up - down) / (2 * h)
				}
			}
			numGradB := [2]float64{}
			for j := 0; j < 2; j++ {
				orig := out.Biases()[j]
				out.Biases()[j] = orig + h
				up, err := net.Loss(x, target)
				require.NoError(t, err)
				out.Biases()[j] = orig - h
				down, err := net.Loss(x, target)
				require.NoError(t, err)
				out.Biases()[j] = orig
				numGradB[j] = (up - down) / (2 * h)
			}

			// One training step; the analytic gradient is recovered from the
			// parameter delta divided by the learning rate.
			before := mat2x2(out)
			biasBefore := [2]float64{out.Biases()[0], out.Biases()[1]}
			_, err := net.Fit([][]float64{x}, [][]float64{target}, FitConfig{LearningRate: lr, Epochs: 1})
			require.NoError(t, err)

			after := mat2x2(out)
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					analytic := (before[j][i] - after[j][i]) / lr
					assert.InDeltaf(t, numGradW[j][i], analytic, 1e-4, "weight[%d][%d]", j, i)
				}
				analyticBias := (biasBefore[j] - out.Biases()[j]) / lr
				assert.InDeltaf(t, numGradB[j], analyticBias, 1e-4, "bias[%d]", j)
			}
		})
	}
}

func mat2x2(out *OutputLayer) [2][2]float64 {
	var m [2][2]float64
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			m[j][i] = out.Weights().At(j, i)
		}
	}
	return m
}

func TestSetParametersValidatesShapes(t *testing.T) {
	_, out := buildUnit(t, Linear, SquaredError)

	err := out.SetParameters([][]float64{{1, 2}}, []float64{0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	err = out.SetParameters([][]float64{{1}, {2}}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	unattached := NewDenseLayer(2, Linear)
	err = unattached.SetParameters([][]float64{{1}, {2}}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrChainState)
}

func TestDenseNumericOverflowDetected(t *testing.T) {
	net, out := buildUnit(t, Linear, SquaredError)
	require.NoError(t, out.SetParameters(
		[][]float64{{math.MaxFloat64, math.MaxFloat64}, {0, 0}},
		[]float64{0, 0},
	))

	_, err := net.Predict([]float64{math.MaxFloat64, math.MaxFloat64})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNumeric)
}
