package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

func TestDerivativeOfSquare(t *testing.T) {
	square := func(x float64) float64 { return x * x }
	prime := Derivative(square, 0)

	// (f(x+d) - f(x-d)) / 2d is exact for polynomials of degree 2.
	for _, x := range []float64{-3, -0.5, 0, 1, 2.5} {
		assert.InDeltaf(t, 2*x, prime(x), 1e-9, "x = %v", x)
	}
}

func TestDerivativeDefaultDelta(t *testing.T) {
	// delta 0 selects DefaultDelta; a custom delta changes the estimate for
	// functions with curvature beyond quadratic.
	cube := func(x float64) float64 { return x * x * x }
	coarse := DerivativeAt(cube, 1, 0)
	fine := DerivativeAt(cube, 1, 1e-6)

	// Centered difference error for x^3 is exactly delta^2.
	assert.InDelta(t, 3+DefaultDelta*DefaultDelta, coarse, 1e-12)
	assert.InDelta(t, 3, fine, 1e-6)
}

func TestDerivativeAgreesWithGonum(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for _, x := range []float64{-2, -1, 0, 0.5, 1.7} {
		ours := DerivativeAt(math.Sin, x, 1e-6)
		theirs := fd.Derivative(math.Sin, x, settings)
		assert.InDeltaf(t, theirs, ours, 1e-9, "x = %v", x)
		assert.InDeltaf(t, math.Cos(x), ours, 1e-6, "x = %v", x)
	}
}

func TestPartialDerivative(t *testing.T) {
	f := func(x, y float64) float64 { return x*x*y + y }
	prime := PartialDerivative(f, 1e-6)

	assert.InDelta(t, 2*3.0*2.0, prime(3, 2), 1e-5) // d/dx = 2xy
	assert.InDelta(t, 0, prime(0, 5), 1e-5)
}
