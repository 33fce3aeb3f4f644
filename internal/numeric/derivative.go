// Package numeric provides the small numerical helpers shared by the
// learning code: finite-difference differentiation and an overflow-safe
// pseudo logarithm.
package numeric

// DefaultDelta is the step size used by Derivative when none is given.
const DefaultDelta = 0.01

// Derivative returns the centered finite-difference approximation of f's
// derivative:
//
//	f'(x) ≈ (f(x+delta) - f(x-delta)) / (2*delta)
//
// A delta of 0 selects DefaultDelta. The returned function is a numerical
// fallback for when no analytic derivative is available, and is used by the
// tests to cross-check the analytic ones; it is never on a training hot path.
func Derivative(f func(float64) float64, delta float64) func(float64) float64 {
	if delta == 0 {
		delta = DefaultDelta
	}
	return func(x float64) float64 {
		return (f(x+delta) - f(x-delta)) / (2.0 * delta)
	}
}

// DerivativeAt evaluates the centered finite-difference derivative of f at x.
func DerivativeAt(f func(float64) float64, x, delta float64) float64 {
	return Derivative(f, delta)(x)
}

// PartialDerivative returns the centered finite-difference approximation of
// the derivative of a two-argument function in its first argument, with the
// second argument held fixed. Used to cross-check loss derivatives, which are
// taken with respect to the prediction only.
func PartialDerivative(f func(x, y float64) float64, delta float64) func(x, y float64) float64 {
	if delta == 0 {
		delta = DefaultDelta
	}
	return func(x, y float64) float64 {
		return (f(x+delta, y) - f(x-delta, y)) / (2.0 * delta)
	}
}
