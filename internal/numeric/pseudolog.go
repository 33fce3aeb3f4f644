package numeric

import "math"

// DefaultEpsilon is the point below which PseudoLog swaps the logarithm's
// asymptotic tail for a linear continuation.
const DefaultEpsilon = 1e-4

// PseudoLog is PseudoLogEps with DefaultEpsilon.
func PseudoLog(x float64) float64 {
	return PseudoLogEps(x, DefaultEpsilon)
}

// PseudoLogEps computes the natural logarithm of x, except that below epsilon
// the asymptotic tail is replaced by the steep tangent line at epsilon:
//
//	log(epsilon) + (x-epsilon)/epsilon
//
// The replacement keeps the function (and its first derivative) continuous at
// epsilon and defined for x <= 0, so loss functions built on it never produce
// -Inf or NaN for predictions that graze or cross zero.
func PseudoLogEps(x, epsilon float64) float64 {
	if x < epsilon {
		return math.Log(epsilon) + (x-epsilon)/epsilon
	}
	return math.Log(x)
}

// PseudoLogPrime is the derivative of PseudoLog: 1/x above the epsilon
// cutover and the constant tail slope 1/epsilon below it.
func PseudoLogPrime(x float64) float64 {
	return PseudoLogPrimeEps(x, DefaultEpsilon)
}

// PseudoLogPrimeEps is the derivative of PseudoLogEps.
func PseudoLogPrimeEps(x, epsilon float64) float64 {
	if x < epsilon {
		return 1.0 / epsilon
	}
	return 1.0 / x
}
