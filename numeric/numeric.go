// Copyright 2025 The Advanced-Datamining Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numeric provides finite-difference differentiation and the pseudo
// logarithm used by the cross-entropy losses.
package numeric

import (
	"github.com/Vincent-Talen/Advanced-Datamining/internal/numeric"
)

// DefaultDelta is the step size used by Derivative when none is given.
const DefaultDelta = numeric.DefaultDelta

// DefaultEpsilon is the cutover point of the pseudo logarithm.
const DefaultEpsilon = numeric.DefaultEpsilon

// Derivative returns the centered finite-difference approximation of f's
// derivative. A delta of 0 selects DefaultDelta.
func Derivative(f func(float64) float64, delta float64) func(float64) float64 {
	return numeric.Derivative(f, delta)
}

// DerivativeAt evaluates the centered finite-difference derivative of f at x.
func DerivativeAt(f func(float64) float64, x, delta float64) float64 {
	return numeric.DerivativeAt(f, x, delta)
}

// PartialDerivative differentiates a two-argument function in its first
// argument.
func PartialDerivative(f func(x, y float64) float64, delta float64) func(x, y float64) float64 {
	return numeric.PartialDerivative(f, delta)
}

// PseudoLog computes log(x) with the asymptotic tail below DefaultEpsilon
// replaced by a steep linear continuation, so it is defined for x <= 0.
func PseudoLog(x float64) float64 { return numeric.PseudoLog(x) }

// PseudoLogEps is PseudoLog with an explicit cutover epsilon.
func PseudoLogEps(x, epsilon float64) float64 { return numeric.PseudoLogEps(x, epsilon) }

// PseudoLogPrime is the derivative of PseudoLog.
func PseudoLogPrime(x float64) float64 { return numeric.PseudoLogPrime(x) }
