package nn

import (
	"fmt"
	"math"
)

// Activation is an elementwise activation function paired with its analytic
// derivative. Activations are immutable values with no per-instance state, so
// the same value may be shared by any number of layers.
//
// F maps a pre-activation value to the post-activation value. Prime is the
// derivative dF/da, evaluated at the pre-activation value. Functions with a
// discontinuity (Sign, Step, ReLU at 0) define their derivative as 0 there;
// HardELiSH uses its right-hand branch at the kinks.
type Activation struct {
	Name  string
	F     func(a float64) float64
	Prime func(a float64) float64
}

// String returns the registered name of the activation.
func (act Activation) String() string { return act.Name }

// sigmoidStable is the logistic sigmoid, split into two algebraically
// equivalent forms so exp never overflows for large |a|.
func sigmoidStable(a float64) float64 {
	if a >= 0 {
		return 1.0 / (1.0 + math.Exp(-a))
	}
	ea := math.Exp(a)
	return ea / (1.0 + ea)
}

func swishPrime(a float64) float64 {
	s := sigmoidStable(a)
	return s + a*s*(1.0-s)
}

// The closed set of activation functions.
var (
	// Linear is the identity activation.
	Linear = Activation{
		Name:  "linear",
		F:     func(a float64) float64 { return a },
		Prime: func(a float64) float64 { return 1.0 },
	}

	// Sign is the signum activation, mapping to -1, 0 or 1.
	Sign = Activation{
		Name: "sign",
		F: func(a float64) float64 {
			switch {
			case a > 0:
				return 1.0
			case a < 0:
				return -1.0
			}
			return 0.0
		},
		Prime: func(a float64) float64 { return 0.0 },
	}

	// Step is the Heaviside step activation, mapping to 0 or 1.
	// Step(0) is defined as 0.
	Step = Activation{
		Name: "step",
		F: func(a float64) float64 {
			if a > 0 {
				return 1.0
			}
			return 0.0
		},
		Prime: func(a float64) float64 { return 0.0 },
	}

	// Tanh is the hyperbolic tangent activation.
	Tanh = Activation{
		Name: "tanh",
		F:    math.Tanh,
		Prime: func(a float64) float64 {
			t := math.Tanh(a)
			return 1.0 - t*t
		},
	}

	// Softsign squashes values into (-1, 1) with polynomial tails.
	Softsign = Activation{
		Name: "softsign",
		F:    func(a float64) float64 { return a / (1.0 + math.Abs(a)) },
		Prime: func(a float64) float64 {
			d := 1.0 + math.Abs(a)
			return 1.0 / (d * d)
		},
	}

	// Sigmoid is the logistic sigmoid activation.
	Sigmoid = Activation{
		Name: "sigmoid",
		F:    sigmoidStable,
		Prime: func(a float64) float64 {
			s := sigmoidStable(a)
			return s * (1.0 - s)
		},
	}

	// Softplus is a smooth approximation of ReLU. The forward form
	// log1p(exp(-|a|)) + max(a, 0) avoids overflow for large a.
	Softplus = Activation{
		Name: "softplus",
		F: func(a float64) float64 {
			return math.Log1p(math.Exp(-math.Abs(a))) + math.Max(a, 0.0)
		},
		Prime: sigmoidStable,
	}

	// ReLU is the rectified linear unit.
	ReLU = Activation{
		Name: "relu",
		F:    func(a float64) float64 { return math.Max(0.0, a) },
		Prime: func(a float64) float64 {
			if a > 0 {
				return 1.0
			}
			return 0.0
		},
	}

	// Swish is the sigmoid-weighted linear unit, a * sigmoid(a).
	Swish = Activation{
		Name:  "swish",
		F:     func(a float64) float64 { return a * sigmoidStable(a) },
		Prime: swishPrime,
	}

	// Nipuna equals the identity for a >= 0 and Swish for a < 0.
	Nipuna = Activation{
		Name: "nipuna",
		F: func(a float64) float64 {
			if a >= 0 {
				return a
			}
			return a * sigmoidStable(a)
		},
		Prime: func(a float64) float64 {
			if a >= 0 {
				return 1.0
			}
			return swishPrime(a)
		},
	}

	// ELiSH (Exponential Linear Sigmoid SquasHing) equals Swish for a >= 0
	// and (exp(a)-1) * sigmoid(a) for a < 0.
	ELiSH = Activation{
		Name: "elish",
		F: func(a float64) float64 {
			if a >= 0 {
				return a * sigmoidStable(a)
			}
			ea := math.Exp(a)
			return (ea * (ea - 1.0)) / (1.0 + ea)
		},
		Prime: func(a float64) float64 {
			if a >= 0 {
				return swishPrime(a)
			}
			ea := math.Exp(a)
			s := sigmoidStable(a)
			return ea*s + (ea-1.0)*s*(1.0-s)
		},
	}

	// HardELiSH combines a hard sigmoid with ELU below zero and with the
	// identity above zero.
	HardELiSH = Activation{
		Name: "hardelish",
		F: func(a float64) float64 {
			clip := math.Max(0.0, math.Min(1.0, (a+1.0)/2.0))
			if a >= 0 {
				return a * clip
			}
			return (math.Exp(a) - 1.0) * clip
		},
		Prime: func(a float64) float64 {
			switch {
			case a >= 1:
				return 1.0
			case a >= 0:
				return a + 0.5
			case a > -1:
				return (math.Exp(a)*(a+2.0) - 1.0) / 2.0
			}
			return 0.0
		},
	}
)

// activations indexes the closed activation set by registered name.
var activations = map[string]Activation{
	Linear.Name:    Linear,
	Sign.Name:      Sign,
	Step.Name:      Step,
	Tanh.Name:      Tanh,
	Softsign.Name:  Softsign,
	Sigmoid.Name:   Sigmoid,
	Softplus.Name:  Softplus,
	ReLU.Name:      ReLU,
	Swish.Name:     Swish,
	Nipuna.Name:    Nipuna,
	ELiSH.Name:     ELiSH,
	HardELiSH.Name: HardELiSH,
}

// ActivationByName looks up an activation function by its registered name.
//
// Returns ErrUnknownFunction for names outside the closed set, so a
// misspelled configuration fails fast instead of surfacing later as a nil
// function call.
func ActivationByName(name string) (Activation, error) {
	act, ok := activations[name]
	if !ok {
		return Activation{}, &unknownFunctionError{kind: "activation", name: name}
	}
	return act, nil
}

// ActivationNames returns the registered activation names in map order.
func ActivationNames() []string {
	names := make([]string, 0, len(activations))
	for name := range activations {
		names = append(names, name)
	}
	return names
}

type unknownFunctionError struct {
	kind string
	name string
}

func (e *unknownFunctionError) Error() string {
	return fmt.Sprintf("no %s function registered under %q", e.kind, e.name)
}

func (e *unknownFunctionError) Is(target error) bool {
	return target == ErrUnknownFunction
}
