package nn

import (
	"math"

	"github.com/Vincent-Talen/Advanced-Datamining/internal/numeric"
)

// Loss is a per-unit cost function paired with its analytic derivative with
// respect to the prediction. Like Activation, Loss values are immutable and
// freely shareable.
//
// F returns the cost of predicting yhat when the target is y. Prime is
// dF/dyhat. Vector-valued outputs reduce by summing the per-unit costs; the
// derivative of that sum with respect to a single prediction is exactly the
// per-unit Prime, which keeps the reported loss value and the propagated
// gradient consistent.
//
// Both cross-entropy losses guard against log(0) with numeric.PseudoLog,
// which swaps the asymptotic tail below a small epsilon for a steep linear
// continuation.
type Loss struct {
	Name  string
	F     func(yhat, y float64) float64
	Prime func(yhat, y float64) float64
}

// String returns the registered name of the loss.
func (l Loss) String() string { return l.Name }

// The closed set of loss functions.
var (
	// SquaredError is (yhat - y)^2.
	SquaredError = Loss{
		Name: "squared_error",
		F: func(yhat, y float64) float64 {
			d := yhat - y
			return d * d
		},
		Prime: func(yhat, y float64) float64 { return 2.0 * (yhat - y) },
	}

	// AbsoluteError is |yhat - y|. Its derivative at yhat == y is defined
	// as 0.
	AbsoluteError = Loss{
		Name: "absolute_error",
		F:    func(yhat, y float64) float64 { return math.Abs(yhat - y) },
		Prime: func(yhat, y float64) float64 {
			switch {
			case yhat > y:
				return 1.0
			case yhat < y:
				return -1.0
			}
			return 0.0
		},
	}

	// Hinge is max(1 - yhat*y, 0), for targets encoded as -1/+1.
	// Its derivative at the hinge point yhat*y == 1 is defined as 0.
	Hinge = Loss{
		Name: "hinge",
		F:    func(yhat, y float64) float64 { return math.Max(1.0-yhat*y, 0.0) },
		Prime: func(yhat, y float64) float64 {
			if 1.0-yhat*y > 0 {
				return -y
			}
			return 0.0
		},
	}

	// BinaryCrossEntropy is -y*log(yhat) - (1-y)*log(1-yhat).
	BinaryCrossEntropy = Loss{
		Name: "binary_crossentropy",
		F: func(yhat, y float64) float64 {
			return -y*numeric.PseudoLog(yhat) - (1.0-y)*numeric.PseudoLog(1.0-yhat)
		},
		Prime: func(yhat, y float64) float64 {
			return -y*numeric.PseudoLogPrime(yhat) + (1.0-y)*numeric.PseudoLogPrime(1.0-yhat)
		},
	}

	// CategoricalCrossEntropy is -y*log(yhat), for one-hot encoded targets.
	CategoricalCrossEntropy = Loss{
		Name: "categorical_crossentropy",
		F: func(yhat, y float64) float64 {
			return -y * numeric.PseudoLog(yhat)
		},
		Prime: func(yhat, y float64) float64 {
			return -y * numeric.PseudoLogPrime(yhat)
		},
	}
)

// losses indexes the closed loss set by registered name.
var losses = map[string]Loss{
	SquaredError.Name:            SquaredError,
	AbsoluteError.Name:           AbsoluteError,
	Hinge.Name:                   Hinge,
	BinaryCrossEntropy.Name:      BinaryCrossEntropy,
	CategoricalCrossEntropy.Name: CategoricalCrossEntropy,
}

// LossByName looks up a loss function by its registered name.
//
// Returns ErrUnknownFunction for names outside the closed set.
func LossByName(name string) (Loss, error) {
	l, ok := losses[name]
	if !ok {
		return Loss{}, &unknownFunctionError{kind: "loss", name: name}
	}
	return l, nil
}

// LossNames returns the registered loss names in map order.
func LossNames() []string {
	names := make([]string, 0, len(losses))
	for name := range losses {
		names = append(names, name)
	}
	return names
}
