package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// xavierDense allocates a (numOutputs x numInputs) weight matrix initialized
// with the normalized Xavier/Glorot uniform distribution:
//
//	U(-sqrt(6/(fan_in+fan_out)), +sqrt(6/(fan_in+fan_out)))
//
// which keeps activation variance roughly constant across layers.
func xavierDense(numInputs, numOutputs int) *mat.Dense {
	limit := math.Sqrt(6.0 / float64(numInputs+numOutputs))
	data := make([]float64, numOutputs*numInputs)
	for i := range data {
		data[i] = (rand.Float64()*2.0 - 1.0) * limit
	}
	return mat.NewDense(numOutputs, numInputs, data)
}
