package nn

import "math"

// pass carries the per-example state of one forward traversal to the matching
// backward traversal. Every Predict, Loss or training step creates a fresh
// pass, so a network object never holds implicit in-flight example state and
// overlapping examples cannot corrupt each other's cached intermediates.
type pass struct {
	caches      []layerCache
	target      []float64
	forwardDone bool
}

// layerCache records the intermediates one layer must retain between its
// forward and backward steps.
type layerCache struct {
	input         []float64
	preActivation []float64
	output        []float64
}

func newPass(numLayers int, target []float64) *pass {
	return &pass{
		caches: make([]layerCache, numLayers),
		target: target,
	}
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
