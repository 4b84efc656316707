package types

// Evaluator is the contract shared by every one-dimensional curve in the
// system: a pure mapping from a point in time to a value in [0, 1].
type Evaluator interface {
	// Evaluate returns the curve's value at time t. Implementations must be
	// deterministic and safe for concurrent use.
	Evaluate(t float64) float64
}

// VectorEvaluator is the multi-dimensional counterpart of Evaluator. Each call
// yields one value per dimension, all sampled at the same instant.
type VectorEvaluator interface {
	// Evaluate returns one value in [0, 1] per dimension at time t.
	Evaluate(t float64) []float64

	// Dims reports the number of dimensions produced by Evaluate.
	Dims() int
}
