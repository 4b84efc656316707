package types

// RandomSource supplies the uniform draws that parameterize randomly generated
// curves. Implementations must return values uniformly distributed over the
// half-open interval [low, high); a seeded implementation must yield the same
// sequence of draws for the same seed.
type RandomSource interface {
	// Float64InRange returns a uniformly distributed value in [low, high).
	// Implementations may panic if high <= low.
	Float64InRange(low float64, high float64) float64
}
