package core

// Rand is the random source consumed by the simulation.
// *math/rand.Rand satisfies it; tests supply scripted sequences.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Intn returns a number in [0, n). n must be positive.
	Intn(n int) int
}
