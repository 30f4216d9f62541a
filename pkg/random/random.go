// Package random holds the randomness collaborator shared by the wheel and
// the range randomizer. Everything takes a Source so tests can pin draws.
package random

import (
	"math/rand"
	"time"
)

// Source is a uniform random source. The default is math/rand; tests
// substitute a scripted source.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform integer in [0, n). Panics when n <= 0.
	Intn(n int) int
}

// Default returns a time-seeded source.
func Default() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Seeded returns a deterministic source, mostly for tests and demos.
func Seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
