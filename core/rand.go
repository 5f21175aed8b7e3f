package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness capability the core needs: a uniform integer in
// [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// newRand returns a fresh time-seeded source. Used whenever a caller passes
// nil for an optional Rand parameter; the core never stores a global default.
func newRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
