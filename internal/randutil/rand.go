package randutil

import (
	"math/rand"
	"time"
)

// New returns a *rand.Rand seeded from the provided int64, or from the
// wall clock when seed is zero. The helper centralises seeding so that
// every call site derives reproducible sequences the same way.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
