package cards

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness a Deck draws from. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0,n). n must be positive.
	Intn(n int) int
}

// lockedRand serializes access to a *rand.Rand, which is not safe for
// concurrent use on its own.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

var (
	sharedOnce sync.Once
	shared     *lockedRand
)

// sharedRand returns the process-wide generator, seeding it on first use.
// One generator for the whole process keeps decks built back to back from
// landing on the same clock seed.
func sharedRand() Rand {
	sharedOnce.Do(func() {
		shared = &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
	})
	return shared
}

func coinFlip(r Rand) bool {
	return r.Intn(2) == 0
}
