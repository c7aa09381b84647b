package dice

import (
	"math/rand"
	"sync"

	"github.com/louisbranch/dieroller/internal/random"
)

// Source provides random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// LockedSource wraps a *rand.Rand so it can be shared across goroutines.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedSource returns a LockedSource drawing from rng. A nil rng is
// replaced by one seeded from crypto/rand.
func NewLockedSource(rng *rand.Rand) *LockedSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(random.SeedOrClock()))
	}
	return &LockedSource{rng: rng}
}

// Intn returns a random integer in [0, n). It panics if n <= 0.
func (s *LockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// defaultSource is shared by every die built without WithSource.
var defaultSource Source = NewLockedSource(nil)
