package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

/**
 * @file: ulid.go
 * @description: monotonic ulid
 */

// ULIDGenerator produces lexically increasing ULIDs. Monotonic entropy keeps
// ids generated within the same millisecond strictly ordered.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), g.entropy)
	if err != nil {
		// entropy overflow within one millisecond, wait for the clock
		time.Sleep(time.Millisecond)
		id = ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
	}
	return id.String()
}
