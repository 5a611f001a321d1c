package id

import (
	"fmt"
	"sync"

	"github.com/teris-io/shortid"
)

// ShortIDGenerator wraps a dedicated shortid worker.
type ShortIDGenerator struct {
	mu  sync.Mutex
	sid *shortid.Shortid
}

func NewShortIDGenerator() (*ShortIDGenerator, error) {
	sid, err := shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		return nil, fmt.Errorf("init shortid: %w", err)
	}
	return &ShortIDGenerator{sid: sid}, nil
}

func (g *ShortIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sid.MustGenerate()
}
