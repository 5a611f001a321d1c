// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/go-arcade/roster/pkg/log"
	"github.com/go-arcade/roster/pkg/safe"
)

// Source produces a full roster, e.g. a remote directory or sample data.
type Source interface {
	Fetch(ctx context.Context) ([]TeamMember, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]TeamMember, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]TeamMember, error) {
	return f(ctx)
}

// Loader fills the store from a Source, raising the loading flag while the
// fetch is outstanding. Overlapping loads are not serialized: whichever
// resolves last wins.
type Loader struct {
	store  *Store
	source Source
	delay  time.Duration
}

func NewLoader(store *Store, source Source, delay time.Duration) *Loader {
	if delay < 0 {
		delay = 0
	}
	return &Loader{store: store, source: source, delay: delay}
}

// Load waits the configured delay, fetches and installs the result. A failed
// fetch leaves the roster untouched and stores the message in the error slot;
// a successful one clears it. The loading flag is lowered in every case.
func (l *Loader) Load(ctx context.Context) error {
	if l.source == nil {
		return ErrNoSource
	}

	l.store.SetLoading(true)
	defer l.store.SetLoading(false)

	if l.delay > 0 {
		timer := time.NewTimer(l.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	start := time.Now()
	members, err := l.source.Fetch(ctx)
	if err != nil {
		msg := err.Error()
		l.store.SetError(&msg)
		log.Warnw("roster load failed", "error", err)
		return fmt.Errorf("load roster: %w", err)
	}

	l.store.ReplaceAll(members)
	if l.store.Error() != nil {
		l.store.SetError(nil)
	}
	log.Infow("roster loaded", "size", len(members), "fetch", time.Since(start))
	return nil
}

// Start runs Load on its own goroutine. The channel yields the result once
// and is then closed; a panic inside the source is reported as an error.
func (l *Loader) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	safe.Go(func() {
		defer close(done)
		var loadErr error
		if err := safe.Try(func() { loadErr = l.Load(ctx) }); err != nil {
			loadErr = err
		}
		done <- loadErr
	})
	return done
}

// EnsureLoaded loads only when the roster is still empty.
func (l *Loader) EnsureLoaded(ctx context.Context) error {
	if l.store.Len() > 0 {
		return nil
	}
	return l.Load(ctx)
}
