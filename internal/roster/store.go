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
	"slices"
	"sync"

	"github.com/go-arcade/roster/pkg/event"
	"github.com/go-arcade/roster/pkg/id"
	"github.com/go-arcade/roster/pkg/log"
)

// Store owns the roster, the loading flag and the error slot. Every mutation
// is applied atomically under the lock; subscribers are notified afterwards,
// in the order the mutations were applied.
type Store struct {
	// seq spans mutation and notification so subscribers see changes in order
	seq     sync.Mutex
	mu      sync.RWMutex
	members []TeamMember
	loading bool
	err     *string

	ids id.Generator
	bus *event.EventBus
}

// NewStore returns an empty store. A nil generator falls back to ulid and a
// nil bus to a private one.
func NewStore(ids id.Generator, bus *event.EventBus) *Store {
	if ids == nil {
		ids = id.NewULIDGenerator()
	}
	if bus == nil {
		bus = event.NewEventBus()
	}
	return &Store{ids: ids, bus: bus}
}

// AddMember appends d under a freshly generated id and returns that id.
// No field validation happens here.
func (s *Store) AddMember(d Draft) string {
	s.seq.Lock()
	defer s.seq.Unlock()

	s.mu.Lock()
	newID := s.ids.NewID()
	s.members = append(s.members, d.WithID(newID))
	size := len(s.members)
	s.mu.Unlock()

	log.Debugw("roster member added", "id", newID, "name", d.Name)
	s.publish(Change{Op: OpAdd, ID: newID, Applied: true, Size: size})
	return newID
}

// EditMember replaces the entry carrying m.ID wholesale, keeping its position.
// An unknown id is a silent no-op.
func (s *Store) EditMember(m TeamMember) {
	s.seq.Lock()
	defer s.seq.Unlock()

	s.mu.Lock()
	idx := s.indexOf(m.ID)
	if idx >= 0 {
		s.members[idx] = m.Clone()
	}
	size := len(s.members)
	s.mu.Unlock()

	if idx < 0 {
		log.Debugw("roster edit ignored, unknown id", "id", m.ID)
	}
	s.publish(Change{Op: OpEdit, ID: m.ID, Applied: idx >= 0, Size: size})
}

// RemoveMember deletes the entry with the given id, if any.
func (s *Store) RemoveMember(memberID string) {
	s.seq.Lock()
	defer s.seq.Unlock()

	s.mu.Lock()
	before := len(s.members)
	s.members = slices.DeleteFunc(s.members, func(m TeamMember) bool {
		return m.ID == memberID
	})
	size := len(s.members)
	s.mu.Unlock()

	s.publish(Change{Op: OpRemove, ID: memberID, Applied: size != before, Size: size})
}

// ReplaceAll installs members verbatim in the caller's order. Ids are trusted:
// duplicates are not detected.
func (s *Store) ReplaceAll(members []TeamMember) {
	s.seq.Lock()
	defer s.seq.Unlock()

	next := cloneMembers(members)
	s.mu.Lock()
	s.members = next
	size := len(s.members)
	s.mu.Unlock()

	log.Debugw("roster replaced", "size", size)
	s.publish(Change{Op: OpReplace, Applied: true, Size: size})
}

func (s *Store) SetLoading(loading bool) {
	s.seq.Lock()
	defer s.seq.Unlock()

	s.mu.Lock()
	s.loading = loading
	size := len(s.members)
	s.mu.Unlock()

	s.publish(Change{Op: OpLoading, Applied: true, Size: size, Loading: loading})
}

// SetError stores msg, or clears the slot when msg is nil.
func (s *Store) SetError(msg *string) {
	s.seq.Lock()
	defer s.seq.Unlock()

	var stored *string
	if msg != nil {
		v := *msg
		stored = &v
	}
	s.mu.Lock()
	s.err = stored
	size := len(s.members)
	s.mu.Unlock()

	s.publish(Change{Op: OpSetError, Applied: true, Size: size, Err: copyErr(stored)})
}

// Members returns a snapshot of the roster in insertion order.
func (s *Store) Members() []TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMembers(s.members)
}

// Member looks a single entry up by id.
func (s *Store) Member(memberID string) (TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(memberID); idx >= 0 {
		return s.members[idx].Clone(), true
	}
	return TeamMember{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns a copy of the stored message, nil when none is set.
func (s *Store) Error() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyErr(s.err)
}

// Subscribe calls fn after every mutation. The returned func unsubscribes.
// fn may read the store but must not mutate it.
func (s *Store) Subscribe(fn func(Change)) func() {
	return s.bus.Subscribe(func(e event.Event) {
		if c, ok := e.(Change); ok {
			fn(c)
		}
	})
}

func (s *Store) indexOf(memberID string) int {
	return slices.IndexFunc(s.members, func(m TeamMember) bool {
		return m.ID == memberID
	})
}

func (s *Store) publish(c Change) {
	s.bus.Publish(c)
}

func copyErr(msg *string) *string {
	if msg == nil {
		return nil
	}
	v := *msg
	return &v
}
