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

package event

import "sync"

// Wildcard subscribes a handler to every event name.
const Wildcard = "*"

type registration struct {
	id      uint64
	handler EventHandler
}

// EventBus dispatches events synchronously, in publish order, to the handlers
// registered for the event name and to wildcard handlers. Publish calls are
// serialized so handlers never observe two events interleaved; a handler
// must not publish on the bus that invoked it.
type EventBus struct {
	mu       sync.RWMutex
	dispatch sync.Mutex
	nextID   uint64
	handlers map[string][]registration
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]registration),
	}
}

// RegisterHandler adds handler for eventName and returns a function removing it.
func (eb *EventBus) RegisterHandler(eventName string, handler EventHandler) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.nextID++
	id := eb.nextID
	eb.handlers[eventName] = append(eb.handlers[eventName], registration{id: id, handler: handler})

	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		regs := eb.handlers[eventName]
		for i, r := range regs {
			if r.id == id {
				eb.handlers[eventName] = append(regs[:i:i], regs[i+1:]...)
				break
			}
		}
		if len(eb.handlers[eventName]) == 0 {
			delete(eb.handlers, eventName)
		}
	}
}

// Subscribe registers fn for every event.
func (eb *EventBus) Subscribe(fn func(Event)) func() {
	return eb.RegisterHandler(Wildcard, HandlerFunc(fn))
}

func (eb *EventBus) Publish(event Event) {
	eb.dispatch.Lock()
	defer eb.dispatch.Unlock()

	for _, h := range eb.snapshot(event.EventName()) {
		h.Handle(event)
	}
}

// HandlerCount reports how many handlers would receive an event named eventName.
func (eb *EventBus) HandlerCount(eventName string) int {
	return len(eb.snapshot(eventName))
}

func (eb *EventBus) snapshot(eventName string) []EventHandler {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	named := eb.handlers[eventName]
	wild := eb.handlers[Wildcard]
	if eventName == Wildcard {
		wild = nil
	}
	out := make([]EventHandler, 0, len(named)+len(wild))
	for _, r := range named {
		out = append(out, r.handler)
	}
	for _, r := range wild {
		out = append(out, r.handler)
	}
	return out
}
