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

// Op names a store mutation.
type Op string

const (
	OpAdd      Op = "add"
	OpEdit     Op = "edit"
	OpRemove   Op = "remove"
	OpReplace  Op = "replace"
	OpLoading  Op = "loading"
	OpSetError Op = "error"
)

// EventType is shared by every event the store publishes.
const EventType = "roster"

// Change is published on the store's event bus after each mutation returns.
type Change struct {
	Op Op
	// ID is the member the mutation targeted, empty for list and flag changes.
	ID string
	// Applied is false when an edit or remove named an unknown id.
	Applied bool
	// Size is the roster length after the mutation.
	Size    int
	Loading bool
	Err     *string
}

func (c Change) EventName() string {
	return EventType + "." + string(c.Op)
}

func (c Change) EventType() string {
	return EventType
}
