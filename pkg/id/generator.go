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

package id

import (
	"fmt"
	"strings"
)

// Strategy names accepted by NewGenerator.
const (
	StrategyULID      = "ulid"
	StrategyUUID      = "uuid"
	StrategyShortID   = "shortid"
	StrategyTimestamp = "timestamp"
	StrategyXID       = "xid"
)

// Generator hands out identifiers. Implementations must never return the same
// value twice within one process.
type Generator interface {
	NewID() string
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() string

func (f GeneratorFunc) NewID() string {
	return f()
}

// NewGenerator returns the generator registered under strategy.
// An empty strategy selects ulid.
func NewGenerator(strategy string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyULID:
		return NewULIDGenerator(), nil
	case StrategyUUID:
		return GeneratorFunc(GetUUID), nil
	case StrategyShortID:
		return NewShortIDGenerator()
	case StrategyTimestamp:
		return NewTimestampGenerator(nil), nil
	case StrategyXID:
		return GeneratorFunc(GetXid), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
