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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("finance")
	require.NoError(t, err)
	assert.Equal(t, RoleFinance, r)

	_, err = ParseRole("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" Pending ")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, st)

	_, err = ParseStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRoleDescription(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid())
		assert.NotEmpty(t, r.Description())
	}
	assert.False(t, Role("Owner").Valid())
	assert.Empty(t, Role("Owner").Description())
}

func TestInitialOf(t *testing.T) {
	assert.Equal(t, "j", InitialOf("John.doe"))
	assert.Equal(t, "é", InitialOf("Élodie"))
	assert.Equal(t, "", InitialOf(""))
}

func TestDraftWithID(t *testing.T) {
	d := Draft{Name: "a", Brands: []string{"x"}}

	m := d.WithID("42")
	d.Brands[0] = "changed"

	assert.Equal(t, "42", m.ID)
	assert.Equal(t, []string{"x"}, m.Brands)
}
