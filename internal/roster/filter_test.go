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
)

func TestFilter(t *testing.T) {
	members := []TeamMember{
		{ID: "1", Name: "john.doe", Role: RoleAdmin, Brands: []string{"Coffee House"}},
		{ID: "2", Name: "sarah.smith", Role: RoleFinance, Brands: []string{"Coffee House"}},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "brand match ignores case", query: "coffee", want: []string{"1", "2"}},
		{name: "role match", query: "admin", want: []string{"1"}},
		{name: "name match", query: "SARAH", want: []string{"2"}},
		{name: "no match", query: "zzz", want: []string{}},
		{name: "empty query keeps order", query: "", want: []string{"1", "2"}},
		{name: "substring inside name", query: "n.d", want: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(members, tt.query)
			ids := make([]string, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_DoesNotTouchInput(t *testing.T) {
	members := SampleMembers()
	before := SampleMembers()

	_ = Filter(members, "finance")
	_ = Filter(members, "")

	assert.Equal(t, before, members)
}

func TestFilter_AnyBrand(t *testing.T) {
	members := SampleMembers()

	got := Filter(members, "tech")

	assert.Len(t, got, 1)
	assert.Equal(t, "john.doe", got[0].Name)
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, "x"))
	assert.NotNil(t, Filter(nil, ""))
}
