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

import "context"

// SampleMembers is the synthetic roster shown before any real data exists.
func SampleMembers() []TeamMember {
	return []TeamMember{
		{
			ID:        "1",
			Name:      "john.doe",
			FullName:  "john.doe",
			Role:      RoleAdmin,
			Brands:    []string{"Coffee House", "Urban Wear", "Tech Store"},
			Status:    StatusActive,
			DateAdded: "2024-03-15",
			Initial:   "j",
		},
		{
			ID:        "2",
			Name:      "sarah.smith",
			FullName:  "sarah.smith",
			Role:      RoleFinance,
			Brands:    []string{"Coffee House"},
			Status:    StatusActive,
			DateAdded: "2024-03-14",
			Initial:   "s",
		},
	}
}

// SampleSource serves SampleMembers.
var SampleSource Source = SourceFunc(func(ctx context.Context) ([]TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SampleMembers(), nil
})
