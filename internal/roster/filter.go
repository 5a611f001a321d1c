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

import "strings"

// Filter returns the members whose name, role or any brand contains query,
// ignoring case. An empty query keeps everything. Input order is preserved
// and members is not modified.
func Filter(members []TeamMember, query string) []TeamMember {
	out := make([]TeamMember, 0, len(members))
	q := strings.ToLower(query)
	for _, m := range members {
		if Matches(m, q) {
			out = append(out, m)
		}
	}
	return out
}

// Matches reports whether m is visible for an already lower-cased query.
func Matches(m TeamMember, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(string(m.Role)), lowerQuery) {
		return true
	}
	for _, b := range m.Brands {
		if strings.Contains(strings.ToLower(b), lowerQuery) {
			return true
		}
	}
	return false
}
