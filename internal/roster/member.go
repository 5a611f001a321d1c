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
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DateLayout is the textual form of TeamMember.DateAdded.
const DateLayout = "2006-01-02"

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleFinance Role = "Finance"
	RoleStaff   Role = "Staff"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAdmin, RoleFinance, RoleStaff}

func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

// Description is the one-line summary shown next to the role picker.
func (r Role) Description() string {
	switch r {
	case RoleAdmin:
		return "Full control over all features and settings"
	case RoleFinance:
		return "Manage wallet and finances"
	case RoleStaff:
		return "All tasks except wallet management"
	default:
		return ""
	}
}

// ParseRole matches s case-insensitively against the known roles.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusPending  Status = "Pending"
)

var Statuses = []Status{StatusActive, StatusInactive, StatusPending}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// ParseStatus matches s case-insensitively against the known statuses.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// TeamMember is one roster entry.
type TeamMember struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	FullName  string   `json:"fullName"`
	Role      Role     `json:"role"`
	Brands    []string `json:"brands"`
	Status    Status   `json:"status"`
	DateAdded string   `json:"dateAdded"`
	Initial   string   `json:"initial"`
}

// Draft is a member that has not been assigned an id yet.
type Draft struct {
	Name      string   `json:"name"`
	FullName  string   `json:"fullName"`
	Role      Role     `json:"role"`
	Brands    []string `json:"brands"`
	Status    Status   `json:"status"`
	DateAdded string   `json:"dateAdded"`
	Initial   string   `json:"initial"`
}

// WithID materializes the draft under the given id.
func (d Draft) WithID(id string) TeamMember {
	return TeamMember{
		ID:        id,
		Name:      d.Name,
		FullName:  d.FullName,
		Role:      d.Role,
		Brands:    slices.Clone(d.Brands),
		Status:    d.Status,
		DateAdded: d.DateAdded,
		Initial:   d.Initial,
	}
}

// Clone returns a copy that shares no memory with m.
func (m TeamMember) Clone() TeamMember {
	m.Brands = slices.Clone(m.Brands)
	return m
}

// InitialOf is the display glyph for a username: its first character, lower-cased.
func InitialOf(username string) string {
	r, size := utf8.DecodeRuneInString(username)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToLower(r))
}

func cloneMembers(in []TeamMember) []TeamMember {
	if in == nil {
		return nil
	}
	out := make([]TeamMember, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}
