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
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/go-arcade/roster/pkg/log"
)

// DefaultBrand is submitted when the form carries no brand at all.
const DefaultBrand = "Coffee House"

// AvailableBrands is the catalog offered by the brand picker.
var AvailableBrands = []string{
	"Coffee House",
	"Urban Wear",
	"Tech Store",
	"Book Nook",
	"Fitness Club",
	"Food Market",
}

// Writer is the part of the store the edit workflow talks to.
type Writer interface {
	AddMember(d Draft) string
	EditMember(m TeamMember)
}

type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// Form is the transient state of the add/edit dialog.
type Form struct {
	Mode     Mode
	Member   *TeamMember
	Username string   `validate:"required"`
	Role     Role     `validate:"required,oneof=Admin Finance Staff"`
	Brands   []string `validate:"-"`
}

// ToggleBrand selects brand, or deselects it when already selected.
func (f *Form) ToggleBrand(brand string) {
	if i := slices.Index(f.Brands, brand); i >= 0 {
		f.Brands = slices.Delete(slices.Clone(f.Brands), i, i+1)
		return
	}
	f.Brands = append(slices.Clone(f.Brands), brand)
}

// AddCustomBrand selects a free-text brand. Blank input and brands already
// selected are ignored; the return value tells whether anything was added.
func (f *Form) AddCustomBrand(input string) bool {
	brand := strings.TrimSpace(input)
	if brand == "" || slices.Contains(f.Brands, brand) {
		return false
	}
	f.Brands = append(slices.Clone(f.Brands), brand)
	return true
}

func (f *Form) RemoveBrand(brand string) {
	f.Brands = slices.DeleteFunc(slices.Clone(f.Brands), func(b string) bool {
		return b == brand
	})
}

// Editor validates dialog input and turns it into store calls.
type Editor struct {
	store        Writer
	now          func() time.Time
	defaultBrand string
	validate     *validator.Validate
}

type EditorOption func(*Editor)

// WithClock overrides the clock used for DateAdded.
func WithClock(now func() time.Time) EditorOption {
	return func(e *Editor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithDefaultBrand overrides the brand substituted for an empty selection.
func WithDefaultBrand(brand string) EditorOption {
	return func(e *Editor) {
		if b := strings.TrimSpace(brand); b != "" {
			e.defaultBrand = b
		}
	}
}

func NewEditor(store Writer, opts ...EditorOption) *Editor {
	e := &Editor{
		store:        store,
		now:          time.Now,
		defaultBrand: DefaultBrand,
		validate:     validator.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewForm returns an empty add-mode form.
func (e *Editor) NewForm() *Form {
	return &Form{Mode: ModeAdd, Role: RoleAdmin}
}

// EditForm returns an edit-mode form prefilled from m.
func (e *Editor) EditForm(m TeamMember) *Form {
	target := m.Clone()
	return &Form{
		Mode:     ModeEdit,
		Member:   &target,
		Username: m.Name,
		Role:     m.Role,
		Brands:   slices.Clone(m.Brands),
	}
}

// Submit validates f and issues AddMember or EditMember. The returned member
// is the record handed to the store, with the id filled in for adds. Nothing
// reaches the store when validation fails.
func (e *Editor) Submit(f *Form) (TeamMember, error) {
	if err := e.check(f); err != nil {
		log.Debugw("member form rejected", "mode", f.Mode, "error", err)
		return TeamMember{}, err
	}

	brands := slices.Clone(f.Brands)
	if len(brands) == 0 {
		brands = []string{e.defaultBrand}
	}

	if f.Mode == ModeEdit {
		m := f.Member.Clone()
		m.Name = f.Username
		m.FullName = f.Username
		m.Role = f.Role
		m.Brands = brands
		e.store.EditMember(m)
		log.Infow("team member edited", "id", m.ID, "name", m.Name)
		return m, nil
	}

	d := Draft{
		Name:      f.Username,
		FullName:  f.Username,
		Role:      f.Role,
		Brands:    brands,
		Status:    StatusActive,
		DateAdded: e.now().UTC().Format(DateLayout),
		Initial:   InitialOf(f.Username),
	}
	newID := e.store.AddMember(d)
	log.Infow("team member added", "id", newID, "name", d.Name)
	return d.WithID(newID), nil
}

func (e *Editor) check(f *Form) error {
	if f == nil {
		return ErrUsernameRequired
	}
	if f.Mode == ModeEdit && f.Member == nil {
		return ErrMemberRequired
	}
	err := e.validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate member form: %w", err)
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Username":
			return ErrUsernameRequired
		case "Role":
			return fmt.Errorf("%w: %q", ErrInvalidRole, f.Role)
		}
	}
	return fmt.Errorf("validate member form: %w", err)
}
