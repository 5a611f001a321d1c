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

package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/go-arcade/roster/internal/roster"
)

const (
	loadingPlaceholder = "Loading team members..."
	emptyMessage       = "No team members found"
)

// View renders the filtered roster as a table. It owns the search query;
// the store knows nothing about filtering.
type View struct {
	store *roster.Store

	mu    sync.Mutex
	out   io.Writer
	query string
}

func NewView(store *roster.Store, out io.Writer) *View {
	return &View{store: store, out: out}
}

// SetQuery replaces the free-text search and returns the visible members.
// The query is matched verbatim, surrounding spaces included.
func (v *View) SetQuery(q string) []roster.TeamMember {
	v.mu.Lock()
	v.query = q
	v.mu.Unlock()
	return v.Visible()
}

func (v *View) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// Visible is the projection of the current store snapshot through the query.
func (v *View) Visible() []roster.TeamMember {
	return roster.Filter(v.store.Members(), v.Query())
}

// Live makes the view re-render after every store mutation. The returned
// func stops it.
func (v *View) Live() func() {
	return v.store.Subscribe(func(c roster.Change) {
		// one placeholder per load
		if c.Op != roster.OpLoading && v.store.Loading() {
			return
		}
		v.Render()
	})
}

// Render writes the placeholder while loading, the error if one is stored,
// and otherwise the filtered table.
func (v *View) Render() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.store.Loading() {
		fmt.Fprintln(v.out, loadingPlaceholder)
		return
	}
	if msg := v.store.Error(); msg != nil {
		fmt.Fprintf(v.out, "error: %s\n", *msg)
	}

	members := roster.Filter(v.store.Members(), v.query)
	if v.query != "" {
		fmt.Fprintf(v.out, "Search: %q (%d of %d)\n", v.query, len(members), v.store.Len())
	}
	WriteTable(v.out, members)
}

// WriteTable prints members as an aligned table, or a notice when empty.
func WriteTable(out io.Writer, members []roster.TeamMember) {
	if len(members) == 0 {
		fmt.Fprintln(out, emptyMessage)
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tROLE\tBRANDS\tSTATUS\tDATE ADDED\tID")
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			strings.ToUpper(m.Initial), m.Name, m.Role, strings.Join(m.Brands, ", "),
			m.Status, m.DateAdded, m.ID)
	}
	_ = tw.Flush()
}
