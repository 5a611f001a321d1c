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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arcade/roster/internal/roster"
	"github.com/go-arcade/roster/pkg/id"
)

func sampleStore() *roster.Store {
	s := roster.NewStore(id.NewTimestampGenerator(nil), nil)
	s.ReplaceAll(roster.SampleMembers())
	return s
}

func TestView_RenderTable(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(sampleStore(), &buf)

	v.Render()

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "john.doe")
	assert.Contains(t, out, "Coffee House, Urban Wear, Tech Store")
	assert.Contains(t, out, "sarah.smith")
	assert.Less(t, strings.Index(out, "john.doe"), strings.Index(out, "sarah.smith"))
}

func TestView_Query(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(sampleStore(), &buf)

	visible := v.SetQuery("finance")
	require.Len(t, visible, 1)
	assert.Equal(t, "sarah.smith", visible[0].Name)
	assert.Equal(t, "finance", v.Query())

	v.Render()
	assert.Contains(t, buf.String(), `Search: "finance" (1 of 2)`)
	assert.NotContains(t, buf.String(), "john.doe")

	buf.Reset()
	v.SetQuery("zzz")
	v.Render()
	assert.Contains(t, buf.String(), emptyMessage)
}

func TestView_QueryMatchesFilterVerbatim(t *testing.T) {
	s := sampleStore()
	v := NewView(s, io.Discard)

	for _, q := range []string{" admin", "admin", "finance ", ""} {
		assert.Equal(t, roster.Filter(s.Members(), q), v.SetQuery(q), "query %q", q)
		assert.Equal(t, q, v.Query())
	}
	assert.Empty(t, v.SetQuery(" admin"))
}

func TestView_LoadingAndError(t *testing.T) {
	s := sampleStore()
	var buf bytes.Buffer
	v := NewView(s, &buf)

	s.SetLoading(true)
	v.Render()
	assert.Equal(t, loadingPlaceholder+"\n", buf.String())

	buf.Reset()
	s.SetLoading(false)
	msg := "directory unavailable"
	s.SetError(&msg)
	v.Render()
	assert.Contains(t, buf.String(), "error: directory unavailable")
	assert.Contains(t, buf.String(), "john.doe")
}

func TestView_LiveRerenders(t *testing.T) {
	s := roster.NewStore(nil, nil)
	var buf bytes.Buffer
	v := NewView(s, &buf)
	stop := v.Live()

	s.SetLoading(true)
	s.ReplaceAll(roster.SampleMembers())
	s.SetLoading(false)
	stop()
	s.RemoveMember("1")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, loadingPlaceholder))
	assert.Equal(t, 1, strings.Count(out, "john.doe"))
}
