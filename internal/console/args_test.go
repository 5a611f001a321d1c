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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"list", []string{"list"}},
		{"add  ann\t-r staff", []string{"add", "ann", "-r", "staff"}},
		{`add ann -b "Coffee House"`, []string{"add", "ann", "-b", "Coffee House"}},
		{`search 'urban wear'`, []string{"search", "urban wear"}},
		{`edit 1 -u ""`, []string{"edit", "1", "-u", ""}},
		{`a"b c"d`, []string{"ab cd"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := splitArgs(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitArgs_Unterminated(t *testing.T) {
	_, err := splitArgs(`add "ann`)
	assert.ErrorIs(t, err, errUnterminatedQuote)
}
