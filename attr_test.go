// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package md4c

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecomposeText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"backslash escape", `\*not emphasis\*`, "*not emphasis*"},
		{"backslash non-punct untouched", `\Q\n`, `\Q\n`},
		{"named entity", "AT&amp;T", "AT&amp;T"},
		{"numeric entity", "&#65;&#x42;", "&#65;&#x42;"},
		{"bogus ampersand", "Tom & Jerry", "Tom & Jerry"},
		{"nul byte", "a\x00b", "a�b"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := decomposeText([]byte(test.raw))
			if got.Text != test.want {
				t.Errorf("decomposeText(%q).Text = %q; want %q", test.raw, got.Text, test.want)
			}
		})
	}
}

func TestDecomposeTextSubstringTypes(t *testing.T) {
	a := decomposeText([]byte("a&amp;b"))
	want := []Substring{
		{Type: TextNormal, Offset: 0},
		{Type: TextEntity, Offset: 1},
		{Type: TextNormal, Offset: 6},
	}
	if diff := cmp.Diff(want, a.Substrings); diff != "" {
		t.Errorf("decomposeText(%q).Substrings mismatch (-want +got):\n%s", "a&amp;b", diff)
	}
}

func TestDecomposeTextEmpty(t *testing.T) {
	a := decomposeText(nil)
	if !a.IsEmpty() {
		t.Errorf("decomposeText(nil) = %+v; want empty", a)
	}
}
