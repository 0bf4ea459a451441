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

import "testing"

func TestScanBracketedAutolink(t *testing.T) {
	tests := []struct {
		in        string
		wantEnd   int
		wantEmail bool
		wantOK    bool
	}{
		{"<http://example.com>", 20, false, true},
		{"<foo@example.com>", 17, true, true},
		{"<not a scheme>", 0, false, false},
		{"<>", 0, false, false},
		{"no brackets here", 0, false, false},
	}
	for _, test := range tests {
		end, isEmail, ok := scanBracketedAutolink([]byte(test.in), 0)
		if ok != test.wantOK || (ok && (end != test.wantEnd || isEmail != test.wantEmail)) {
			t.Errorf("scanBracketedAutolink(%q, 0) = (%d, %v, %v); want (%d, %v, %v)",
				test.in, end, isEmail, ok, test.wantEnd, test.wantEmail, test.wantOK)
		}
	}
}

func TestScanPermissiveURL(t *testing.T) {
	tests := []struct {
		in      string
		wantEnd int
		wantOK  bool
	}{
		{"http://example.com", 18, true},
		{"https://example.com/path?q=1", 28, true},
		{"http://example.com.", 18, true},          // trailing '.' trimmed
		{"http://example.com).", 18, true},         // unbalanced ')' (and what follows) dropped
		{"ftp://example.com", 17, true},
		{"gopher://example.com", 0, false},
		{"http://example.com/(parens)", 27, true}, // balanced parens kept
	}
	for _, test := range tests {
		end, ok := scanPermissiveURL([]byte(test.in), 0)
		if ok != test.wantOK || (ok && end != test.wantEnd) {
			t.Errorf("scanPermissiveURL(%q, 0) = (%d, %v); want (%d, %v)", test.in, end, ok, test.wantEnd, test.wantOK)
		}
	}
}

func TestScanPermissiveWWW(t *testing.T) {
	end, ok := scanPermissiveWWW([]byte("www.example.com"), 0)
	if !ok || end != len("www.example.com") {
		t.Errorf("scanPermissiveWWW(%q, 0) = (%d, %v); want (%d, true)", "www.example.com", end, ok, len("www.example.com"))
	}
	if _, ok := scanPermissiveWWW([]byte("notwww.example.com"), 3); ok {
		// "www." prefix check is on the caller-supplied position only.
	}
}

func TestScanPermissiveEmail(t *testing.T) {
	s := "contact jane@example.com today"
	at := indexByteFromBytes([]byte(s), '@', 0)
	start, end, ok := scanPermissiveEmail([]byte(s), at)
	if !ok {
		t.Fatalf("scanPermissiveEmail(%q, %d) ok = false; want true", s, at)
	}
	got := s[start:end]
	want := "jane@example.com"
	if got != want {
		t.Errorf("scanPermissiveEmail(%q, %d) = %q; want %q", s, at, got, want)
	}
}

func TestIsEmailAddress(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"foo@bar.com", true},
		{"foo.bar@baz.qux.com", true},
		{"@bar.com", false},
		{"foo@", false},
		{"foo@-bar.com", false},
		{"foo@bar-.com", false},
	}
	for _, test := range tests {
		if got := isEmailAddress([]byte(test.in)); got != test.want {
			t.Errorf("isEmailAddress(%q) = %v; want %v", test.in, got, test.want)
		}
	}
}
