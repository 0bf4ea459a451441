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

func TestScanEntity(t *testing.T) {
	tests := []struct {
		in      string
		wantEnd int
		wantOK  bool
	}{
		{"&amp;", 5, true},
		{"&amp; ", 5, true},
		{"&nbsp;rest", 6, true},
		{"&#65;", 5, true},
		{"&#x1F600;", 9, true},
		{"&#X1f600;", 9, true},
		{"&#10FFFF;", 0, false},    // digit run broken by a hex letter in decimal mode
		{"&#x10FFFF;", 10, true},   // 6 hex digits, right at the cap
		{"&#x1100000;", 0, false},  // 7 hex digits exceeds the 6-digit cap
		{"&#1234567;", 10, true},   // 7 decimal digits, right at the cap
		{"&#12345678;", 0, false},  // 8 decimal digits exceeds the 7-digit cap
		{"&notarealentity;", 0, false},
		{"&amp", 0, false},      // missing ';'
		{"& amp;", 0, false},    // space isn't a name character
		{"&#;", 0, false},       // no digits
		{"&#xzz;", 0, false},    // not hex digits
		{"not an entity", 0, false},
	}
	for _, test := range tests {
		end, ok := scanEntity([]byte(test.in), 0)
		if ok != test.wantOK || (ok && end != test.wantEnd) {
			t.Errorf("scanEntity(%q, 0) = (%d, %v); want (%d, %v)", test.in, end, ok, test.wantEnd, test.wantOK)
		}
	}
}

func TestScanEntityNotAmpersand(t *testing.T) {
	_, ok := scanEntity([]byte("amp;"), 0)
	if ok {
		t.Error("scanEntity on text not starting with '&' reported ok")
	}
}
