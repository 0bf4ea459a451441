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
	"html"
	"unicode/utf8"
)

// scanEntity recognizes an HTML entity or numeric character reference
// (https://spec.commonmark.org/0.30/#entity-and-numeric-character-references)
// starting at buf[pos] == '&'. It returns the end offset (just past the
// trailing ';') and ok=true, or pos and ok=false if buf[pos:] isn't a
// valid reference.
//
// There's no named-entity table among the domain dependencies (x/net/html
// keeps its own internal and unexported), so this borrows the standard
// library's html.UnescapeString as an oracle: a candidate "&name;" is a
// real entity exactly when unescaping it decodes the whole candidate to one
// or two runes. A longer result means only a legacy semicolon-less prefix
// was decoded (as "&not" in "&notarealentity;").
func scanEntity(buf []byte, pos int) (end int, ok bool) {
	if pos >= len(buf) || buf[pos] != '&' {
		return pos, false
	}
	i := pos + 1
	if i < len(buf) && buf[i] == '#' {
		i++
		digitsStart := i
		isHex := false
		if i < len(buf) && (buf[i] == 'x' || buf[i] == 'X') {
			isHex = true
			i++
			digitsStart = i
		}
		maxDigits := 7
		if isHex {
			maxDigits = 6
		}
		for i < len(buf) && i-digitsStart < maxDigits {
			c := buf[i]
			if isHex && isASCIIHexDigit(c) || !isHex && isASCIIDigit(c) {
				i++
				continue
			}
			break
		}
		if i == digitsStart || i >= len(buf) || buf[i] != ';' {
			return pos, false
		}
		return i + 1, true
	}

	const maxNameLen = 48
	start := i
	for i < len(buf) && i-start < maxNameLen && isASCIIAlnum(buf[i]) {
		i++
	}
	if i == start || i >= len(buf) || buf[i] != ';' {
		return pos, false
	}
	candidate := string(buf[pos : i+1])
	if u := html.UnescapeString(candidate); u == candidate || utf8.RuneCountInString(u) > 2 {
		return pos, false
	}
	return i + 1, true
}
