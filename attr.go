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
	"bytes"

	"go4.org/bytereplacer"
)

// backslashUnescaper undoes a CommonMark backslash-escape
// (https://spec.commonmark.org/0.30/#backslash-escapes) for each of the 32
// ASCII punctuation characters in a single left-to-right pass. Entities and
// NUL bytes are left alone; those are handled by the second, manual pass in
// buildAttribute since they aren't fixed literal-to-literal substitutions.
var backslashUnescaper = bytereplacer.New(backslashPairs()...)

func backslashPairs() []string {
	const punct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	pairs := make([]string, 0, 2*len(punct))
	for i := 0; i < len(punct); i++ {
		pairs = append(pairs, "\\"+string(punct[i]), string(punct[i]))
	}
	return pairs
}

// buildAttribute decomposes a raw source span into an Attribute (spec.md
// §4.8): backslash-escapes are resolved, entities are recognized and kept
// verbatim as their own TextEntity substring, and NUL bytes are replaced
// with U+FFFD and reported as TextNullChar.
func buildAttribute(source []byte, s span) Attribute {
	if !s.isValid() || s.len() == 0 {
		return Attribute{}
	}
	return decomposeText(s.bytes(source))
}

// decomposeText applies the same backslash/entity/NUL decomposition as
// buildAttribute directly to a byte slice, used both for attribute spans
// and for plain inline text runs (spec.md §4.5) so both share one
// implementation of CommonMark's escaping rules.
func decomposeText(raw []byte) Attribute {
	if len(raw) == 0 {
		return Attribute{}
	}

	if bytes.IndexByte(raw, '\\') < 0 && bytes.IndexByte(raw, '&') < 0 && bytes.IndexByte(raw, 0) < 0 {
		// Fast path: nothing to decompose.
		return Attribute{
			Text:       string(raw),
			Substrings: []Substring{{Type: TextNormal, Offset: 0}},
		}
	}

	unescaped := backslashUnescaper.Replace(bytes.Clone(raw))

	var text bytes.Buffer
	var subs []Substring
	pushType := func(t TextType) {
		if len(subs) == 0 || subs[len(subs)-1].Type != t {
			subs = append(subs, Substring{Type: t, Offset: text.Len()})
		}
	}

	i := 0
	for i < len(unescaped) {
		switch unescaped[i] {
		case 0:
			pushType(TextNullChar)
			text.WriteRune('�')
			i++
		case '&':
			if end, ok := scanEntity(unescaped, i); ok {
				pushType(TextEntity)
				text.Write(unescaped[i:end])
				i = end
				continue
			}
			pushType(TextNormal)
			text.WriteByte('&')
			i++
		default:
			pushType(TextNormal)
			text.WriteByte(unescaped[i])
			i++
		}
	}
	if len(subs) == 0 {
		subs = []Substring{{Type: TextNormal, Offset: 0}}
	}
	return Attribute{Text: text.String(), Substrings: subs}
}
