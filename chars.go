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
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

func isASCIIDigit(c byte) bool { return '0' <= c && c <= '9' }

func isASCIIAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isASCIIAlnum(c byte) bool { return isASCIIAlpha(c) || isASCIIDigit(c) }

func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// isBlankByte reports whether c is a space or tab; used for checking
// purely ASCII whitespace runs where a line's classification has already
// excluded any other byte.
func isBlankByte(c byte) bool { return c == ' ' || c == '\t' }

// isASCIIWhitespace matches md4c's ISWHITESPACE_: space, tab, newline,
// carriage return, form feed, vertical tab.
func isASCIIWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// asciiPunctTable holds the 32 ASCII punctuation characters CommonMark
// recognizes for backslash-escapes and emphasis flanking, indexed as a
// bitset over the printable ASCII range for O(1) lookup.
var asciiPunctTable [16]uint8

func init() {
	const punct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	for i := 0; i < len(punct); i++ {
		c := punct[i]
		asciiPunctTable[c>>3] |= 1 << (c & 7)
	}
}

func isASCIIPunct(c byte) bool {
	return c < 128 && asciiPunctTable[c>>3]&(1<<(c&7)) != 0
}

// foldWidth narrows fullwidth/halfwidth ASCII-compatible forms (e.g. the
// fullwidth asterisk U+FF0A) to their canonical form before punctuation
// classification, so that CJK-adjacent documents that mix fullwidth
// punctuation still get sensible emphasis-flanking behavior.
func foldWidth(r rune) rune {
	p := width.LookupRune(r)
	if k := p.Kind(); k == width.Fullwidth || k == width.Halfwidth {
		folded := p.Narrow().String()
		if n, size := utf8.DecodeRuneInString(folded); size == len(folded) {
			return n
		}
	}
	return r
}

// isUnicodePunct reports whether r is Unicode punctuation or a symbol, per
// CommonMark's definition of a "punctuation character" used by the
// emphasis flanking rules (spec.md §4.6).
func isUnicodePunct(r rune) bool {
	if r < 128 {
		return isASCIIPunct(byte(r))
	}
	r = foldWidth(r)
	if r < 128 {
		return isASCIIPunct(byte(r))
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// isUnicodeWhitespace reports whether r is Unicode whitespace, per
// CommonMark's definition used by the emphasis flanking rules and by
// COLLAPSE_WHITESPACE.
func isUnicodeWhitespace(r rune) bool {
	if r < 128 {
		return isASCIIWhitespace(byte(r))
	}
	return unicode.IsSpace(r)
}

var foldCaser = cases.Fold()

// foldCase returns the Unicode case-fold of s, used to normalize
// reference-definition labels (spec.md §4.4). The folding is full, not
// simple: one rune may fold to several (e.g. "ß" folds to "ss").
func foldCase(s string) string {
	return foldCaser.String(s)
}

// decodeRune decodes the rune starting at source[i], returning the rune
// and its byte width. Malformed UTF-8 decodes as one byte of
// utf8.RuneError per utf8.DecodeRune's usual contract.
func decodeRune(source []byte, i int) (rune, int) {
	return utf8.DecodeRune(source[i:])
}

// decodeLastRune decodes the rune ending at source[i], returning the rune
// and its byte width.
func decodeLastRune(source []byte, i int) (rune, int) {
	return utf8.DecodeLastRune(source[:i])
}
