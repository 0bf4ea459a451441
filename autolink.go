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

// scanBracketedAutolink recognizes a CommonMark <scheme:...> or
// <email@addr> autolink starting at buf[pos] == '<'. It returns the end
// offset (just past the closing '>') and whether the content is an email
// address (so the renderer can prepend "mailto:").
func scanBracketedAutolink(buf []byte, pos int) (end int, isEmail bool, ok bool) {
	if pos >= len(buf) || buf[pos] != '<' {
		return pos, false, false
	}
	i := pos + 1
	start := i
	for i < len(buf) && buf[i] != '>' && buf[i] != '<' && !isASCIIWhitespace(buf[i]) {
		i++
	}
	if i >= len(buf) || buf[i] != '>' {
		return pos, false, false
	}
	inner := buf[start:i]
	if isSchemeURI(inner) {
		return i + 1, false, true
	}
	if isEmailAddress(inner) {
		return i + 1, true, true
	}
	return pos, false, false
}

// isSchemeURI reports whether s is "scheme:rest" where scheme is 2-32
// ASCII letters/digits/+/-/. starting with a letter, per
// https://spec.commonmark.org/0.30/#absolute-uri.
func isSchemeURI(s []byte) bool {
	i := 0
	if i >= len(s) || !isASCIIAlpha(s[i]) {
		return false
	}
	i++
	for i < len(s) && i <= 32 && (isASCIIAlnum(s[i]) || s[i] == '+' || s[i] == '-' || s[i] == '.') {
		i++
	}
	if i < 2 || i > 32 || i >= len(s) || s[i] != ':' {
		return false
	}
	rest := s[i+1:]
	for _, c := range rest {
		if isASCIIWhitespace(c) || c == '<' || c == '>' {
			return false
		}
	}
	return true
}

// isEmailAddress reports whether s matches CommonMark's restricted
// [email address] autolink grammar.
//
// [email address]: https://spec.commonmark.org/0.30/#email-address
func isEmailAddress(s []byte) bool {
	at := -1
	for i, c := range s {
		if c == '@' {
			at = i
			break
		}
	}
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local := s[:at]
	for _, c := range local {
		if !(isASCIIAlnum(c) || isASCIIEmailAtomChar(c)) {
			return false
		}
	}
	domain := s[at+1:]
	labels := splitByte(domain, '.')
	if len(labels) == 0 {
		return false
	}
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			if !(isASCIIAlnum(c) || c == '-') {
				return false
			}
		}
	}
	return true
}

func isASCIIEmailAtomChar(c byte) bool {
	switch c {
	case '.', '!', '#', '$', '%', '&', '\'', '*', '+', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~', '-':
		return true
	}
	return false
}

func splitByte(b []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == sep {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	out = append(out, b[start:])
	return out
}

// permissiveSchemes lists the schemes md4c recognizes for
// FlagPermissiveURLAutolinks.
var permissiveSchemes = []string{"http://", "https://", "ftp://"}

// scanPermissiveURL recognizes a bare "http://...", "https://..." or
// "ftp://..." run at buf[pos:], trimming trailing punctuation that's
// almost certainly not part of the URL (closing brackets, sentence
// punctuation), per the GFM extended autolink heuristics.
func scanPermissiveURL(buf []byte, pos int) (end int, ok bool) {
	var schemeLen int
	for _, scheme := range permissiveSchemes {
		if hasBytePrefix(buf[pos:], scheme) {
			schemeLen = len(scheme)
			break
		}
	}
	if schemeLen == 0 {
		return pos, false
	}
	i := pos + schemeLen
	start := i
	depth := 0
	for i < len(buf) {
		c := buf[i]
		if isASCIIWhitespace(c) || c == '<' {
			break
		}
		switch c {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				goto trim
			}
			depth--
		}
		i++
	}
trim:
	if i == start {
		return pos, false
	}
	for i > start {
		switch buf[i-1] {
		case '?', '!', '.', ',', ':', '*', '_', '~':
			i--
			continue
		case ';':
			i--
			continue
		}
		break
	}
	if i == start {
		return pos, false
	}
	return i, true
}

// scanPermissiveWWW recognizes a bare "www." run at buf[pos:] for
// FlagPermissiveWWWAutolinks. The caller is responsible for checking that
// pos is preceded by whitespace, punctuation or start-of-text.
func scanPermissiveWWW(buf []byte, pos int) (end int, ok bool) {
	if !hasCaseInsensitiveBytePrefix(buf[pos:], "www.") {
		return pos, false
	}
	const fakeScheme = "http://"
	tmp := append([]byte(fakeScheme), buf[pos:]...)
	tmpEnd, tmpOK := scanPermissiveURL(tmp, 0)
	if !tmpOK {
		return pos, false
	}
	return pos + (tmpEnd - len(fakeScheme)), true
}

// scanPermissiveEmail recognizes a bare email address around an '@' byte
// at buf[at] for FlagPermissiveEmailAutolinks, scanning outward for the
// local-part and domain.
func scanPermissiveEmail(buf []byte, at int) (start, end int, ok bool) {
	if at >= len(buf) || buf[at] != '@' {
		return at, at, false
	}
	start = at
	for start > 0 && isPermissiveEmailLocalChar(buf[start-1]) {
		start--
	}
	if start == at {
		return at, at, false
	}
	end = at + 1
	lastDot := -1
	for end < len(buf) && (isASCIIAlnum(buf[end]) || buf[end] == '-' || buf[end] == '.') {
		if buf[end] == '.' {
			lastDot = end
		}
		end++
	}
	if lastDot < 0 {
		return at, at, false
	}
	for end > at+1 && (buf[end-1] == '-' || buf[end-1] == '.') {
		end--
	}
	if !isEmailAddress(buf[start:end]) {
		return at, at, false
	}
	return start, end, true
}

func isPermissiveEmailLocalChar(c byte) bool {
	return isASCIIAlnum(c) || isASCIIEmailAtomChar(c)
}
