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

// Single-line recognizers for block starts. Each assumes the caller has
// already stripped leading indentation via lineCursor.bytesAfterIndent.

func isSpaceTabOrLineEnding(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// parseThematicBreak returns the end of the thematic-break run, or -1 if
// line is not a thematic break.
func parseThematicBreak(line []byte) (end int) {
	n := 0
	var want byte
	for i, b := range line {
		switch b {
		case '-', '_', '*':
			if n == 0 {
				want = b
			} else if b != want {
				return -1
			}
			n++
			end = i + 1
		case ' ', '\t', '\r', '\n':
		default:
			return -1
		}
	}
	if n < 3 {
		return -1
	}
	return end
}

type atxHeading struct {
	level   uint
	content span
}

// parseATXHeading parses an ATX heading's opening line. If permissive is
// true, the space after the leading hash marks is optional (FlagPermissiveATXHeaders).
func parseATXHeading(line []byte, permissive bool) atxHeading {
	var h atxHeading
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return atxHeading{}
	}
	h.level = uint(n)

	i := n
	if i >= len(line) || line[i] == '\n' || line[i] == '\r' {
		h.content = span{i, i}
		return h
	}
	if !(line[i] == ' ' || line[i] == '\t') {
		if !permissive {
			return atxHeading{}
		}
	} else {
		i++
	}

	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	h.content.start = i

	h.content.end = len(line)
	hitHash := false
scanBack:
	for ; h.content.end > h.content.start; h.content.end-- {
		switch line[h.content.end-1] {
		case '\r', '\n':
		case ' ', '\t':
			if isEndEscaped(line[:h.content.end-1]) {
				break scanBack
			}
		case '#':
			hitHash = true
			break scanBack
		default:
			break scanBack
		}
	}
	if !hitHash {
		return h
	}
scanTrailingHashes:
	for i := h.content.end - 1; ; i-- {
		if i <= h.content.start {
			h.content.end = h.content.start
			break
		}
		switch line[i] {
		case '#':
		case ' ', '\t':
			h.content.end = i + 1
			break scanTrailingHashes
		default:
			return h
		}
	}
	for ; h.content.end > h.content.start; h.content.end-- {
		if b := line[h.content.end-1]; !(b == ' ' || b == '\t') || isEndEscaped(line[:h.content.end-1]) {
			break
		}
	}
	return h
}

// parseSetextHeadingUnderline returns the heading level (1 or 2) if line
// is a setext underline, or 0 otherwise.
func parseSetextHeadingUnderline(line []byte) (level uint) {
	if len(line) == 0 {
		return 0
	}
	switch line[0] {
	case '=':
		level = 1
	case '-':
		level = 2
	default:
		return 0
	}
	for i := 1; i < len(line); i++ {
		if line[i] != line[0] {
			if !isBlankLineBytes(line[i:]) {
				return 0
			}
			return level
		}
	}
	return level
}

type codeFence struct {
	char byte
	n    int
	info span
}

// parseCodeFence parses a code-fence opening marker.
func parseCodeFence(line []byte) codeFence {
	const minConsecutive = 3
	if len(line) < minConsecutive || (line[0] != '`' && line[0] != '~') {
		return codeFence{info: nullSpan()}
	}
	f := codeFence{char: line[0], n: 1, info: nullSpan()}
	for f.n < len(line) && line[f.n] == f.char {
		f.n++
	}
	if f.n < minConsecutive {
		return codeFence{info: nullSpan()}
	}
	for i := f.n; i < len(line) && f.info.start < 0; i++ {
		if c := line[i]; !isSpaceTabOrLineEnding(c) {
			f.info.start = i
		}
	}
	if f.info.start >= 0 {
		for f.info.end = len(line); f.info.end > f.info.start; f.info.end-- {
			if c := line[f.info.end-1]; !isSpaceTabOrLineEnding(c) {
				break
			}
		}
		if f.char == '`' {
			for i := f.info.start; i < f.info.end; i++ {
				if line[i] == '`' {
					return codeFence{info: nullSpan()}
				}
			}
		}
	}
	return f
}

type listMarker struct {
	delim byte
	n     int
	end   int
}

// parseListMarker parses a bullet or ordinal list marker at the
// beginning of line.
func parseListMarker(line []byte) listMarker {
	if len(line) == 0 {
		return listMarker{end: -1}
	}
	var n int
	switch c := line[0]; {
	case c == '-' || c == '+' || c == '*':
		if !hasTabOrSpacePrefixOrEOL(line[1:]) {
			return listMarker{end: -1}
		}
		return listMarker{delim: line[0], end: 1}
	case isASCIIDigit(c):
		n = int(c - '0')
	default:
		return listMarker{end: -1}
	}
	const maxDigits = 9
	for i := 1; i < maxDigits+1 && i < len(line); i++ {
		switch c := line[i]; {
		case isASCIIDigit(c):
			n = n*10 + int(c-'0')
		case c == '.' || c == ')':
			if !hasTabOrSpacePrefixOrEOL(line[i+1:]) {
				return listMarker{end: -1}
			}
			return listMarker{delim: c, n: n, end: i + 1}
		default:
			return listMarker{end: -1}
		}
	}
	return listMarker{end: -1}
}

func (m listMarker) isOrdered() bool { return m.delim == '.' || m.delim == ')' }

// parseTaskMarker recognizes a GFM task-list marker ("[ ] ", "[x] ",
// "[X] ") immediately following a list marker and its required space.
// rest is the bytes after the list marker's end (not yet including its
// mandatory separating space/tab).
func parseTaskMarker(rest []byte) (mark byte, ok bool) {
	if len(rest) < 4 {
		return 0, false
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return 0, false
	}
	if rest[1] != '[' || rest[3] != ']' {
		return 0, false
	}
	switch rest[2] {
	case ' ', 'x', 'X':
		// Require the checkbox to be followed by a space or EOL.
		if len(rest) > 4 && !(rest[4] == ' ' || rest[4] == '\t' || rest[4] == '\r' || rest[4] == '\n') {
			return 0, false
		}
		return rest[2], true
	default:
		return 0, false
	}
}
