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

// onCloseParagraph runs when a paragraph or setext heading closes. It
// looks for one or more leading link reference definitions (spec.md
// §4.4) and, if FlagTables is set, a GFM table (spec.md's supplemented
// table feature), splitting them out of the block into sibling nodes.
// Whatever text remains, if any, stays a paragraph.
func onCloseParagraph(source []byte, cfg Flag, b, parent *block) {
	if b.kind == kindSetextHeading {
		// A setext underline can't itself start a reference definition or
		// a table; only plain paragraphs are candidates.
		return
	}
	if parent == nil || len(b.lines) == 0 {
		return
	}

	if cfg.has(FlagTables) {
		if replaceWithTable(source, b, parent) {
			return
		}
	}

	replaceRefDefs(source, b, parent)
}

func findInParent(parent, b *block) int {
	for i, c := range parent.children {
		if c == b {
			return i
		}
	}
	return -1
}

func replaceRefDefs(source []byte, b, parent *block) {
	lines := b.lines
	var refs []*block
	li := 0
	for li < len(lines) {
		def, consumed, ok := tryRefDef(source, lines[li:])
		if !ok {
			break
		}
		def.parent = parent
		refs = append(refs, def)
		li += consumed
	}
	if len(refs) == 0 {
		return
	}
	idx := findInParent(parent, b)
	if idx < 0 {
		return
	}
	replacement := refs
	if li < len(lines) {
		b.lines = lines[li:]
		b.span.start = b.lines[0].beg
		replacement = append(append([]*block{}, refs...), b)
	}
	newChildren := make([]*block, 0, len(parent.children)-1+len(replacement))
	newChildren = append(newChildren, parent.children[:idx]...)
	newChildren = append(newChildren, replacement...)
	newChildren = append(newChildren, parent.children[idx+1:]...)
	parent.children = newChildren
}

// tryRefDef attempts to parse a single link reference definition
// beginning at lines[0]. It returns the number of lines consumed.
func tryRefDef(source []byte, lines []lineRecord) (def *block, consumed int, ok bool) {
	window := lines
	if len(window) > 4 {
		window = window[:4]
	}
	tb := buildTextBuf(source, window)
	buf := tb.buf
	if len(buf) == 0 || buf[0] != '[' {
		return nil, 0, false
	}

	label, pos, ok := scanLinkLabel(buf, 0)
	if !ok || isAllBlank(buf[label.start:label.end]) {
		return nil, 0, false
	}
	if pos >= len(buf) || buf[pos] != ':' {
		return nil, 0, false
	}
	pos++
	pos = skipRefSpace(buf, pos)
	if pos >= len(buf) {
		return nil, 0, false
	}

	dest, pos2, ok := scanLinkDestination(buf, pos)
	if !ok {
		return nil, 0, false
	}
	pos = pos2

	restStart := pos
	lineEnd := indexByteFrom(buf, '\n', restStart)
	if lineEnd < 0 {
		lineEnd = len(buf)
	}
	sameLineRest := buf[restStart:lineEnd]

	var title span
	hasTitle := false
	endPos := lineEnd
	if isAllBlank(sameLineRest) {
		// Title, if any, is on the next line.
		if lineEnd < len(buf) {
			next := lineEnd + 1
			t, tpos, tok := scanLinkTitle(buf, next)
			if tok {
				tEnd := indexByteFrom(buf, '\n', tpos)
				if tEnd < 0 {
					tEnd = len(buf)
				}
				if isAllBlank(buf[tpos:tEnd]) {
					title, hasTitle, endPos = t, true, tEnd
				}
			}
		}
	} else if len(sameLineRest) > 0 && (sameLineRest[0] == ' ' || sameLineRest[0] == '\t') {
		tStart := skipRefSpace(buf, restStart)
		t, tpos, tok := scanLinkTitle(buf, tStart)
		if tok {
			tEnd := indexByteFrom(buf, '\n', tpos)
			if tEnd < 0 {
				tEnd = len(buf)
			}
			if isAllBlank(buf[tpos:tEnd]) {
				title, hasTitle, endPos = t, true, tEnd
			} else {
				return nil, 0, false
			}
		} else {
			return nil, 0, false
		}
	} else {
		return nil, 0, false
	}

	endLineIdx := lineIndexForBufPos(window, tb, endPos)
	def = &block{
		kind:        kindLinkRefDef,
		span:        tb.span(0, endPos),
		refLabel:    tb.span(label.start, label.end),
		refDest:     tb.span(dest.start, dest.end),
		refHasTitle: hasTitle,
		open:        false,
	}
	if hasTitle {
		def.refTitle = tb.span(title.start, title.end)
	}
	return def, endLineIdx + 1, true
}

// lineIndexForBufPos returns the index into window of the line containing
// (or most closely preceding) the joined-buffer position p.
func lineIndexForBufPos(window []lineRecord, tb *textBuf, p int) int {
	if p >= len(tb.srcPos) {
		return len(window) - 1
	}
	target := tb.pos(p)
	idx := 0
	for i, ln := range window {
		if ln.beg <= target {
			idx = i
		}
	}
	return idx
}

func indexByteFrom(b []byte, c byte, from int) int {
	for i := from; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

func isAllBlank(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}

func skipRefSpace(buf []byte, pos int) int {
	sawNewline := false
	for pos < len(buf) {
		switch buf[pos] {
		case ' ', '\t', '\r':
			pos++
		case '\n':
			if sawNewline {
				return pos
			}
			sawNewline = true
			pos++
		default:
			return pos
		}
	}
	return pos
}

// scanLinkLabel scans a `[...]` label starting at buf[pos] == '['.
func scanLinkLabel(buf []byte, pos int) (inner span, next int, ok bool) {
	if pos >= len(buf) || buf[pos] != '[' {
		return span{}, pos, false
	}
	start := pos + 1
	depth := 1
	i := start
	const maxLabelLen = 999
	for i < len(buf) && i-start <= maxLabelLen {
		switch buf[i] {
		case '\\':
			i += 2
			continue
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return span{start, i}, i + 1, true
			}
		}
		i++
	}
	return span{}, pos, false
}

// scanLinkDestination scans a link destination at pos, either the
// bracketed <...> form or the bare-parenthesis-balanced form.
func scanLinkDestination(buf []byte, pos int) (s span, next int, ok bool) {
	if pos < len(buf) && buf[pos] == '<' {
		i := pos + 1
		start := i
		for i < len(buf) {
			switch buf[i] {
			case '\\':
				i += 2
				continue
			case '>':
				return span{start, i}, i + 1, true
			case '\n', '<':
				return span{}, pos, false
			}
			i++
		}
		return span{}, pos, false
	}
	start := pos
	i := pos
	depth := 0
	for i < len(buf) {
		c := buf[i]
		switch {
		case c == '\\':
			i += 2
			continue
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				goto done
			}
			depth--
		case isASCIIWhitespace(c), isASCIIControl(c):
			goto done
		}
		i++
	}
done:
	if i == start || depth != 0 {
		return span{}, pos, false
	}
	return span{start, i}, i, true
}

func isASCIIControl(c byte) bool { return c < 0x20 || c == 0x7f }

// scanLinkTitle scans a link title in "...", '...' or (...) form.
func scanLinkTitle(buf []byte, pos int) (s span, next int, ok bool) {
	if pos >= len(buf) {
		return span{}, pos, false
	}
	var closer byte
	switch buf[pos] {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return span{}, pos, false
	}
	start := pos + 1
	i := start
	lineHasContent := false
	for i < len(buf) {
		switch buf[i] {
		case '\\':
			i += 2
			lineHasContent = true
			continue
		case '\n':
			if !lineHasContent {
				// A title may not contain a blank line.
				return span{}, pos, false
			}
			lineHasContent = false
			i++
			continue
		case closer:
			return span{start, i}, i + 1, true
		}
		if buf[i] != ' ' && buf[i] != '\t' && buf[i] != '\r' {
			lineHasContent = true
		}
		i++
	}
	return span{}, pos, false
}
