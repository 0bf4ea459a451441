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

import "bytes"

// tableMaxColCount bounds the number of columns a GFM table may declare,
// matching md4c's TABLE_MAXCOLCOUNT guard rail (spec.md §7): a
// pathological delimiter row can't force unbounded column allocation.
const tableMaxColCount = 128

// replaceWithTable recognizes a GFM table at the start of a just-closed
// paragraph (a header row followed by a valid delimiter row) and, if
// found, splices a kindTable block (plus any remaining paragraph text)
// into parent in b's place.
func replaceWithTable(source []byte, b, parent *block) bool {
	if len(b.lines) < 2 {
		return false
	}
	headerLine, delimLine := b.lines[0], b.lines[1]
	headerText := source[headerLine.beg:headerLine.end]
	delimText := source[delimLine.beg:delimLine.end]
	if !bytes.ContainsRune(headerText, '|') {
		return false
	}
	aligns, ok := parseTableDelimiterRow(delimText)
	if !ok || len(aligns) == 0 || len(aligns) > tableMaxColCount {
		return false
	}
	colCount := len(aligns)

	table := newBlock(kindTable, headerLine.beg)
	table.colAligns = aligns

	headRow := newBlock(kindTableRow, headerLine.beg)
	headRow.isHeaderRow = true
	addTableCells(table, headRow, source, headerLine, aligns, true)
	headRow.close(headerLine.end)
	table.children = append(table.children, headRow)
	table.headRowCount = 1

	li := 2
	for li < len(b.lines) {
		ln := b.lines[li]
		text := source[ln.beg:ln.end]
		if isBlankLineBytes(text) || !bytes.ContainsRune(text, '|') {
			break
		}
		row := newBlock(kindTableRow, ln.beg)
		addTableCells(table, row, source, ln, aligns, false)
		row.close(ln.end)
		table.children = append(table.children, row)
		table.bodyRowCount++
		li++
	}
	table.close(b.lines[li-1].end)

	idx := findInParent(parent, b)
	if idx < 0 {
		return false
	}
	replacement := []*block{table}
	if li < len(b.lines) {
		b.lines = b.lines[li:]
		b.span.start = b.lines[0].beg
		replacement = append(replacement, b)
	}
	newChildren := make([]*block, 0, len(parent.children)-1+len(replacement))
	newChildren = append(newChildren, parent.children[:idx]...)
	newChildren = append(newChildren, replacement...)
	newChildren = append(newChildren, parent.children[idx+1:]...)
	parent.children = newChildren
	return true
}

func addTableCells(table, row *block, source []byte, ln lineRecord, aligns []Align, header bool) {
	cells := splitTableRow(source[ln.beg:ln.end], ln.beg)
	for i, align := range aligns {
		cell := newBlock(kindTableCell, ln.beg)
		cell.align = align
		cell.isHeader = header
		if i < len(cells) {
			cell.addLine(cells[i].start, cells[i].end, 0)
		}
		cell.close(ln.end)
		row.children = append(row.children, cell)
	}
}

// splitTableRow splits a table row's raw text into cell spans (absolute
// source offsets), trimming an optional leading/trailing unescaped pipe
// and surrounding whitespace from each cell.
func splitTableRow(line []byte, base int) []span {
	trimmed := line
	start := 0
	end := len(trimmed)
	if end > 0 && trimmed[0] == '|' {
		start = 1
	}
	if end > start && trimmed[end-1] == '|' && !isEndEscaped(trimmed[start:end-1]) {
		end--
	}

	var cells []span
	cellStart := start
	i := start
	for i < end {
		switch trimmed[i] {
		case '\\':
			i += 2
			continue
		case '`':
			// Skip a code span so an embedded pipe isn't treated as a
			// column separator.
			j := i + 1
			for j < end && trimmed[j] == '`' {
				j++
			}
			tickLen := j - i
			k := j
			for k < end {
				if trimmed[k] == '`' {
					m := k
					for m < end && trimmed[m] == '`' {
						m++
					}
					if m-k == tickLen {
						k = m
						break
					}
					k = m
					continue
				}
				k++
			}
			i = k
			continue
		case '|':
			cells = append(cells, trimSpan(trimmed, cellStart, i, base))
			cellStart = i + 1
		}
		i++
	}
	cells = append(cells, trimSpan(trimmed, cellStart, end, base))
	return cells
}

func trimSpan(line []byte, start, end, base int) span {
	for start < end && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	for end > start && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	return span{base + start, base + end}
}

// parseTableDelimiterRow parses a GFM table delimiter row (the line of
// dashes and colons below the header) and returns each column's
// alignment, or ok=false if line isn't a valid delimiter row.
func parseTableDelimiterRow(line []byte) ([]Align, bool) {
	start, end := 0, len(line)
	for start < end && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	for end > start && isASCIIWhitespace(line[end-1]) {
		end--
	}
	if start >= end {
		return nil, false
	}
	if line[start] == '|' {
		start++
	}
	if end > start && line[end-1] == '|' {
		end--
	}
	if start >= end {
		return nil, false
	}

	var aligns []Align
	cellStart := start
	for i := start; i <= end; i++ {
		if i == end || line[i] == '|' {
			cell := bytes.TrimSpace(line[cellStart:i])
			align, ok := parseDelimiterCell(cell)
			if !ok {
				return nil, false
			}
			aligns = append(aligns, align)
			cellStart = i + 1
		}
	}
	return aligns, true
}

func parseDelimiterCell(cell []byte) (Align, bool) {
	if len(cell) == 0 {
		return AlignDefault, false
	}
	left := cell[0] == ':'
	right := cell[len(cell)-1] == ':'
	inner := cell
	if left {
		inner = inner[1:]
	}
	if right && len(inner) > 0 {
		inner = inner[:len(inner)-1]
	}
	if len(inner) == 0 {
		return AlignDefault, false
	}
	for _, c := range inner {
		if c != '-' {
			return AlignDefault, false
		}
	}
	switch {
	case left && right:
		return AlignCenter, true
	case left:
		return AlignLeft, true
	case right:
		return AlignRight, true
	default:
		return AlignDefault, true
	}
}
