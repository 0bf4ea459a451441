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

// blockKind enumerates the internal block node kinds the container
// analyzer builds while parsing. This is a superset of the public
// BlockType: it additionally distinguishes list-vs-item and carries a
// document root sentinel, collapsed down to BlockType by the renderer.
type blockKind uint8

const (
	kindDocument blockKind = iota
	kindParagraph
	kindThematicBreak
	kindATXHeading
	kindSetextHeading
	kindIndentedCode
	kindFencedCode
	kindHTMLBlock
	kindLinkRefDef
	kindBlockQuote
	kindList
	kindListItem
	kindTable
	kindTableRow
	kindTableCell
)

// lineRecord is one physical source line belonging to a leaf block, after
// its container markers and required indent have already been consumed.
// indent is the number of canonical spaces (after tab expansion) that
// preceded [beg,end) beyond what containers required; it is resynthesized
// at render time rather than copied from source, since tabs don't expand
// 1:1 to space bytes.
type lineRecord struct {
	beg, end int
	indent   int

	// hardBreak reports whether the line's content (excluding its line
	// ending, already trimmed from [beg,end)) ended with a CommonMark hard
	// line break: two or more trailing spaces, or an odd run of trailing
	// backslashes.
	hardBreak bool
}

// block is an internal, ephemeral tree node. A full tree is built and
// consumed within a single Parse call and never escapes it.
type block struct {
	kind   blockKind
	span   span
	parent *block

	children []*block
	lines    []lineRecord

	// Heading
	level uint

	// Code
	fenceChar byte
	fenceLen  int
	info      span // fenced code info string, raw source span

	// HTML block
	htmlCond int

	// List / list item
	ordered        bool
	delim          byte // bullet char, or ordinal delimiter '.'/')'
	start          uint
	isTight        bool
	itemIndent     int // content column of items in this list
	lastLineBlank  bool
	hadBlankInside bool // a blank line occurred between this item's own lines
	isTask         bool
	taskMark       byte
	taskMarkOffset int

	// Table
	colAligns    []Align
	headRowCount uint
	bodyRowCount uint
	isHeaderRow  bool

	// Table cell
	align    Align
	isHeader bool

	// Link reference definition, raw spans into source (already unescaped
	// lazily at render/attribute-build time)
	refLabel span
	refDest  span
	refTitle span
	refHasTitle bool

	open bool
}

func newBlock(kind blockKind, start int) *block {
	return &block{kind: kind, span: span{start, -1}, open: true}
}

func (b *block) close(end int) {
	b.span.end = end
	b.open = false
}

func (b *block) addLine(beg, end, indent int) {
	b.lines = append(b.lines, lineRecord{beg: beg, end: end, indent: indent})
}

func (b *block) addLineBreak(beg, end, indent int, hardBreak bool) {
	b.lines = append(b.lines, lineRecord{beg: beg, end: end, indent: indent, hardBreak: hardBreak})
}

func (b *block) lastChild() *block {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[len(b.children)-1]
}

// isContainer reports whether b holds children blocks rather than raw
// lines (document, block quote, list, list item, table, table row).
func (b *block) isContainer() bool {
	switch b.kind {
	case kindDocument, kindBlockQuote, kindList, kindListItem, kindTable, kindTableRow:
		return true
	}
	return false
}

// acceptsLines reports whether b is a leaf block that directly holds
// lineRecords (paragraph, heading, code, html block, link ref def, table
// cell).
func (b *block) acceptsLines() bool {
	switch b.kind {
	case kindParagraph, kindATXHeading, kindSetextHeading, kindIndentedCode,
		kindFencedCode, kindHTMLBlock, kindLinkRefDef, kindTableCell:
		return true
	}
	return false
}
