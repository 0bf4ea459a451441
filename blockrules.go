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

// blockRule describes how a block kind participates in the two-phase
// block-structure algorithm (spec.md §4.2): match continues an already
// open block on a new line, canContain gates what new block kinds may be
// opened as its child, onClose runs once when the block is finished and
// may restructure it (splitting reference definitions or a GFM table out
// of a closed paragraph).
type blockRule struct {
	match        func(*lineCursor) bool
	onClose      func(source []byte, cfg Flag, b, parent *block)
	canContain   func(childKind blockKind) bool
	acceptsLines bool
}

var blockRules map[blockKind]blockRule

func init() {
	blockRules = map[blockKind]blockRule{
		kindDocument: {
			match:      func(*lineCursor) bool { return true },
			canContain: func(k blockKind) bool { return k != kindListItem },
		},
		kindList: {
			match:      func(*lineCursor) bool { return true },
			canContain: func(k blockKind) bool { return k == kindListItem },
			onClose:    onCloseList,
		},
		kindListItem: {
			match: func(c *lineCursor) bool {
				switch {
				case c.isRestBlank():
					if !c.listItemHasChildren() {
						return false
					}
					c.consumeIndent(c.indent())
					return true
				case c.indent() >= c.containerIndent():
					c.consumeIndent(c.containerIndent())
					return true
				default:
					return false
				}
			},
			canContain: func(k blockKind) bool { return k != kindListItem },
		},
		kindBlockQuote: {
			match: func(c *lineCursor) bool {
				indent := c.indent()
				if indent >= codeBlockIndentLimit {
					return false
				}
				if !hasBytePrefix(c.bytesAfterIndent(), blockQuotePrefix) {
					return false
				}
				c.consumeIndent(indent)
				c.advance(len(blockQuotePrefix))
				if c.indent() > 0 {
					c.consumeIndent(1)
				}
				return true
			},
			canContain: func(k blockKind) bool { return k != kindListItem },
		},
		kindFencedCode: {
			match: func(c *lineCursor) bool {
				lineIndent := c.indent()
				if lineIndent < codeBlockIndentLimit {
					startChar, startCount := c.containerCodeFence()
					f := parseCodeFence(c.bytesAfterIndent())
					if f.n > 0 && !f.info.isValid() && f.char == startChar && f.n >= startCount {
						c.consumeLine()
						return false
					}
				}
				if blockIndent := c.containerIndent(); lineIndent < blockIndent {
					c.consumeIndent(lineIndent)
				} else {
					c.consumeIndent(blockIndent)
				}
				return true
			},
			acceptsLines: true,
		},
		kindIndentedCode: {
			match: func(c *lineCursor) bool {
				indent := c.indent()
				if indent < codeBlockIndentLimit {
					if !c.isRestBlank() {
						return false
					}
					c.consumeIndent(indent)
				} else {
					c.consumeIndent(codeBlockIndentLimit)
				}
				return true
			},
			onClose:      onCloseIndentedCode,
			acceptsLines: true,
		},
		kindATXHeading: {acceptsLines: true},
		kindHTMLBlock: {
			match: func(c *lineCursor) bool {
				if htmlBlockConditions[c.containerHTMLCondition()].endCondition(c.bytesAfterIndent()) {
					if !c.isRestBlank() {
						c.collectLine()
					}
					c.consumeLine()
					return false
				}
				return true
			},
			acceptsLines: true,
		},
		kindParagraph: {
			match:        func(c *lineCursor) bool { return !c.isRestBlank() },
			acceptsLines: true,
			onClose:      onCloseParagraph,
		},
		kindSetextHeading: {onClose: onCloseParagraph},
	}
}

func canContainKind(parent, child blockKind) bool {
	rule, ok := blockRules[parent]
	if !ok || rule.canContain == nil {
		return false
	}
	return rule.canContain(child)
}

var blockStarts = []func(*lineCursor){
	startBlockQuote,
	startATXHeading,
	startFencedCode,
	startHTMLBlock,
	startSetextHeading,
	startThematicBreak,
	startListItem,
	startIndentedCode,
}

func startBlockQuote(c *lineCursor) {
	indent := c.indent()
	if indent >= codeBlockIndentLimit {
		return
	}
	if !hasBytePrefix(c.bytesAfterIndent(), blockQuotePrefix) {
		return
	}
	c.consumeIndent(indent)
	c.openBlock(kindBlockQuote)
	c.advance(len(blockQuotePrefix))
	if c.indent() > 0 {
		c.consumeIndent(1)
	}
}

func startATXHeading(c *lineCursor) {
	indent := c.indent()
	if indent >= codeBlockIndentLimit {
		return
	}
	h := parseATXHeading(c.bytesAfterIndent(), c.cfg.has(FlagPermissiveATXHeaders))
	if h.level < 1 {
		return
	}
	c.consumeIndent(indent)
	c.openHeadingBlock(kindATXHeading, h.level)
	c.advance(h.content.start)
	s := c.collectInline(h.content.len())
	c.container.addLine(s.start, s.end, 0)
	c.consumeLine()
	c.endBlock()
}

func startFencedCode(c *lineCursor) {
	indent := c.indent()
	if indent >= codeBlockIndentLimit {
		return
	}
	f := parseCodeFence(c.bytesAfterIndent())
	if f.n == 0 {
		return
	}
	c.consumeIndent(indent)
	c.openFencedCodeBlock(f.char, f.n)
	c.setContainerIndent(indent)
	if f.info.isValid() {
		c.advance(f.info.start)
		c.container.info = c.collectInline(f.info.len())
	}
	c.consumeLine()
}

func startHTMLBlock(c *lineCursor) {
	indent := c.indent()
	if indent >= codeBlockIndentLimit {
		return
	}
	line := c.bytesAfterIndent()
	if len(line) == 0 || line[0] != '<' {
		return
	}
	if c.cfg.has(FlagNoHTMLBlocks) {
		return
	}
	for i, conds := range htmlBlockConditions {
		if conds.startCondition(line) {
			if !conds.canInterruptParagraph && c.containerKind() == kindParagraph {
				return
			}
			c.openHTMLBlock(i)
			if conds.endCondition(line) {
				c.collectLine()
				c.consumeLine()
				c.endBlock()
			}
			return
		}
	}
}

func startSetextHeading(c *lineCursor) {
	if c.containerKind() != kindParagraph {
		return
	}
	indent := c.indent()
	if indent >= codeBlockIndentLimit {
		return
	}
	level := parseSetextHeadingUnderline(c.bytesAfterIndent())
	if level == 0 {
		return
	}
	c.morphSetext(level)
	c.consumeLine()
	c.endBlock()
}

func startThematicBreak(c *lineCursor) {
	indent := c.indent()
	if indent >= codeBlockIndentLimit {
		return
	}
	end := parseThematicBreak(c.bytesAfterIndent())
	if end < 0 {
		return
	}
	c.consumeIndent(indent)
	c.openBlock(kindThematicBreak)
	c.advance(end)
	c.consumeLine()
	c.endBlock()
}

func startListItem(c *lineCursor) {
	indent := c.indent()
	if indent >= codeBlockIndentLimit {
		return
	}
	m := parseListMarker(c.bytesAfterIndent())
	if m.end < 0 || (c.containerKind() == kindParagraph && m.isOrdered() && m.n != 1) {
		return
	}
	if c.containerKind() == kindParagraph && isBlankLineBytes(c.bytesAfterIndent()[m.end:]) {
		return
	}
	isTask := false
	var taskMark byte
	if c.cfg.has(FlagTaskLists) {
		if tm, ok := parseTaskMarker(c.bytesAfterIndent()[m.end:]); ok {
			isTask = true
			taskMark = tm
		}
	}

	c.consumeIndent(indent)
	if c.containerKind() != kindList || c.containerListDelim() != m.delim {
		c.openListBlock(kindList, m.delim)
		c.container.ordered = m.isOrdered()
		c.container.start = uint(m.n)
	}
	c.openListBlock(kindListItem, m.delim)
	c.container.isTask = isTask
	c.container.taskMark = taskMark
	c.advance(m.end)
	if isTask {
		// Marker is " [x]"; the leading space was already validated by
		// parseTaskMarker. The space required after the closing bracket
		// is left for the padding computation below to measure, just
		// like the space after an ordinary list marker.
		c.advance(1) // separating space before '['
		c.container.taskMarkOffset = c.lineStart + c.i + 1
		c.advance(3) // "[x]"
	}
	if c.isRestBlank() {
		c.setContainerIndent(indent + m.end + 1)
		c.consumeLine()
		return
	}
	padding := c.indent()
	switch {
	case padding < 1:
		padding = 1
	case padding > 4:
		padding = 1
		c.consumeIndent(1)
	default:
		c.consumeIndent(padding)
	}
	extra := 0
	if isTask {
		extra = 4
	}
	c.setContainerIndent(indent + m.end + padding + extra)
}

func startIndentedCode(c *lineCursor) {
	if c.cfg.has(FlagNoIndentedCodeBlocks) {
		return
	}
	if c.indent() < codeBlockIndentLimit || c.isRestBlank() || c.tipKind() == kindParagraph {
		return
	}
	c.consumeIndent(codeBlockIndentLimit)
	c.openBlock(kindIndentedCode)
}

func onCloseList(source []byte, cfg Flag, b, parent *block) {
	endsWithBlankLine := func(b *block) bool {
		for b != nil {
			if b.lastLineBlank {
				return true
			}
			if b.kind != kindList && b.kind != kindListItem {
				return false
			}
			b = b.lastChild()
		}
		return false
	}
	items := b.children
	loose := false
determineLoose:
	for i, item := range items {
		if i < len(items)-1 && endsWithBlankLine(item) {
			loose = true
			break determineLoose
		}
		subitems := item.children
		for j, sub := range subitems {
			if (i < len(items)-1 || j < len(subitems)-1) && endsWithBlankLine(sub) {
				loose = true
				break determineLoose
			}
		}
	}
	b.isTight = !loose
	if loose {
		for _, item := range items {
			item.isTight = false
		}
	} else {
		for _, item := range items {
			item.isTight = true
		}
	}
}

func onCloseIndentedCode(source []byte, cfg Flag, b, parent *block) {
	// "Blank lines preceding or following an indented code block are not
	// included in it."
	for i := len(b.lines) - 1; i >= 0; i-- {
		if !isBlankLineBytes(source[b.lines[i].beg:b.lines[i].end]) {
			break
		}
		b.lines = b.lines[:i]
	}
}
