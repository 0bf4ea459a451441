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

// buildDocument runs the two-phase CommonMark block-structure algorithm
// (spec.md §4.2) over the whole document and returns the closed document
// root.
func buildDocument(source []byte, cfg Flag) *block {
	root := newBlock(kindDocument, 0)

	c := newLineCursor(root, source, cfg)
	lines := splitLines(source)
	for _, ln := range lines {
		c.reset(ln.start, source[ln.start:ln.end])
		allMatched := descendOpenBlocks(c)
		hasText := openNewBlocks(c, allMatched)
		if c.container == nil {
			break
		}
		if hasText {
			addLineText(c)
		}
	}
	if c.root.open {
		closeBlock(source, cfg, &c.root, nil, len(source))
	}
	return &c.root
}

// lineSpan is a physical line's byte range, including its line-ending
// bytes (so that consecutive lines are contiguous in source).
type lineSpan struct{ start, end int }

func splitLines(source []byte) []lineSpan {
	var lines []lineSpan
	start := 0
	for start < len(source) {
		i := bytes.IndexAny(source[start:], "\r\n")
		if i < 0 {
			lines = append(lines, lineSpan{start, len(source)})
			break
		}
		eol := start + i
		end := eol + 1
		if source[eol] == '\r' && end < len(source) && source[end] == '\n' {
			end++
		}
		lines = append(lines, lineSpan{start, end})
		start = end
	}
	return lines
}

// descendOpenBlocks walks the already-open blocks from the document root,
// descending through last children, matching each against the current
// line. It returns whether every open block still matched.
func descendOpenBlocks(c *lineCursor) (allMatched bool) {
	c.container = nil
	child := &c.root
	for {
		rule, ok := blockRules[child.kind]
		if !ok || rule.match == nil {
			return false
		}
		c.state = stateDescending
		ok2 := rule.match(c)
		if !ok2 {
			return false
		}
		c.container = child
		child = child.lastChild()
		if child == nil || !child.open {
			return true
		}
	}
}

// openNewBlocks looks for new block starts on the current line, closing
// any blocks that didn't match in descendOpenBlocks before opening new
// descendants of the deepest matched container. It returns whether the
// line still has leaf text to collect.
func openNewBlocks(c *lineCursor, allMatched bool) (hasText bool) {
	if len(c.line) == 0 {
		c.root.close(c.lineStart)
		if rule, ok := blockRules[c.root.kind]; ok && rule.onClose != nil {
			rule.onClose(c.source, c.cfg, &c.root, nil)
		}
		c.container = nil
		return false
	}

	if !allMatched {
		defer func() {
			if !c.isRestBlank() {
				if tip := findTip(&c.root); tip != nil && tip.kind == kindParagraph {
					c.container = tip
					return
				}
			}
			if c.container == nil {
				closeBlock(c.source, c.cfg, &c.root, nil, c.lineStart)
			} else {
				closeBlock(c.source, c.cfg, c.container.lastChild(), c.container, c.lineStart)
			}
		}()
	}

openingLoop:
	for c.root.open && (c.containerKind() == kindParagraph || !blockRules[c.containerKind()].acceptsLines) {
		for _, start := range blockStarts {
			c.state = stateOpening
			start(c)
			switch c.state {
			case stateOpenMatched:
				continue openingLoop
			case stateLineConsumed:
				return false
			}
		}
		return true
	}
	return true
}

func addLineText(c *lineCursor) {
	isBlank := c.isRestBlank()
	if last := c.container.lastChild(); last != nil && isBlank {
		last.lastLineBlank = true
	}
	lastLineBlank := isBlank && !(c.containerKind() == kindBlockQuote ||
		c.containerKind() == kindFencedCode ||
		(c.containerKind() == kindListItem && len(c.container.children) == 0 && c.container.span.start == c.lineStart))
	for b := c.container; b != nil; b = findParent(&c.root, b) {
		b.lastLineBlank = lastLineBlank
	}

	switch {
	case blockRules[c.containerKind()].acceptsLines:
		c.collectLine()
	case !isBlank:
		c.openBlock(kindParagraph)
		c.consumeIndent(c.indent())
		if c.container == nil {
			return
		}
		c.collectLine()
	default:
		return
	}
}
