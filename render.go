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

import "unicode"

// renderDocument walks the closed block tree built by buildDocument and
// drives r's callbacks in document order (spec.md §6), resolving each
// leaf block's inline content as it's reached rather than up front.
func renderDocument(source []byte, root *block, refs *refTable, cfg Flag, r Renderer) error {
	if err := r.EnterBlock(BlockDoc, nil); err != nil {
		return err
	}
	if err := renderChildren(source, root.children, refs, cfg, r); err != nil {
		return err
	}
	return r.LeaveBlock(BlockDoc, nil)
}

func renderChildren(source []byte, children []*block, refs *refTable, cfg Flag, r Renderer) error {
	for _, b := range children {
		if err := renderBlock(source, b, refs, cfg, r); err != nil {
			return err
		}
	}
	return nil
}

func renderBlock(source []byte, b *block, refs *refTable, cfg Flag, r Renderer) error {
	switch b.kind {
	case kindLinkRefDef:
		return nil // spliced out of the visible tree entirely; carries no content

	case kindBlockQuote:
		return renderWrappedBlock(source, b, refs, cfg, r, BlockQuote, nil)

	case kindList:
		if b.ordered {
			detail := OLDetail{Start: b.start, IsTight: b.isTight, MarkDelimiter: b.delim}
			return renderWrappedBlock(source, b, refs, cfg, r, BlockOL, detail)
		}
		detail := ULDetail{IsTight: b.isTight, Mark: b.delim}
		return renderWrappedBlock(source, b, refs, cfg, r, BlockUL, detail)

	case kindListItem:
		detail := LIDetail{IsTask: b.isTask, TaskMark: b.taskMark, TaskMarkOffset: b.taskMarkOffset}
		return renderWrappedBlock(source, b, refs, cfg, r, BlockLI, detail)

	case kindThematicBreak:
		if err := r.EnterBlock(BlockHR, nil); err != nil {
			return err
		}
		return r.LeaveBlock(BlockHR, nil)

	case kindATXHeading, kindSetextHeading:
		detail := HDetail{Level: b.level}
		if err := r.EnterBlock(BlockH, detail); err != nil {
			return err
		}
		if err := renderInline(source, b.lines, refs, cfg, r); err != nil {
			return err
		}
		return r.LeaveBlock(BlockH, detail)

	case kindParagraph:
		if err := r.EnterBlock(BlockP, nil); err != nil {
			return err
		}
		if err := renderInline(source, b.lines, refs, cfg, r); err != nil {
			return err
		}
		return r.LeaveBlock(BlockP, nil)

	case kindIndentedCode, kindFencedCode:
		return renderCodeBlock(source, b, r)

	case kindHTMLBlock:
		return renderHTMLBlock(source, b, r)

	case kindTable:
		return renderTable(source, b, refs, cfg, r)

	default:
		panic("md4c: unexpected block kind reached renderBlock")
	}
}

func renderWrappedBlock(source []byte, b *block, refs *refTable, cfg Flag, r Renderer, typ BlockType, detail any) error {
	if err := r.EnterBlock(typ, detail); err != nil {
		return err
	}
	if err := renderChildren(source, b.children, refs, cfg, r); err != nil {
		return err
	}
	return r.LeaveBlock(typ, detail)
}

func renderCodeBlock(source []byte, b *block, r Renderer) error {
	info := Attribute{}
	var fenceChar byte
	if b.kind == kindFencedCode {
		info = buildAttribute(source, b.info)
		fenceChar = b.fenceChar
	}
	detail := CodeDetail{Info: info, Lang: codeLangFromInfo(info), FenceChar: fenceChar}
	if err := r.EnterBlock(BlockCode, detail); err != nil {
		return err
	}
	content := blockLiteralContent(source, b.lines)
	if len(content) > 0 {
		if err := r.Text(TextCode, content); err != nil {
			return err
		}
	}
	return r.LeaveBlock(BlockCode, detail)
}

func renderHTMLBlock(source []byte, b *block, r Renderer) error {
	if err := r.EnterBlock(BlockHTML, nil); err != nil {
		return err
	}
	content := blockLiteralContent(source, b.lines)
	if len(content) > 0 {
		if err := r.Text(TextHTML, content); err != nil {
			return err
		}
	}
	return r.LeaveBlock(BlockHTML, nil)
}

// blockLiteralContent joins a leaf block's lines verbatim (no backslash
// or entity decoding, since code and HTML block content is literal),
// replacing any NUL bytes and appending the trailing newline CommonMark
// mandates for block-level literal content.
func blockLiteralContent(source []byte, lines []lineRecord) []byte {
	if len(lines) == 0 {
		return nil
	}
	tb := buildTextBuf(source, lines)
	content := replaceNUL(tb.buf)
	out := make([]byte, len(content)+1)
	copy(out, content)
	out[len(content)] = '\n'
	return out
}

// codeLangFromInfo extracts the first whitespace-delimited word of a
// fenced code block's info string, conventionally used as a
// syntax-highlighting language tag.
func codeLangFromInfo(info Attribute) Attribute {
	text := info.Text
	end := len(text)
	for idx, r := range text {
		if unicode.IsSpace(r) {
			end = idx
			break
		}
	}
	if end == 0 {
		return Attribute{}
	}
	var subs []Substring
	for _, s := range info.Substrings {
		if s.Offset >= end {
			break
		}
		subs = append(subs, s)
	}
	if len(subs) == 0 {
		subs = []Substring{{Type: TextNormal, Offset: 0}}
	}
	return Attribute{Text: text[:end], Substrings: subs}
}

func renderTable(source []byte, b *block, refs *refTable, cfg Flag, r Renderer) error {
	detail := TableDetail{ColCount: uint(len(b.colAligns)), HeadRowCount: b.headRowCount, BodyRowCount: b.bodyRowCount}
	if err := r.EnterBlock(BlockTable, detail); err != nil {
		return err
	}
	head := b.children[:b.headRowCount]
	body := b.children[b.headRowCount:]
	if len(head) > 0 {
		if err := r.EnterBlock(BlockTHead, nil); err != nil {
			return err
		}
		if err := renderTableRows(source, head, refs, cfg, r); err != nil {
			return err
		}
		if err := r.LeaveBlock(BlockTHead, nil); err != nil {
			return err
		}
	}
	if len(body) > 0 {
		if err := r.EnterBlock(BlockTBody, nil); err != nil {
			return err
		}
		if err := renderTableRows(source, body, refs, cfg, r); err != nil {
			return err
		}
		if err := r.LeaveBlock(BlockTBody, nil); err != nil {
			return err
		}
	}
	return r.LeaveBlock(BlockTable, detail)
}

func renderTableRows(source []byte, rows []*block, refs *refTable, cfg Flag, r Renderer) error {
	for _, row := range rows {
		if err := r.EnterBlock(BlockTR, nil); err != nil {
			return err
		}
		for _, cell := range row.children {
			typ := BlockTD
			if cell.isHeader {
				typ = BlockTH
			}
			detail := TDDetail{Align: cell.align}
			if err := r.EnterBlock(typ, detail); err != nil {
				return err
			}
			if err := renderInline(source, cell.lines, refs, cfg, r); err != nil {
				return err
			}
			if err := r.LeaveBlock(typ, detail); err != nil {
				return err
			}
		}
		if err := r.LeaveBlock(BlockTR, nil); err != nil {
			return err
		}
	}
	return nil
}

// renderInline resolves a leaf block's lines into its inline tree and
// emits it.
func renderInline(source []byte, lines []lineRecord, refs *refTable, cfg Flag, r Renderer) error {
	if len(lines) == 0 {
		return nil
	}
	nodes := resolveInline(source, lines, refs, cfg)
	return renderInlineNodes(nodes, cfg, r)
}

func renderInlineNodes(nodes []*inlineNode, cfg Flag, r Renderer) error {
	for _, n := range nodes {
		if err := renderInlineNode(n, cfg, r); err != nil {
			return err
		}
	}
	return nil
}

func renderInlineNode(n *inlineNode, cfg Flag, r Renderer) error {
	switch n.kind {
	case kindText:
		return renderAttributeText(r, n.text, cfg)

	case kindBreak:
		if n.hardBreak {
			return r.Text(TextBR, []byte("\n"))
		}
		return r.Text(TextSoftBR, []byte("\n"))

	case kindCode:
		if err := r.EnterSpan(SpanCode, nil); err != nil {
			return err
		}
		if len(n.raw) > 0 {
			if err := r.Text(TextCode, n.raw); err != nil {
				return err
			}
		}
		return r.LeaveSpan(SpanCode, nil)

	case kindRawHTML:
		return r.Text(TextHTML, n.raw)

	case kindAutolink:
		if err := r.EnterSpan(SpanA, n.detail); err != nil {
			return err
		}
		if len(n.raw) > 0 {
			if err := r.Text(TextNormal, n.raw); err != nil {
				return err
			}
		}
		return r.LeaveSpan(SpanA, n.detail)

	case kindLatex:
		if err := r.EnterSpan(n.spanType, nil); err != nil {
			return err
		}
		if len(n.raw) > 0 {
			if err := r.Text(TextLatexMath, n.raw); err != nil {
				return err
			}
		}
		return r.LeaveSpan(n.spanType, nil)

	case kindWikiLink:
		if err := r.EnterSpan(SpanWikiLink, n.detail); err != nil {
			return err
		}
		if err := renderAttributeText(r, n.text, cfg); err != nil {
			return err
		}
		return r.LeaveSpan(SpanWikiLink, n.detail)

	case kindWrap:
		if err := r.EnterSpan(n.spanType, nil); err != nil {
			return err
		}
		if err := renderInlineNodes(n.children, cfg, r); err != nil {
			return err
		}
		return r.LeaveSpan(n.spanType, nil)

	case kindLink, kindImage:
		if err := r.EnterSpan(n.spanType, n.detail); err != nil {
			return err
		}
		if err := renderInlineNodes(n.children, cfg, r); err != nil {
			return err
		}
		return r.LeaveSpan(n.spanType, n.detail)
	}
	return nil
}

// renderAttributeText emits a's substrings as one or more Text calls,
// collapsing whitespace within TextNormal runs when FlagCollapseWhitespace
// is set (spec.md §4.5).
func renderAttributeText(r Renderer, a Attribute, cfg Flag) error {
	if a.IsEmpty() {
		return nil
	}
	for i, s := range a.Substrings {
		end := len(a.Text)
		if i+1 < len(a.Substrings) {
			end = a.Substrings[i+1].Offset
		}
		chunk := []byte(a.Text[s.Offset:end])
		if len(chunk) == 0 {
			continue
		}
		if s.Type == TextNormal && cfg.has(FlagCollapseWhitespace) {
			chunk = collapseWhitespace(chunk)
		}
		if err := r.Text(s.Type, chunk); err != nil {
			return err
		}
	}
	return nil
}

func collapseWhitespace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	i := 0
	for i < len(b) {
		r, size := decodeRune(b, i)
		if isUnicodeWhitespace(r) {
			out = append(out, ' ')
			i += size
			for i < len(b) {
				r2, size2 := decodeRune(b, i)
				if !isUnicodeWhitespace(r2) {
					break
				}
				i += size2
			}
			continue
		}
		out = append(out, b[i:i+size]...)
		i += size
	}
	return out
}
