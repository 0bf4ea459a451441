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
	"html"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// HTMLRenderer is a [Renderer] that converts the callback sequence from
// [Parse] directly into HTML, the same reference consumer md4c itself
// ships alongside its callback-driven core.
//
// # Security considerations
//
// CommonMark permits raw HTML blocks and spans, which can introduce
// Cross-Site Scripting vulnerabilities when the source isn't trusted. Set
// IgnoreRaw to drop raw HTML entirely, or run the rendered output through
// an HTML sanitizer.
type HTMLRenderer struct {
	// IgnoreRaw drops HTML blocks and raw HTML spans instead of passing
	// them through verbatim.
	IgnoreRaw bool

	dst []byte

	tightStack []bool // one entry per open BlockUL/BlockOL
	suppressP  bool    // true while inside a paragraph a tight list is suppressing

	altDepth int    // >0 while inside a SpanImg's content, nested images increment further
	altBuf   []byte // accumulated plain-text alt content for the innermost image
}

// RenderHTML parses source under cfg and renders it directly to w as
// HTML, a convenience wrapper around Parse for callers who don't need
// their own Renderer.
func RenderHTML(w io.Writer, source []byte, cfg Config) error {
	r := &HTMLRenderer{}
	if err := Parse(source, cfg, r); err != nil {
		return err
	}
	_, err := w.Write(r.dst)
	return err
}

// Bytes returns the HTML accumulated so far.
func (r *HTMLRenderer) Bytes() []byte { return r.dst }

// String returns the HTML accumulated so far.
func (r *HTMLRenderer) String() string { return string(r.dst) }

func (r *HTMLRenderer) inAlt() bool { return r.altDepth > 0 }

func (r *HTMLRenderer) EnterBlock(typ BlockType, detail any) error {
	if r.inAlt() {
		return nil
	}
	switch typ {
	case BlockQuote:
		r.dst = append(r.dst, "<blockquote>\n"...)
	case BlockUL:
		d := detail.(ULDetail)
		r.tightStack = append(r.tightStack, d.IsTight)
		r.dst = append(r.dst, "<ul>\n"...)
	case BlockOL:
		d := detail.(OLDetail)
		r.tightStack = append(r.tightStack, d.IsTight)
		r.dst = append(r.dst, "<ol"...)
		if d.Start != 1 {
			r.dst = append(r.dst, ` start="`...)
			r.dst = strconv.AppendUint(r.dst, uint64(d.Start), 10)
			r.dst = append(r.dst, '"')
		}
		r.dst = append(r.dst, ">\n"...)
	case BlockLI:
		d := detail.(LIDetail)
		r.dst = append(r.dst, "<li"...)
		if d.IsTask {
			r.dst = append(r.dst, ` class="task-list-item"`...)
		}
		r.dst = append(r.dst, '>')
		if d.IsTask {
			r.dst = append(r.dst, `<input type="checkbox" disabled=""`...)
			if d.TaskMark != ' ' {
				r.dst = append(r.dst, ` checked=""`...)
			}
			r.dst = append(r.dst, " />"...)
		}
	case BlockHR:
		r.dst = append(r.dst, "<hr />\n"...)
	case BlockH:
		d := detail.(HDetail)
		r.dst = append(r.dst, '<', 'h')
		r.dst = strconv.AppendUint(r.dst, uint64(d.Level), 10)
		r.dst = append(r.dst, '>')
	case BlockCode:
		d := detail.(CodeDetail)
		r.dst = append(r.dst, "<pre><code"...)
		if !d.Lang.IsEmpty() {
			r.dst = append(r.dst, ` class="language-`...)
			r.dst = append(r.dst, html.EscapeString(d.Lang.Text)...)
			r.dst = append(r.dst, '"')
		}
		r.dst = append(r.dst, '>')
	case BlockP:
		r.suppressP = len(r.tightStack) > 0 && r.tightStack[len(r.tightStack)-1]
		if !r.suppressP {
			r.dst = append(r.dst, "<p>"...)
		}
	case BlockTable:
		r.dst = append(r.dst, "<table>\n"...)
	case BlockTHead:
		r.dst = append(r.dst, "<thead>\n"...)
	case BlockTBody:
		r.dst = append(r.dst, "<tbody>\n"...)
	case BlockTR:
		r.dst = append(r.dst, "<tr>\n"...)
	case BlockTH:
		d := detail.(TDDetail)
		r.dst = append(r.dst, "<th"...)
		r.dst = appendAlignAttr(r.dst, d.Align)
		r.dst = append(r.dst, '>')
	case BlockTD:
		d := detail.(TDDetail)
		r.dst = append(r.dst, "<td"...)
		r.dst = appendAlignAttr(r.dst, d.Align)
		r.dst = append(r.dst, '>')
	}
	return nil
}

func (r *HTMLRenderer) LeaveBlock(typ BlockType, detail any) error {
	if r.inAlt() {
		return nil
	}
	switch typ {
	case BlockQuote:
		r.dst = append(r.dst, "</blockquote>\n"...)
	case BlockUL:
		r.tightStack = r.tightStack[:len(r.tightStack)-1]
		r.dst = append(r.dst, "</ul>\n"...)
	case BlockOL:
		r.tightStack = r.tightStack[:len(r.tightStack)-1]
		r.dst = append(r.dst, "</ol>\n"...)
	case BlockLI:
		r.dst = append(r.dst, "</li>\n"...)
	case BlockH:
		d := detail.(HDetail)
		r.dst = append(r.dst, '<', '/', 'h')
		r.dst = strconv.AppendUint(r.dst, uint64(d.Level), 10)
		r.dst = append(r.dst, ">\n"...)
	case BlockCode:
		r.dst = append(r.dst, "</code></pre>\n"...)
	case BlockP:
		if !r.suppressP {
			r.dst = append(r.dst, "</p>\n"...)
		}
	case BlockTable:
		r.dst = append(r.dst, "</table>\n"...)
	case BlockTHead:
		r.dst = append(r.dst, "</thead>\n"...)
	case BlockTBody:
		r.dst = append(r.dst, "</tbody>\n"...)
	case BlockTR:
		r.dst = append(r.dst, "</tr>\n"...)
	case BlockTH:
		r.dst = append(r.dst, "</th>\n"...)
	case BlockTD:
		r.dst = append(r.dst, "</td>\n"...)
	}
	return nil
}

func appendAlignAttr(dst []byte, a Align) []byte {
	switch a {
	case AlignLeft:
		return append(dst, ` style="text-align:left"`...)
	case AlignCenter:
		return append(dst, ` style="text-align:center"`...)
	case AlignRight:
		return append(dst, ` style="text-align:right"`...)
	default:
		return dst
	}
}

func (r *HTMLRenderer) EnterSpan(typ SpanType, detail any) error {
	if r.inAlt() {
		if typ == SpanImg {
			r.altDepth++
		}
		return nil
	}
	switch typ {
	case SpanEM:
		r.dst = append(r.dst, "<em>"...)
	case SpanStrong:
		r.dst = append(r.dst, "<strong>"...)
	case SpanA:
		d := detail.(ADetail)
		href := d.Href.Text
		r.dst = append(r.dst, `<a href="`...)
		if d.IsAutolink && isEmailAddress([]byte(href)) {
			r.dst = append(r.dst, "mailto:"...)
		}
		r.dst = append(r.dst, html.EscapeString(normalizeURI(href))...)
		r.dst = append(r.dst, '"')
		if !d.Title.IsEmpty() {
			r.dst = append(r.dst, ` title="`...)
			r.dst = append(r.dst, html.EscapeString(d.Title.Text)...)
			r.dst = append(r.dst, '"')
		}
		r.dst = append(r.dst, '>')
	case SpanImg:
		r.altDepth = 1
		r.altBuf = r.altBuf[:0]
	case SpanCode:
		r.dst = append(r.dst, "<code>"...)
	case SpanDel:
		r.dst = append(r.dst, "<del>"...)
	case SpanU:
		r.dst = append(r.dst, "<u>"...)
	case SpanLatexMath:
		r.dst = append(r.dst, `<span class="math inline">`...)
	case SpanLatexMathDisplay:
		r.dst = append(r.dst, `<span class="math display">`...)
	case SpanWikiLink:
		d := detail.(WikiLinkDetail)
		r.dst = append(r.dst, `<a class="wikilink" href="`...)
		r.dst = append(r.dst, html.EscapeString(normalizeURI(d.Target.Text))...)
		r.dst = append(r.dst, `">`...)
	}
	return nil
}

func (r *HTMLRenderer) LeaveSpan(typ SpanType, detail any) error {
	if r.inAlt() {
		if typ == SpanImg {
			r.altDepth--
			if r.altDepth == 0 {
				r.flushImage(detail.(ImgDetail))
			}
		}
		return nil
	}
	switch typ {
	case SpanEM:
		r.dst = append(r.dst, "</em>"...)
	case SpanStrong:
		r.dst = append(r.dst, "</strong>"...)
	case SpanA:
		r.dst = append(r.dst, "</a>"...)
	case SpanCode:
		r.dst = append(r.dst, "</code>"...)
	case SpanDel:
		r.dst = append(r.dst, "</del>"...)
	case SpanU:
		r.dst = append(r.dst, "</u>"...)
	case SpanLatexMath, SpanLatexMathDisplay:
		r.dst = append(r.dst, "</span>"...)
	case SpanWikiLink:
		r.dst = append(r.dst, "</a>"...)
	}
	return nil
}

func (r *HTMLRenderer) flushImage(d ImgDetail) {
	r.dst = append(r.dst, `<img src="`...)
	r.dst = append(r.dst, html.EscapeString(normalizeURI(d.Src.Text))...)
	r.dst = append(r.dst, `" alt="`...)
	r.dst = escapeHTML(r.dst, r.altBuf)
	r.dst = append(r.dst, '"')
	if !d.Title.IsEmpty() {
		r.dst = append(r.dst, ` title="`...)
		r.dst = append(r.dst, html.EscapeString(d.Title.Text)...)
		r.dst = append(r.dst, '"')
	}
	r.dst = append(r.dst, " />"...)
}

func (r *HTMLRenderer) Text(typ TextType, text []byte) error {
	if r.inAlt() {
		switch typ {
		case TextBR, TextSoftBR:
			r.altBuf = append(r.altBuf, ' ')
		case TextEntity:
			r.altBuf = append(r.altBuf, html.UnescapeString(string(text))...)
		default:
			r.altBuf = append(r.altBuf, text...)
		}
		return nil
	}
	switch typ {
	case TextNormal, TextNullChar:
		r.dst = escapeHTML(r.dst, text)
	case TextBR:
		r.dst = append(r.dst, "<br />\n"...)
	case TextSoftBR:
		r.dst = append(r.dst, '\n')
	case TextEntity:
		// Already well-formed markup (e.g. "&amp;", "&#65;"); pass through.
		r.dst = append(r.dst, text...)
	case TextCode, TextLatexMath:
		r.dst = escapeHTML(r.dst, text)
	case TextHTML:
		if !r.IgnoreRaw {
			r.dst = append(r.dst, text...)
		}
	}
	return nil
}

// escapeHTML appends the HTML-escaped form of src to dst, avoiding the
// extra allocation a string round-trip through html.EscapeString would
// cost for the common case of a long run of plain text.
func escapeHTML(dst, src []byte) []byte {
	verbatimStart := 0
	for i, b := range src {
		var esc string
		switch b {
		case '&':
			esc = "&amp;"
		case '\'':
			esc = "&#39;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		default:
			continue
		}
		dst = append(dst, src[verbatimStart:i]...)
		dst = append(dst, esc...)
		verbatimStart = i + 1
	}
	return append(dst, src[verbatimStart:]...)
}

// normalizeURI percent-encodes any byte in s that isn't an RFC 3986
// reserved or unreserved URI character, the same transform CommonMark
// mandates for link/image destinations before they reach an href or src
// attribute.
func normalizeURI(s string) string {
	const safeSet = `;/?:@&=+$,-_.!~*'()#`

	var sb strings.Builder
	sb.Grow(len(s))
	skip := 0
	var buf [utf8.UTFMax]byte
	for i, c := range s {
		if skip > 0 {
			skip--
			sb.WriteRune(c)
			continue
		}
		switch {
		case c == '%':
			if i+2 < len(s) && isASCIIHexDigit(s[i+1]) && isASCIIHexDigit(s[i+2]) {
				skip = 2
				sb.WriteByte('%')
			} else {
				sb.WriteString("%25")
			}
		case c < 0x80 && (isASCIIAlnum(byte(c)) || strings.ContainsRune(safeSet, c)):
			sb.WriteRune(c)
		default:
			n := utf8.EncodeRune(buf[:], c)
			for _, b := range buf[:n] {
				sb.WriteByte('%')
				sb.WriteByte(urlHexDigit(b >> 4))
				sb.WriteByte(urlHexDigit(b & 0x0f))
			}
		}
	}
	return sb.String()
}

func urlHexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + n - 10
}
