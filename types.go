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

// BlockType identifies the kind of a block passed to Renderer.EnterBlock
// and Renderer.LeaveBlock. The member order matches md4c.h's MD_BLOCKTYPE.
type BlockType int

const (
	BlockDoc BlockType = iota
	BlockQuote
	BlockUL
	BlockOL
	BlockLI
	BlockHR
	BlockH
	BlockCode
	BlockHTML
	BlockP
	BlockTable
	BlockTHead
	BlockTBody
	BlockTR
	BlockTH
	BlockTD
)

//go:generate stringer -type=BlockType,SpanType,TextType,Align -output=kind_string.go

// SpanType identifies the kind of an inline span passed to
// Renderer.EnterSpan and Renderer.LeaveSpan. The member order matches
// md4c.h's MD_SPANTYPE.
type SpanType int

const (
	SpanEM SpanType = iota
	SpanStrong
	SpanA
	SpanImg
	SpanCode
	SpanDel
	SpanLatexMath
	SpanLatexMathDisplay
	SpanWikiLink
	SpanU
)

// TextType identifies the kind of a run of text passed to Renderer.Text.
// The member order matches md4c.h's MD_TEXTTYPE.
type TextType int

const (
	// TextNormal is ordinary text.
	TextNormal TextType = iota
	// TextNullChar is a NUL byte found in the input, reported as its own
	// run. The bytes passed are already the U+FFFD replacement CommonMark
	// mandates, not the NUL itself.
	TextNullChar
	// TextBR is an explicit hard line break (trailing backslash or two-plus
	// trailing spaces).
	TextBR
	// TextSoftBR is a soft line break (a single newline inside a paragraph
	// or heading that isn't a hard break).
	TextSoftBR
	// TextEntity is an HTML entity or numeric character reference, reported
	// verbatim (e.g. "&amp;", "&#65;").
	TextEntity
	// TextCode is text inside a code span or code block.
	TextCode
	// TextHTML is raw HTML (a span or the content of an HTML block).
	TextHTML
	// TextLatexMath is text inside a LaTeX math span.
	TextLatexMath
)

// Align is the column alignment of a GFM table column or cell.
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Substring marks the type of one contiguous run within an Attribute's
// Text.
type Substring struct {
	Type   TextType
	Offset int
}

// Attribute is composite text belonging to a single logical value (a link
// destination, a title, an info string, ...) that may interleave literal
// text with entities and NUL replacements. Text holds the fully decoded
// value; Substrings partitions it, in order, by the TextType each byte run
// came from. Substrings[0].Offset is always 0 and an implicit final
// boundary sits at len(Text); only TextNormal, TextEntity and
// TextNullChar ever appear as a Substring.Type.
type Attribute struct {
	Text       string
	Substrings []Substring
}

// IsEmpty reports whether the attribute carries no text at all. A value
// that is present in the source but empty (e.g. an empty link title `""`)
// also yields an empty Attribute, so the two cases are not distinguished.
func (a Attribute) IsEmpty() bool {
	return a.Text == "" && a.Substrings == nil
}

// ULDetail carries the extra information for a BlockUL (bulleted list).
type ULDetail struct {
	// IsTight is true if the list is "tight": no blank line separates any
	// of its items, so item contents render without wrapping paragraphs.
	IsTight bool
	// Mark is the bullet character used, one of '-', '+' or '*'.
	Mark byte
}

// OLDetail carries the extra information for a BlockOL (ordered list).
type OLDetail struct {
	// Start is the start number of the list, taken from its first item.
	Start uint
	IsTight bool
	// MarkDelimiter is the character following the item number, '.' or ')'.
	MarkDelimiter byte
}

// LIDetail carries the extra information for a BlockLI (list item).
type LIDetail struct {
	// IsTask is true if this item begins with a GFM task list marker
	// ("[ ]", "[x]" or "[X]").
	IsTask bool
	// TaskMark is the character inside the brackets when IsTask is true:
	// ' ', 'x' or 'X'.
	TaskMark byte
	// TaskMarkOffset is the byte offset of TaskMark within the document,
	// provided so a renderer can re-derive the exact source text of the
	// checkbox.
	TaskMarkOffset int
}

// HDetail carries the extra information for a BlockH (ATX or Setext
// heading).
type HDetail struct {
	// Level is the heading level, 1 through 6.
	Level uint
}

// CodeDetail carries the extra information for a BlockCode (indented or
// fenced code block).
type CodeDetail struct {
	// Info is the fenced code block's info string, or the empty Attribute
	// for indented code blocks.
	Info Attribute
	// Lang is the first whitespace-delimited word of Info, conventionally
	// used as the syntax-highlighting language tag.
	Lang Attribute
	// FenceChar is the fence character used, '`' or '~', or 0 for an
	// indented code block.
	FenceChar byte
}

// TableDetail carries the extra information for a BlockTable.
type TableDetail struct {
	ColCount     uint
	HeadRowCount uint
	BodyRowCount uint
}

// TDDetail carries the extra information for a BlockTH or BlockTD cell.
type TDDetail struct {
	Align Align
}

// ADetail carries the extra information for a SpanA (link).
type ADetail struct {
	Href Attribute
	Title Attribute
	// IsAutolink is true if the link was written as a bare autolink
	// (<http://...>, or recognized via a permissive-autolink flag) rather
	// than the [text](dest) or [text][ref] forms.
	IsAutolink bool
}

// ImgDetail carries the extra information for a SpanImg (image).
type ImgDetail struct {
	Src   Attribute
	Title Attribute
}

// WikiLinkDetail carries the extra information for a SpanWikiLink.
type WikiLinkDetail struct {
	Target Attribute
}

// Renderer receives the callback sequence described in spec.md §6 as Parse
// walks the document. Any method may return a non-nil error to abort
// parsing immediately; Parse returns that error to its caller unmodified
// so that errors.Is/As against a renderer's own sentinel errors works
// after round-tripping.
//
// detail is one of the *Detail structs above, or nil for block/span types
// that carry no extra information (BlockDoc, BlockQuote, BlockHR,
// BlockHTML, BlockP, BlockTHead, BlockTBody, BlockTR, SpanEM, SpanStrong,
// SpanCode, SpanDel,
// SpanLatexMath, SpanLatexMathDisplay, SpanU).
type Renderer interface {
	EnterBlock(typ BlockType, detail any) error
	LeaveBlock(typ BlockType, detail any) error
	EnterSpan(typ SpanType, detail any) error
	LeaveSpan(typ SpanType, detail any) error
	Text(typ TextType, text []byte) error
}

// DebugLogger is an optional interface a Renderer may additionally
// implement to receive internal diagnostic messages. It never affects
// parsing and is never required for correctness.
type DebugLogger interface {
	DebugLog(msg string)
}
