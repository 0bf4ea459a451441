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

// Flag is a bitmask of parser options. The bit values match md4c's
// MD_FLAG_* constants so that dialect presets translate directly.
type Flag uint32

const (
	// FlagCollapseWhitespace collapses non-trivial whitespace into a single
	// space for Text callbacks of type TextNormal.
	FlagCollapseWhitespace Flag = 0x0001
	// FlagPermissiveATXHeaders allows ATX headers without a following space
	// (e.g. "###Foo").
	FlagPermissiveATXHeaders Flag = 0x0002
	// FlagPermissiveURLAutolinks recognizes http://, https:// and ftp://
	// URLs as autolinks even without angle brackets.
	FlagPermissiveURLAutolinks Flag = 0x0004
	// FlagPermissiveEmailAutolinks recognizes e-mail addresses as autolinks
	// even without angle brackets.
	FlagPermissiveEmailAutolinks Flag = 0x0008
	// FlagNoIndentedCodeBlocks disables indented code blocks. Lines that
	// would otherwise start one are treated as paragraph text.
	FlagNoIndentedCodeBlocks Flag = 0x0010
	// FlagNoHTMLBlocks disables raw HTML blocks.
	FlagNoHTMLBlocks Flag = 0x0020
	// FlagNoHTMLSpans disables raw HTML spans.
	FlagNoHTMLSpans Flag = 0x0040
	// FlagTables enables GFM tables.
	FlagTables Flag = 0x0100
	// FlagStrikethrough enables GFM strikethrough (~~foo~~).
	FlagStrikethrough Flag = 0x0200
	// FlagPermissiveWWWAutolinks recognizes "www." prefixed autolinks even
	// without angle brackets or a scheme.
	FlagPermissiveWWWAutolinks Flag = 0x0400
	// FlagTaskLists enables GFM task list items ("- [ ] foo").
	FlagTaskLists Flag = 0x0800
	// FlagLatexMathSpans enables $ and $$ delimited math spans.
	FlagLatexMathSpans Flag = 0x1000
	// FlagWikiLinks enables [[wiki links]].
	FlagWikiLinks Flag = 0x2000
	// FlagUnderline enables underline spans (_foo_ means underline, not
	// emphasis, and emphasis is only triggered by asterisks). Mutually
	// exclusive in practice with most prose that uses underscores for
	// emphasis; see spec.md §4.6.
	FlagUnderline Flag = 0x4000
	// FlagHardSoftBreaks renders every soft line break as a hard line break.
	FlagHardSoftBreaks Flag = 0x8000
)

// FlagPermissiveAutolinks is the union of all three permissive-autolink
// flags.
const FlagPermissiveAutolinks = FlagPermissiveURLAutolinks | FlagPermissiveEmailAutolinks | FlagPermissiveWWWAutolinks

// FlagNoHTML disables both raw HTML blocks and raw HTML spans.
const FlagNoHTML = FlagNoHTMLBlocks | FlagNoHTMLSpans

// Dialect presets, matching md4c's MD_DIALECT_* constants.
const (
	// DialectCommonMark is plain CommonMark with no extensions.
	DialectCommonMark Flag = 0
	// DialectGitHub approximates GitHub's rendering dialect: permissive
	// autolinks, tables, strikethrough and task lists.
	DialectGitHub = FlagPermissiveAutolinks | FlagTables | FlagStrikethrough | FlagTaskLists
)

func (f Flag) has(bits Flag) bool {
	return f&bits == bits
}
