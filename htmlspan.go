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
	"strings"

	"golang.org/x/net/html/atom"
)

// htmlBlockConditions is the set of HTML block start and end conditions
// (https://spec.commonmark.org/0.30/#html-blocks), indexed by condition
// number minus one.
var htmlBlockConditions = []struct {
	startCondition        func(line []byte) bool
	endCondition          func(line []byte) bool
	canInterruptParagraph bool
}{
	{
		startCondition: func(line []byte) bool {
			for _, starter := range htmlBlockStarters1 {
				if hasCaseInsensitiveBytePrefix(line, starter) {
					rest := line[len(starter):]
					if len(rest) == 0 || isSpaceTabOrLineEnding(rest[0]) || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		endCondition: func(line []byte) bool {
			for _, ender := range htmlBlockEnders1 {
				if caseInsensitiveContains(line, ender) {
					return true
				}
			}
			return false
		},
		canInterruptParagraph: true,
	},
	{
		startCondition: func(line []byte) bool { return hasBytePrefix(line, "<!--") },
		endCondition:   func(line []byte) bool { return bytesContainsString(line, "-->") },
		canInterruptParagraph: true,
	},
	{
		startCondition: func(line []byte) bool { return hasBytePrefix(line, "<?") },
		endCondition:   func(line []byte) bool { return bytesContainsString(line, "?>") },
		canInterruptParagraph: true,
	},
	{
		startCondition: func(line []byte) bool {
			return hasBytePrefix(line, "<!") && len(line) >= 3 && isASCIIAlpha(line[2])
		},
		endCondition:          func(line []byte) bool { return bytesContainsString(line, ">") },
		canInterruptParagraph: true,
	},
	{
		startCondition: func(line []byte) bool { return hasBytePrefix(line, "<![CDATA[") },
		endCondition:   func(line []byte) bool { return bytesContainsString(line, "]]>") },
		canInterruptParagraph: true,
	},
	{
		startCondition: func(line []byte) bool {
			switch {
			case hasBytePrefix(line, "</"):
				line = line[2:]
			case hasBytePrefix(line, "<"):
				line = line[1:]
			default:
				return false
			}
			for _, starter := range htmlBlockStarters6 {
				if hasCaseInsensitiveBytePrefix(line, starter) {
					rest := line[len(starter):]
					if len(rest) == 0 || isSpaceTabOrLineEnding(rest[0]) || rest[0] == '>' || hasBytePrefix(rest, "/>") {
						return true
					}
				}
			}
			return false
		},
		endCondition:          isBlankLineBytes,
		canInterruptParagraph: true,
	},
	{
		startCondition: func(line []byte) bool {
			if !hasBytePrefix(line, "<") {
				return false
			}
			var end int
			if hasBytePrefix(line, "</") {
				end = htmlClosingTagEnd(line, 1)
			} else {
				end = htmlOpenTagEnd(line, 1)
			}
			if end < 0 {
				return false
			}
			return isBlankLineBytes(line[end:])
		},
		endCondition:          isBlankLineBytes,
		canInterruptParagraph: false,
	},
}

var (
	htmlBlockStarters1 = []string{"<pre", "<script", "<style", "<textarea"}
	htmlBlockEnders1   = []string{"</pre>", "</script>", "</style>", "</textarea>"}

	htmlBlockStarters6 = []string{
		atom.Address.String(), atom.Article.String(), atom.Aside.String(),
		atom.Base.String(), atom.Basefont.String(), atom.Blockquote.String(),
		atom.Body.String(), atom.Caption.String(), atom.Center.String(),
		atom.Col.String(), atom.Colgroup.String(), atom.Dd.String(),
		atom.Details.String(), atom.Dialog.String(), atom.Dir.String(),
		atom.Div.String(), atom.Dl.String(), atom.Dt.String(),
		atom.Fieldset.String(), atom.Figcaption.String(), atom.Figure.String(),
		atom.Footer.String(), atom.Form.String(), atom.Frame.String(),
		atom.Frameset.String(), atom.H1.String(), atom.H2.String(),
		atom.H3.String(), atom.H4.String(), atom.H5.String(), atom.H6.String(),
		atom.Head.String(), atom.Header.String(), atom.Hr.String(),
		atom.Html.String(), atom.Iframe.String(), atom.Legend.String(),
		atom.Li.String(), atom.Link.String(), atom.Main.String(),
		atom.Menu.String(), atom.Menuitem.String(), atom.Nav.String(),
		atom.Noframes.String(), atom.Ol.String(), atom.Optgroup.String(),
		atom.Option.String(), atom.P.String(), atom.Param.String(),
		atom.Section.String(), atom.Source.String(), atom.Summary.String(),
		atom.Table.String(), atom.Tbody.String(), atom.Td.String(),
		atom.Tfoot.String(), atom.Th.String(), atom.Thead.String(),
		atom.Title.String(), atom.Tr.String(), atom.Track.String(),
		atom.Ul.String(),
	}
)

func hasCaseInsensitiveBytePrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toLowerASCII(prefix[i]) != toLowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func caseInsensitiveContains(b []byte, search string) bool {
	for i := 0; i+len(search) <= len(b); i++ {
		if hasCaseInsensitiveBytePrefix(b[i:], search) {
			return true
		}
	}
	return false
}

func bytesContainsString(b []byte, search string) bool {
	return strings.Contains(string(b), search)
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func isUnquotedAttributeValueChar(c byte) bool {
	return !isSpaceTabOrLineEnding(c) && strings.IndexByte("\"'=<>`", c) < 0
}

// htmlTag recognizes a complete raw HTML construct (tag, comment,
// processing instruction, declaration or CDATA section) at line[i],
// where line[i] == '<'. It returns the end offset, or -1 if none matches.
func htmlTag(line []byte, i int) int {
	const (
		cdataPrefix = "[CDATA["
		cdataSuffix = "]]>"
	)
	if i >= len(line) || line[i] != '<' {
		return -1
	}
	j := i + 1
	if j >= len(line) {
		return -1
	}
	switch line[j] {
	case '?':
		j++
		end := strings.Index(string(line[j:]), "?>")
		if end < 0 {
			return -1
		}
		return j + end + 2
	case '!':
		rest := line[j+1:]
		switch {
		case len(rest) > 0 && isASCIIAlpha(rest[0]):
			end := indexByteFromBytes(line, '>', j+1)
			if end < 0 {
				return -1
			}
			return end + 1
		case hasBytePrefix(rest, "--"):
			body := j + 1 + 2
			if hasBytePrefix(line[body:], ">") || hasBytePrefix(line[body:], "->") {
				return -1
			}
			end := strings.Index(string(line[body:]), "-->")
			if end < 0 {
				return -1
			}
			return body + end + 3
		case hasBytePrefix(rest, cdataPrefix):
			body := j + 1 + len(cdataPrefix)
			end := strings.Index(string(line[body:]), cdataSuffix)
			if end < 0 {
				return -1
			}
			return body + end + len(cdataSuffix)
		default:
			return -1
		}
	case '/':
		return htmlClosingTagEnd(line, i+1)
	default:
		return htmlOpenTagEnd(line, i+1)
	}
}

// htmlOpenTagEnd parses an open tag starting at i (just past '<') and
// returns its end offset, or -1 if line[i:] isn't one.
func htmlOpenTagEnd(line []byte, i int) int {
	i = htmlTagNameEnd(line, i)
	if i < 0 {
		return -1
	}
	for {
		before := i
		i = skipHTMLSpace(line, i)
		if i >= len(line) {
			return -1
		}
		switch line[i] {
		case '/':
			i++
			if i >= len(line) || line[i] != '>' {
				return -1
			}
			return i + 1
		case '>':
			return i + 1
		}
		if i == before {
			return -1
		}
		next, ok := htmlAttributeEnd(line, i)
		if !ok {
			return -1
		}
		i = next
	}
}

// htmlClosingTagEnd parses a closing tag starting at i (just past '<' for
// a full tag, or at the '/' for </tag>) and returns its end offset.
func htmlClosingTagEnd(line []byte, i int) int {
	if i >= len(line) || line[i] != '/' {
		return -1
	}
	i++
	i = htmlTagNameEnd(line, i)
	if i < 0 {
		return -1
	}
	i = skipHTMLSpace(line, i)
	if i >= len(line) || line[i] != '>' {
		return -1
	}
	return i + 1
}

func htmlTagNameEnd(line []byte, i int) int {
	if i >= len(line) || !isASCIIAlpha(line[i]) {
		return -1
	}
	i++
	for i < len(line) && (isASCIIAlpha(line[i]) || isASCIIDigit(line[i]) || line[i] == '-') {
		i++
	}
	return i
}

func htmlAttributeEnd(line []byte, i int) (int, bool) {
	if i >= len(line) {
		return i, false
	}
	if c := line[i]; !isASCIIAlpha(c) && c != '_' && c != ':' {
		return i, false
	}
	i++
	for i < len(line) && (isASCIIAlpha(line[i]) || isASCIIDigit(line[i]) || strings.IndexByte("_.:-", line[i]) >= 0) {
		i++
	}

	before := i
	j := skipHTMLSpace(line, i)
	if j >= len(line) || line[j] != '=' {
		return before, true
	}
	j++
	j = skipHTMLSpace(line, j)
	if j >= len(line) {
		return i, false
	}
	switch c := line[j]; {
	case c == '\'' || c == '"':
		j++
		end := indexByteFromBytes(line, c, j)
		if end < 0 {
			return i, false
		}
		return end + 1, true
	case isUnquotedAttributeValueChar(c):
		for j < len(line) && isUnquotedAttributeValueChar(line[j]) {
			j++
		}
		return j, true
	default:
		return i, false
	}
}

func skipHTMLSpace(line []byte, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t' || line[i] == '\r' || line[i] == '\n') {
		i++
	}
	return i
}

func indexByteFromBytes(b []byte, c byte, from int) int {
	for i := from; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}
