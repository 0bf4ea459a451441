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
	"bytes"
	"strings"
	"testing"
)

// tokenizeLine runs tokenizeInline over a single logical line, as a leaf
// block's content would be materialized by buildTextBuf.
func tokenizeLine(src string, cfg Flag) []*inlineNode {
	buf := []byte(src)
	lines := []lineRecord{{beg: 0, end: len(buf)}}
	tb := buildTextBuf(buf, lines)
	return tokenizeInline(tb, cfg)
}

func TestComputeDelimFlagsAsterisk(t *testing.T) {
	buf := []byte("foo *bar* baz")
	open := bytes.IndexByte(buf, '*')
	close := bytes.LastIndexByte(buf, '*')

	canOpen, canClose := computeDelimFlags(buf, open, open+1, '*')
	if !canOpen || canClose {
		t.Errorf("computeDelimFlags(opening *) = (%v, %v); want (true, false)", canOpen, canClose)
	}
	canOpen, canClose = computeDelimFlags(buf, close, close+1, '*')
	if canOpen || !canClose {
		t.Errorf("computeDelimFlags(closing *) = (%v, %v); want (false, true)", canOpen, canClose)
	}
}

func TestComputeDelimFlagsAsteriskIntraword(t *testing.T) {
	// Unlike '_', '*' can flank on both sides even mid-word.
	buf := []byte("foo*bar*baz")
	first := bytes.IndexByte(buf, '*')
	canOpen, canClose := computeDelimFlags(buf, first, first+1, '*')
	if !canOpen || !canClose {
		t.Errorf("computeDelimFlags(intraword *) = (%v, %v); want (true, true)", canOpen, canClose)
	}
}

func TestComputeDelimFlagsUnderscoreIntraword(t *testing.T) {
	// CommonMark's extra restriction: an intraword "_" run can neither
	// open nor close emphasis.
	buf := []byte("foo_bar_baz")
	first := bytes.IndexByte(buf, '_')
	canOpen, canClose := computeDelimFlags(buf, first, first+1, '_')
	if canOpen || canClose {
		t.Errorf("computeDelimFlags(intraword _) = (%v, %v); want (false, false)", canOpen, canClose)
	}
}

func TestComputeDelimFlagsUnderscoreWordBoundary(t *testing.T) {
	buf := []byte("foo _bar_ baz")
	open := bytes.IndexByte(buf, '_')
	close := bytes.LastIndexByte(buf, '_')
	canOpen, canClose := computeDelimFlags(buf, open, open+1, '_')
	if !canOpen || canClose {
		t.Errorf("computeDelimFlags(opening _) = (%v, %v); want (true, false)", canOpen, canClose)
	}
	canOpen, canClose = computeDelimFlags(buf, close, close+1, '_')
	if canOpen || !canClose {
		t.Errorf("computeDelimFlags(closing _) = (%v, %v); want (false, true)", canOpen, canClose)
	}
}

func TestRuleOfThreeOK(t *testing.T) {
	tests := []struct {
		name                string
		openRun, closeRun   int
		openBoth, closeBoth bool
		want                bool
	}{
		{"neither can both open+close", 1, 2, false, false, true},
		{"sum not multiple of 3", 2, 2, true, true, true},
		{"sum multiple of 3, both divisible", 3, 3, true, true, true},
		{"sum multiple of 3, not both divisible", 1, 2, true, true, false},
		{"only opener can both", 3, 3, true, false, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ruleOfThreeOK(test.openRun, test.closeRun, test.openBoth, test.closeBoth)
			if got != test.want {
				t.Errorf("ruleOfThreeOK(%d, %d, %v, %v) = %v; want %v",
					test.openRun, test.closeRun, test.openBoth, test.closeBoth, got, test.want)
			}
		})
	}
}

func TestDelimUseCount(t *testing.T) {
	tests := []struct {
		ch                byte
		openRun, closeRun int
		want              int
	}{
		{'*', 1, 1, 1},
		{'*', 2, 2, 2},
		{'*', 3, 1, 1},
		{'_', 2, 3, 2},
		{'~', 1, 1, 1},
		{'~', 2, 2, 2}, // tilde runs are capped at length 2 by the tokenizer,
		// and resolveEmphasisSegment only ever pairs equal-length runs.
	}
	for _, test := range tests {
		if got := delimUseCount(test.ch, test.openRun, test.closeRun); got != test.want {
			t.Errorf("delimUseCount(%q, %d, %d) = %d; want %d", test.ch, test.openRun, test.closeRun, got, test.want)
		}
	}
}

func TestDelimSpanType(t *testing.T) {
	tests := []struct {
		ch        byte
		use       int
		underline bool
		want      SpanType
	}{
		{'*', 1, false, SpanEM},
		{'*', 2, false, SpanStrong},
		{'_', 1, false, SpanEM},
		{'_', 2, false, SpanStrong},
		{'_', 1, true, SpanU},
		{'_', 2, true, SpanU},
		{'~', 1, false, SpanDel},
		{'~', 2, false, SpanDel},
	}
	for _, test := range tests {
		got := delimSpanType(test.ch, test.use, test.underline)
		if got != test.want {
			t.Errorf("delimSpanType(%q, %d, %v) = %v; want %v", test.ch, test.use, test.underline, got, test.want)
		}
	}
}

func TestTokenizeInlineBacktickRunOver32NeverFormsCodeSpan(t *testing.T) {
	// 33 backticks, some content, 33 backticks: a run this long can never
	// open a code span (spec.md §4.5), so both runs must come back as
	// literal text, not a kindCode token.
	src := strings.Repeat("`", 33) + " code " + strings.Repeat("`", 33)
	tokens := tokenizeLine(src, Flag(0))
	for _, tok := range tokens {
		if tok.kind == kindCode {
			t.Fatalf("tokenizeInline(%d-backtick run) produced a kindCode token; want none", 33)
		}
	}
	var got bytes.Buffer
	for _, tok := range tokens {
		if tok.kind == kindText {
			got.WriteString(tok.text.Text)
		}
	}
	if got.String() != src {
		t.Errorf("tokenizeInline(%d-backtick run) literal text = %q; want %q", 33, got.String(), src)
	}
}

func TestTokenizeInlineBacktickRunAt32StillFormsCodeSpan(t *testing.T) {
	// A 32-backtick run is still within bounds and should pair normally.
	src := strings.Repeat("`", 32) + "code" + strings.Repeat("`", 32)
	tokens := tokenizeLine(src, Flag(0))
	found := false
	for _, tok := range tokens {
		if tok.kind == kindCode {
			found = true
		}
	}
	if !found {
		t.Errorf("tokenizeInline(32-backtick run) produced no kindCode token; want one")
	}
}

func TestResolveEmphasisSegmentMismatchedTildeLengthsDontPair(t *testing.T) {
	// "~~b~c~~": the inner single '~' must not close against the outer
	// double '~' opener (md4c.c:217-218,3803-3818 keeps length-1 and
	// length-2 tilde openers on disjoint stacks). Only the outer pair
	// forms a <del>, and the inner '~' survives as literal text.
	var buf bytes.Buffer
	if err := RenderHTML(&buf, []byte("~~b~c~~\n"), Config{Flags: FlagStrikethrough}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	const want = "<p><del>b~c</del></p>\n"
	if got != want {
		t.Errorf("RenderHTML(%q) = %q; want %q", "~~b~c~~", got, want)
	}
}

func TestTokenizeInlineTildeRunOver2IsLiteral(t *testing.T) {
	src := "~~~gone~~~"
	tokens := tokenizeLine(src, FlagStrikethrough)
	for _, tok := range tokens {
		if tok.kind == kindDelim {
			t.Fatalf("tokenizeInline(%q) produced a kindDelim token for a 3-tilde run; want none", src)
		}
	}
}

func TestTokenizeInlineDollarRunOver2IsLiteral(t *testing.T) {
	// "$$$x$$$": both runs are 3 dollars long, so neither may open a math
	// span, and no length-1 or length-2 sub-run of them may synthesize one
	// out of leftover '$'.
	src := "$$$x$$$"
	tokens := tokenizeLine(src, FlagLatexMathSpans)
	for _, tok := range tokens {
		if tok.kind == kindLatex {
			t.Fatalf("tokenizeInline(%q) produced a kindLatex token for a 3-dollar run; want none", src)
		}
	}
}
