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
	"hash/fnv"
	"strings"
)

// refDef is one resolved link reference definition (spec.md §4.4),
// already decomposed into attributes so link resolution never has to
// touch raw spans.
type refDef struct {
	dest  Attribute
	title Attribute
}

// refBudget caps the total bytes of label+title+dest this repo will index
// across every reference definition in a document: min(16*len(source),
// 1<<20), matching md4c's own (undocumented) DoS guard (spec.md §4.4, §9,
// and the Open Question decision recorded in SPEC_FULL.md).
func refBudget(sourceLen int) int {
	const cap = 1 << 20
	b := 16 * sourceLen
	if b > cap {
		b = cap
	}
	return b
}

// refTable is a normalized-label lookup table built once per Parse from
// every link reference definition collected while building the block
// tree. Collisions are resolved by first-definition-wins, matching
// CommonMark's "first definition takes precedence" rule.
type refTable struct {
	byHash map[uint64][]refEntry
}

type refEntry struct {
	label string // normalized (case-folded, whitespace-collapsed) label
	def   refDef
}

func normalizeRefLabel(raw string) string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return isUnicodeWhitespace(r) })
	return foldCase(strings.Join(fields, " "))
}

func hashRefLabel(label string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return h.Sum64()
}

// buildRefTable walks the closed document tree collecting kindLinkRefDef
// blocks (spliced out of paragraphs by replaceRefDefs) into a normalized
// lookup table, stopping once refBudget is exhausted.
func buildRefTable(source []byte, root *block) *refTable {
	rt := &refTable{byHash: make(map[uint64][]refEntry)}
	budget := refBudget(len(source))
	var walk func(b *block)
	walk = func(b *block) {
		if budget <= 0 {
			return
		}
		if b.kind == kindLinkRefDef {
			label := normalizeRefLabel(buildAttribute(source, b.refLabel).Text)
			if label == "" {
				return
			}
			def := refDef{dest: buildAttribute(source, b.refDest)}
			if b.refHasTitle {
				def.title = buildAttribute(source, b.refTitle)
			}
			cost := len(label) + len(def.dest.Text) + len(def.title.Text)
			if cost > budget {
				budget = 0
				return
			}
			h := hashRefLabel(label)
			for _, e := range rt.byHash[h] {
				if e.label == label {
					return // first definition wins
				}
			}
			rt.byHash[h] = append(rt.byHash[h], refEntry{label: label, def: def})
			budget -= cost
			return
		}
		for _, c := range b.children {
			walk(c)
		}
	}
	walk(root)
	return rt
}

func (rt *refTable) lookup(rawLabel string) (refDef, bool) {
	label := normalizeRefLabel(rawLabel)
	if label == "" {
		return refDef{}, false
	}
	for _, e := range rt.byHash[hashRefLabel(label)] {
		if e.label == label {
			return e.def, true
		}
	}
	return refDef{}, false
}
