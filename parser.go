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

// parser holds the state of a single Parse call: the source being
// parsed, its configuration, the caller's Renderer and optional debug
// sink. It never outlives the Parse call that created it.
type parser struct {
	source []byte
	cfg    Config
	r      Renderer
	debug  func(string)
}

// run builds the ephemeral block tree, indexes link reference
// definitions, and renders the result through p.r, in that order (spec.md
// §4.2-§4.8).
func (p *parser) run() error {
	root := buildDocument(p.source, p.cfg.Flags)
	if p.debug != nil {
		p.debug("block tree built")
	}
	refs := buildRefTable(p.source, root)
	return renderDocument(p.source, root, refs, p.cfg.Flags, p.r)
}
