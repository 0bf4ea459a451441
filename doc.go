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

// Package md4c is a streaming [CommonMark] parser with configurable GitHub
// Flavored Markdown style extensions.
//
// Unlike a typical Markdown library, md4c does not hand back an abstract
// syntax tree. Instead, [Parse] performs a single synchronous pass over the
// input and invokes the methods of a caller-supplied [Renderer] in document
// order, the same way an XML SAX parser invokes handler callbacks. This
// lets a caller build whatever representation (a tree, a token stream,
// direct HTML output) it actually wants. Internally, Parse builds a block
// tree for the whole document and discards it before returning, so its
// memory use grows with the size of the document.
//
// [CommonMark]: https://commonmark.org/
package md4c
