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

// span is a half-open byte range [start, end) into the parser's source
// buffer. It never outlives a single call to Parse.
type span struct {
	start, end int
}

func nullSpan() span { return span{-1, -1} }

func (s span) isValid() bool { return s.start >= 0 && s.end >= s.start }

func (s span) len() int { return s.end - s.start }

func (s span) bytes(source []byte) []byte {
	if !s.isValid() {
		return nil
	}
	return source[s.start:s.end]
}
