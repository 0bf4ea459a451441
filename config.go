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
	"errors"
	"fmt"
)

// Config controls the parser's dialect and behavior.
type Config struct {
	// Flags selects which optional CommonMark/GFM behaviors are enabled.
	// The zero value is DialectCommonMark.
	Flags Flag
}

// ErrNilRenderer is returned by Parse if r is nil. No parsing work is
// performed, mirroring md4c's immediate-return-on-ABI-mismatch behavior
// for malformed call arguments (spec.md §7): a programmer error in how
// the parser was invoked is reported before any input is touched.
var ErrNilRenderer = errors.New("md4c: nil Renderer")

// ErrInternal reports an unrecoverable internal parser failure: any panic
// raised while parsing or rendering is recovered at the Parse boundary and
// reported as ErrInternal. Go has no analogue to md4c's out-of-memory
// return code since allocation failure is not a recoverable condition
// here; this is the closest equivalent.
var ErrInternal = errors.New("md4c: internal error")

// Parse performs a single streaming pass over source, invoking r's
// methods in document order. It returns the first error returned by any
// Renderer method, unmodified so that errors.Is/As still matches a
// renderer's own sentinel errors. It returns ErrInternal, wrapped with
// additional context, if the parser itself fails (that is, if anything
// called during Parse panics).
func Parse(source []byte, cfg Config, r Renderer) (err error) {
	if r == nil {
		return ErrNilRenderer
	}
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = fmt.Errorf("%w: %v", ErrInternal, e)
			} else {
				err = fmt.Errorf("%w: %v", ErrInternal, rec)
			}
		}
	}()

	p := &parser{
		source: source,
		cfg:    cfg,
		r:      r,
	}
	if dbg, ok := r.(DebugLogger); ok {
		p.debug = dbg.DebugLog
	}
	return p.run()
}
