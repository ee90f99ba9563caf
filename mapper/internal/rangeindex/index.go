/*
   Copyright 2026 The Winstat Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package rangeindex provides a most-specific-wins interval index over
// 16-bit status ids.
//
// Rules are inclusive [lo, hi] spans. Spans may overlap; on lookup the
// narrowest span containing the id wins, so a rule for a single id beats a
// rule for the whole block it sits in. This mirrors longest-prefix matching,
// just over numeric intervals instead of name segments.
package rangeindex

import (
	"errors"
	"sort"
)

// Index is an interval index mapping inclusive id spans to values of type T.
//
// Usage is two-phased: Insert all spans, call Freeze exactly once, then look
// up with Match. After Freeze the index is immutable and safe for concurrent
// readers.
type Index[T any] struct {
	spans []span[T]
}

// span is one inclusive [lo, hi] rule.
type span[T any] struct {
	lo, hi uint16
	val    T
}

var (
	// ErrInvalidSpan is returned when inserting a span whose lower bound
	// exceeds its upper bound.
	ErrInvalidSpan = errors.New("rangeindex: invalid span")
)

// New creates an empty index ready for inserts.
func New[T any]() *Index[T] {
	return &Index[T]{}
}

// Insert adds the inclusive span [lo, hi] to the index and associates it
// with val. Single-id rules are expressed as lo == hi. Overlapping spans are
// allowed; lookup preference is decided at Freeze time.
// Returns ErrInvalidSpan when lo > hi.
func (x *Index[T]) Insert(lo, hi uint16, val T) error {
	if x == nil || lo > hi {
		return ErrInvalidSpan
	}
	x.spans = append(x.spans, span[T]{lo: lo, hi: hi, val: val})
	return nil
}

// Freeze orders the spans narrowest-first so that Match can return the
// first containing span it finds. The sort is stable: among spans of equal
// width, the one inserted first wins.
//
// Match must not be called before Freeze, and Insert must not be called
// after it. The index performs no locking; the caller owns the build phase.
func (x *Index[T]) Freeze() {
	if x == nil {
		return
	}
	sort.SliceStable(x.spans, func(i, j int) bool {
		wi := uint32(x.spans[i].hi) - uint32(x.spans[i].lo)
		wj := uint32(x.spans[j].hi) - uint32(x.spans[j].lo)
		return wi < wj
	})
}

// Match finds the most specific span containing id and returns its value.
// It returns (value, true) on success, or the zero value and false when no
// span contains the id.
//
// The scan is allocation-free and exits on the first hit, which after
// Freeze is guaranteed to be the narrowest containing span.
func (x *Index[T]) Match(id uint16) (T, bool) {
	var zero T
	if x == nil {
		return zero, false
	}
	for i := range x.spans {
		if x.spans[i].lo <= id && id <= x.spans[i].hi {
			return x.spans[i].val, true
		}
	}
	return zero, false
}

// MatchWithSpan is Match plus the matched span's bounds, for diagnostics
// such as Mapper.Explain. It reuses the same first-hit scan as Match.
func (x *Index[T]) MatchWithSpan(id uint16) (val T, ok bool, lo, hi uint16) {
	var zero T
	if x == nil {
		return zero, false, 0, 0
	}
	for i := range x.spans {
		if x.spans[i].lo <= id && id <= x.spans[i].hi {
			return x.spans[i].val, true, x.spans[i].lo, x.spans[i].hi
		}
	}
	return zero, false, 0, 0
}

// Len returns the number of spans in the index.
func (x *Index[T]) Len() int {
	if x == nil {
		return 0
	}
	return len(x.spans)
}
