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

package winstat

import "fmt"

// Field identifies which constructor argument failed its range check.
//
// It is defined as a separate type (not just string) so that callers
// matching on a *RangeError can explicitly declare which field they expect.
type Field string

// The three fields that New range-checks, in check order.
const (
	// FieldID marks a status id that does not fit in 16 bits.
	FieldID Field = "id"

	// FieldSeverity marks a severity that does not fit in 2 bits.
	FieldSeverity Field = "severity"

	// FieldFacility marks a facility that does not fit in 12 bits
	// (11 bits when reported by Code.HRESULT).
	FieldFacility Field = "facility"
)

// RangeError reports a constructor argument whose bit pattern has bits set
// above the field's legal width. It carries the offending value unchanged so
// the caller can decide how to handle it — reject, clamp and retry, or
// surface to its own caller. The library itself never recovers or
// substitutes a default.
type RangeError struct {
	// Field names the offending constructor argument.
	Field Field

	// Value is the raw input as supplied, including any sign bits.
	Value int32

	// Bits is the legal width of the field.
	Bits int
}

// Error implements the built-in error interface.
//
// The offending value is formatted as its unsigned hex bit pattern, which
// keeps negative inputs readable ("0xFFFFFFFF" rather than "-1").
func (e *RangeError) Error() string {
	return fmt.Sprintf("winstat: %s 0x%X does not fit in %d bits", e.Field, uint32(e.Value), e.Bits)
}

// Is reports whether target is a *RangeError for the same field, ignoring
// the offending value. This lets callers write
//
//	errors.Is(err, &winstat.RangeError{Field: winstat.FieldID})
//
// when they only care about which field failed.
func (e *RangeError) Is(target error) bool {
	t, ok := target.(*RangeError)
	if !ok {
		return false
	}
	return t.Field == e.Field && t.Value == 0 && t.Bits == 0
}
