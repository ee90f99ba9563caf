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

package severity

import "fmt"

// Severity is an immutable named severity classification.
//
// It pairs a human-readable display name ("Error") with the numeric code
// that occupies the severity bit field of a packed status value (3).
//
// The zero value is a nameless Success-level severity; callers that care
// about display names should construct values with New or use the canonical
// package-level values below.
type Severity struct {
	name  string
	value uint8
}

// New constructs a Severity from a display name and its numeric code.
//
// No validation is performed: the constructor stores exactly what it is
// given. Values outside the conventional 2-bit range are representable here
// and are only rejected when packed into a composite code.
func New(name string, value uint8) Severity {
	return Severity{name: name, value: value}
}

// Name returns the display name supplied at construction.
func (s Severity) Name() string { return s.name }

// Value returns the numeric severity code supplied at construction.
func (s Severity) Value() uint8 { return s.value }

// String implements fmt.Stringer.
//
// The format is "<name>(<value>)", e.g. "Error(3)", which keeps log lines
// both human- and machine-scannable.
func (s Severity) String() string {
	return fmt.Sprintf("%s(%d)", s.name, s.value)
}

// Canonical severities
//
// These are the four values that fit the 2-bit severity field of the generic
// status code layout. They are package variables rather than constants
// because Severity is a struct, but they must be treated as immutable.
var (
	// Success indicates that the operation completed as requested.
	// Packed codes with this severity have both high bits clear, so a raw
	// 32-bit status value of a successful operation is always non-negative
	// when reinterpreted as signed.
	Success = New("Success", 0)

	// Informational indicates a successful operation that additionally
	// carries information for the caller (for example, partial data or a
	// state change notice). Still a success class: no action is required.
	Informational = New("Informational", 1)

	// Warning indicates that the operation completed but not cleanly: the
	// result may be incomplete or a fallback path was taken. Callers should
	// inspect the facility and id to decide whether to proceed.
	Warning = New("Warning", 2)

	// Error indicates that the operation failed. The facility and id
	// identify the failing subsystem and the specific condition.
	Error = New("Error", 3)
)

// canonical lists the four in-range severities indexed by their value.
var canonical = [4]Severity{Success, Informational, Warning, Error}

// FromValue resolves a numeric severity code to its canonical Severity.
// It returns ok=false for values outside the conventional 2-bit range.
func FromValue(v uint8) (Severity, bool) {
	if int(v) >= len(canonical) {
		return Severity{}, false
	}
	return canonical[v], true
}
