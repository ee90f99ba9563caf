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

package facility

import (
	"fmt"

	"winstat.dev/winstat/symbol"
)

// Facility is an immutable named subsystem classification.
//
// It has the same shape as severity.Severity plus the extra symbolic name
// field. No shared abstraction between the two is needed: their field sets
// differ and neither is used polymorphically.
type Facility struct {
	name  string
	value uint16
	sym   symbol.Symbol
}

// New constructs a Facility from a display name, its numeric facility id and
// its conventional symbolic name.
//
// No validation is performed: the constructor stores exactly what it is
// given. Values outside the conventional 12-bit range are representable here
// and are only rejected when packed into a composite code. Callers that want
// a guaranteed-canonical symbolic name should go through symbol.Parse first.
func New(name string, value uint16, sym symbol.Symbol) Facility {
	return Facility{name: name, value: value, sym: sym}
}

// Name returns the display name supplied at construction.
func (f Facility) Name() string { return f.name }

// Value returns the numeric facility id supplied at construction.
func (f Facility) Value() uint16 { return f.value }

// Symbol returns the symbolic name supplied at construction.
func (f Facility) Symbol() symbol.Symbol { return f.sym }

// String implements fmt.Stringer.
//
// The format is "<symbol>(<value>)", e.g. "FACILITY_ITF(4)".
func (f Facility) String() string {
	return fmt.Sprintf("%s(%d)", f.sym, f.value)
}

// Well-known facilities
//
// A small, documented subset of the facilities defined by the Windows SDK.
// These exist so that callers, mappers and tests have stable values to refer
// to; an exhaustive table is intentionally out of scope for this package.
var (
	// Null is the default facility for codes that do not belong to a
	// specific subsystem (most S_* and E_* generic codes).
	Null = New("Null", 0, "FACILITY_NULL")

	// RPC covers codes originating from the remote procedure call runtime.
	RPC = New("RPC", 1, "FACILITY_RPC")

	// Dispatch covers IDispatch (late-bound automation) errors.
	Dispatch = New("Dispatch", 2, "FACILITY_DISPATCH")

	// Storage covers structured storage (IStorage/IStream) errors.
	Storage = New("Storage", 3, "FACILITY_STORAGE")

	// Interface covers interface-defined codes: the meaning of an id in
	// this facility depends on which interface returned it.
	Interface = New("Interface", 4, "FACILITY_ITF")

	// Win32 wraps classic Win32 error codes (the ERROR_* space) into the
	// packed status layout.
	Win32 = New("Win32", 7, "FACILITY_WIN32")

	// Windows covers codes defined by the Windows subsystem itself.
	Windows = New("Windows", 8, "FACILITY_WINDOWS")

	// Security covers security and authentication (SSPI) codes.
	Security = New("Security", 9, "FACILITY_SECURITY")

	// Control covers OLE control (OCX) codes.
	Control = New("Control", 10, "FACILITY_CONTROL")
)

// wellKnown indexes the facilities above by numeric id for FromValue.
var wellKnown = map[uint16]Facility{
	Null.value:      Null,
	RPC.value:       RPC,
	Dispatch.value:  Dispatch,
	Storage.value:   Storage,
	Interface.value: Interface,
	Win32.value:     Win32,
	Windows.value:   Windows,
	Security.value:  Security,
	Control.value:   Control,
}

// FromValue resolves a numeric facility id to one of the well-known
// facilities shipped by this package. It returns ok=false for ids that are
// not in the well-known set; that does not make the id invalid, it only
// means this package has no display/symbolic name for it.
func FromValue(v uint16) (Facility, bool) {
	f, ok := wellKnown[v]
	return f, ok
}
