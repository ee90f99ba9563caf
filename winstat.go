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

import (
	"fmt"

	"winstat.dev/winstat/symbol"
)

// Field masks used by the constructor's range checks.
//
// The checks operate on the int32 bit pattern of each input, so an input
// whose signed value is negative is rejected because its high-order bits are
// set. The id and facility masks cover every bit above the legal width up to
// and including the sign bit; the severity mask covers bits 2-31.
const (
	idMask       = ^int32(0xFFFF) // rejects any of bits 16-31
	severityMask = ^int32(0x3)    // rejects any of bits 2-31
	facilityMask = ^int32(0xFFF)  // rejects any of bits 12-31
)

// hresultFacilityMax is the widest facility id representable in the HRESULT
// layout, which reserves one more top bit than the generic layout and leaves
// 11 bits for the facility.
const hresultFacilityMax = 0x7FF

// Code is a single Windows-style status code definition.
//
// The severity, facility and id fields are validated by New and immutable
// afterwards; the only mutable state is the message line log, which is
// append-only. A Code therefore never leaves the valid range once
// constructed, and Value needs no failure mode.
//
// Code intentionally does not implement the error interface: it is data
// describing a status code defined by an external specification, not a
// fault raised by this program.
type Code struct {
	// id is the 16-bit status code within the facility.
	id uint16

	// severity is the 2-bit severity classification (bits 31-30 when packed).
	severity uint8

	// facility is the 12-bit originating-subsystem id (bits 27-16 when packed).
	facility uint16

	// sym is the conventional symbolic name, e.g. "E_ACCESSDENIED".
	// Not validated here; use symbol.Parse when canonical form matters.
	sym symbol.Symbol

	// message holds the human-readable description as ordered lines.
	// Append-only; insertion order is meaningful and preserved.
	message []string
}

// New constructs a Code after validating that each numeric field fits its
// bit width in the generic status code layout.
//
// The checks run in a fixed order — id, then severity, then facility — and
// the first failing check reports immediately without looking at the
// remaining fields. An input that is simultaneously an invalid id and an
// invalid severity therefore reports the id.
//
// Inputs are int32 so that callers holding raw (possibly negative) values
// can pass them through unchanged; the masks test the bit pattern, which
// rejects negative inputs for every field.
//
// On success the Code starts with an empty message log; options are applied
// after validation, so a failed New produces no observable instance.
func New(id, severity, facility int32, sym symbol.Symbol, opts ...Option) (*Code, error) {
	if id&idMask != 0 {
		return nil, &RangeError{Field: FieldID, Value: id, Bits: 16}
	}
	if severity&severityMask != 0 {
		return nil, &RangeError{Field: FieldSeverity, Value: severity, Bits: 2}
	}
	if facility&facilityMask != 0 {
		return nil, &RangeError{Field: FieldFacility, Value: facility, Bits: 12}
	}
	c := &Code{
		id:       uint16(id),
		severity: uint8(severity),
		facility: uint16(facility),
		sym:      sym,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is the panic-on-error variant of New. It is useful for declaring
// package-level code tables in var blocks, where an out-of-range field is a
// programmer error.
func MustNew(id, severity, facility int32, sym symbol.Symbol, opts ...Option) *Code {
	c, err := New(id, severity, facility, sym, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// ID returns the 16-bit status id.
func (c *Code) ID() uint16 { return c.id }

// Severity returns the 2-bit severity value.
func (c *Code) Severity() uint8 { return c.severity }

// Facility returns the 12-bit facility id.
func (c *Code) Facility() uint16 { return c.facility }

// Symbol returns the symbolic name supplied at construction.
func (c *Code) Symbol() symbol.Symbol { return c.sym }

// AppendMessage appends the given lines, in order, to the message log.
// It never clears or replaces previously appended lines.
func (c *Code) AppendMessage(lines ...string) {
	c.message = append(c.message, lines...)
}

// Message returns the accumulated message lines in insertion order.
//
// The returned slice is a copy: callers may hold or modify it without
// affecting the Code.
func (c *Code) Message() []string {
	if len(c.message) == 0 {
		return nil
	}
	out := make([]string, len(c.message))
	copy(out, c.message)
	return out
}

// Value packs the severity, facility and id into the generic 32-bit status
// code layout:
//
//	severity<<30 | facility<<16 | id
//
// The customer and reserved bits (29-28) are always zero. Validity of the
// composite is guaranteed by the constructor's invariants, so there is no
// failure mode.
func (c *Code) Value() uint32 {
	return uint32(c.severity)<<30 | uint32(c.facility)<<16 | uint32(c.id)
}

// HRESULT packs the fields into the COM HRESULT layout, which differs from
// the generic layout in its top bits and leaves only 11 bits for the
// facility:
//
//	S<<31 | facility<<16 | id
//
// The single severity bit S is the high bit of the 2-bit severity, so
// Warning and Error map to a failure HRESULT while Success and Informational
// map to a success one. The R, C, N and r bits (30-27) are always zero.
//
// Unlike Value this can fail: a facility that fits the generic layout's 12
// bits may not fit the HRESULT's 11, in which case a *RangeError for the
// facility field is returned.
func (c *Code) HRESULT() (uint32, error) {
	if c.facility > hresultFacilityMax {
		return 0, &RangeError{Field: FieldFacility, Value: int32(c.facility), Bits: 11}
	}
	s := uint32(c.severity>>1) & 1
	return s<<31 | uint32(c.facility)<<16 | uint32(c.id), nil
}

// String implements fmt.Stringer.
//
// The format is:
//
//	<symbol>(0x<value>)
//
// or just the hex value when no symbol was provided. This makes code tables
// and log lines both human- and machine-scannable.
func (c *Code) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.sym != symbol.Empty {
		return fmt.Sprintf("%s(0x%08X)", c.sym, c.Value())
	}
	return fmt.Sprintf("0x%08X", c.Value())
}

// Unpack splits a packed generic-layout status value back into its severity,
// facility and id fields. It is the inverse of Code.Value; the customer and
// reserved bits (29-28) are ignored.
func Unpack(value uint32) (severity uint8, facility uint16, id uint16) {
	return uint8(value >> 30), uint16(value>>16) & 0xFFF, uint16(value)
}
