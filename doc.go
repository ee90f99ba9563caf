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

// Package winstat models Windows-style 32-bit status codes as structured,
// validated values.
//
// A status code packs a severity classification, a facility (subsystem)
// classification and a 16-bit numeric id into one 32-bit word. This package
// provides the composite Code type with a validated constructor, the
// bit-packing and unpacking logic, and the error taxonomy for out-of-range
// fields. The companion packages severity and facility model the two
// classification axes as independent named values, and symbol handles the
// conventional uppercase identifiers (E_*, STATUS_*, FACILITY_*).
//
// # Generic status code layout
//
// Code.Value packs fields according to the generic layout:
//
//	 3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1
//	 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	+---+-+-+-----------------------+-------------------------------+
//	|Sev|C|R|       Facility        |             Code              |
//	+---+-+-+-----------------------+-------------------------------+
//
// where
//
//   - Sev (bits 31-30) is the severity: 0 success, 1 informational,
//     2 warning, 3 error;
//   - C (bit 29) is the customer flag: set for customer-defined codes;
//   - R (bit 28) is a reserved bit;
//   - Facility (bits 27-16) identifies the originating subsystem;
//   - Code (bits 15-0) is the status id.
//
// Because the severity here is a pre-shifted 2-bit field occupying exactly
// bits 31-30, the C and R bits of values produced by Code.Value are always
// zero.
//
// # HRESULT layout
//
// COM HRESULT values use a different layout for the top bits:
//
//	 3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1
//	 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	+-+-+-+-+-+---------------------+-------------------------------+
//	|S|R|C|N|r|      Facility       |             Code              |
//	+-+-+-+-+-+---------------------+-------------------------------+
//
// where
//
//   - S (bit 31) is the severity: 0 success, 1 failure;
//   - R (bit 30) is reserved (the NT severity's second bit on mapped
//     NTSTATUS values);
//   - C (bit 29) is the customer flag;
//   - N (bit 28) is set when the value is a mapped NTSTATUS;
//   - r (bit 27) is reserved for internal use;
//   - Facility (bits 26-16) identifies the originating subsystem (11 bits,
//     one less than the generic layout);
//   - Code (bits 15-0) is the status id.
//
// Code.Value computes the generic layout only. Code.HRESULT is the clearly
// separate composition for the HRESULT layout; the two are never conflated.
//
// # Error taxonomy
//
// Construction is the only fallible operation. A failed range check produces
// a *RangeError naming the offending field and carrying the offending value;
// accessors, message append and value composition are total over an already
// constructed Code.
package winstat
