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

package apis

// PackedStatus represents a value that can express itself as a packed
// 32-bit status word in the generic Windows status code layout (severity in
// bits 31-30, facility in bits 27-16, id in bits 15-0).
//
// The packed value is the primary machine-readable identity of a status
// code: two definitions with the same packed value describe the same
// condition. Adapters and registries should treat it as stable and
// enumerable.
type PackedStatus interface {
	// StatusValue returns the packed 32-bit status word.
	StatusValue() uint32
}

// SymbolicStatus represents a value that carries a conventional symbolic
// name in addition to its packed identity.
//
// While the packed value answers "which condition is this?", the symbol
// answers "what is this condition called in headers and documentation?",
// e.g. "E_ACCESSDENIED" or "STATUS_NOT_FOUND".
//
// Implementations MAY return an empty string when no symbol was defined;
// callers should be prepared to handle the empty case and fall back to the
// hex form of the packed value.
type SymbolicStatus interface {
	// StatusSymbol returns the symbolic name, already in canonical
	// uppercase form, or "" when none is defined.
	StatusSymbol() string
}

// MessagedStatus represents a value that carries a human-readable,
// multi-line description.
//
// Implementations SHOULD return a slice that is safe to iterate over and
// that will not be modified by the callee. Returning nil is allowed and
// simply means "no message defined".
type MessagedStatus interface {
	// StatusMessage returns the message lines in their defined order.
	// May return nil.
	StatusMessage() []string
}
