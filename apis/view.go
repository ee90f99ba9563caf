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

// ViewProvider is implemented by values that can produce a transport-
// friendly, self-contained representation of themselves.
//
// This is useful for HTTP/gRPC adapters that want to send "the canonical
// form" of a status code to the client without having to know about the
// concrete type.
//
// The returned view MUST be safe to marshal (to JSON/proto) and SHOULD
// contain all information that is safe to disclose to the client.
type ViewProvider interface {
	// StatusView returns a transport-friendly snapshot of the status code.
	StatusView() View
}

// View is a minimal, serializable representation of a status code.
//
// This is *not* the concrete type used internally — it is the shape that we
// are comfortable exposing over the wire or logging. Keeping it here (in
// apis) allows both HTTP and gRPC adapters to share the same struct.
type View struct {
	// Value is the packed 32-bit status word in the generic layout.
	Value uint32 `json:"value"`

	// Symbol is the conventional symbolic name, e.g. "E_ACCESSDENIED".
	// It MAY be empty when the definition has no symbol.
	Symbol string `json:"symbol,omitempty"`

	// Severity is the display name of the severity classification, when
	// known ("Success", "Error", ...).
	Severity string `json:"severity,omitempty"`

	// Facility is the FACILITY_* identifier of the originating subsystem,
	// when the facility is a well-known one.
	Facility string `json:"facility,omitempty"`

	// Message is the human-friendly description as ordered lines.
	//
	// The lines are kept separate rather than pre-joined so that clients
	// can render them faithfully.
	Message []string `json:"message,omitempty"`
}
