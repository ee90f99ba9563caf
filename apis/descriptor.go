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

// Descriptor is a flat, transport-friendly description of a single status
// code definition.
//
// This type intentionally uses plain strings and integers (not the internal
// Symbol / Severity / Facility value types) so that it can live in the
// public "apis" layer and be used by adapters (HTTP, gRPC), loggers and
// user-defined registries.
//
// Implementations may choose to store a richer descriptor internally, but
// this shape is what the rest of the system can rely on.
type Descriptor struct {
	// Value is the packed 32-bit status word in the generic layout.
	Value uint32 `json:"value"`

	// Symbol is the conventional symbolic name, e.g. "E_ACCESSDENIED".
	// It MAY be empty when the definition has no symbol.
	Symbol string `json:"symbol,omitempty"`

	// Severity is the 2-bit numeric severity classification.
	Severity uint8 `json:"severity"`

	// SeverityName is the display name for Severity, when known
	// ("Success", "Error", ...). Empty for unrecognized values.
	SeverityName string `json:"severity_name,omitempty"`

	// Facility is the 12-bit numeric facility id.
	Facility uint16 `json:"facility"`

	// FacilitySymbol is the conventional FACILITY_* identifier for
	// Facility, when the facility is a well-known one. Empty otherwise.
	FacilitySymbol string `json:"facility_symbol,omitempty"`

	// ID is the 16-bit status id within the facility.
	ID uint16 `json:"id"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// code is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this code is exposed over gRPC. A value of 0 means
	// "not specified" — note that this is indistinguishable from codes.OK,
	// which is fine because OK is never interesting to describe.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional single-line human-friendly description, built
	// by joining the definition's message lines.
	Message string `json:"message,omitempty"`
}
