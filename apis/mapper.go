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

import "google.golang.org/grpc/codes"

// Mapper is an immutable, concurrency-safe view of status mapping rules.
// It resolves the unpacked fields of a winstat code (severity, facility, id)
// into transport statuses for HTTP and gRPC.
//
// The fields are passed as raw numbers rather than as the severity.Severity
// and facility.Facility value types, because callers at the transport edge
// typically hold an unpacked 32-bit status word, not a named classification.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given fields.
	// If no field-specific rule exists, the mapper must fall back through
	// its coarser tiers down to a hard default.
	HTTPStatus(severity uint8, facility, id uint16) int

	// GRPCStatus returns the gRPC status code for the given fields.
	// If no field-specific rule exists, the mapper must fall back through
	// its coarser tiers down to a hard default.
	GRPCStatus(severity uint8, facility, id uint16) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic.
	Status(severity uint8, facility, id uint16) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(severity uint8, facility, id uint16) string
}

// Status represents a resolved pair of transport statuses for a single
// status code. It is the final output of the mapper and can be written
// directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
