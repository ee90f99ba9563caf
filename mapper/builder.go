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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// overrideKey identifies an exact (facility, id) pair for override rules.
type overrideKey struct {
	fac uint16
	id  uint16
}

// rangeRule is one raw inclusive [lo, hi] id-span rule for a facility. It is
// kept as-is in the builder and compiled into a range index when we build
// the final snapshot.
type rangeRule struct {
	lo, hi uint16
	// val is the numeric transport status to apply when this span matches.
	// For HTTP this is the final value; for gRPC we store ints in the
	// builder and convert to codes.Code later.
	val int
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpSeverity holds per-severity HTTP defaults that override library defaults.
	httpSeverity map[uint8]int
	// grpcSeverity holds per-severity gRPC defaults as ints; converted to codes.Code in New().
	grpcSeverity map[uint8]int

	// httpFacility holds per-facility HTTP defaults (above severity defaults).
	httpFacility map[uint16]int
	// grpcFacility holds per-facility gRPC defaults as ints; converted in New().
	grpcFacility map[uint16]int

	// httpOverride holds exact (facility, id) HTTP overrides (highest tier).
	httpOverride map[overrideKey]int
	// grpcOverride holds exact (facility, id) gRPC overrides as ints; converted in New().
	grpcOverride map[overrideKey]int

	// httpRanges holds per-facility id-span rules for HTTP, defined as raw
	// rangeRule and later compiled into a range index.
	httpRanges map[uint16][]rangeRule
	// grpcRanges holds per-facility id-span rules for gRPC.
	grpcRanges map[uint16][]rangeRule

	// global fallbacks used when a severity has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpSeverity: make(map[uint8]int, len(defaultHTTPSeverity)),
		grpcSeverity: make(map[uint8]int, len(defaultGRPCSeverity)),
		httpFacility: make(map[uint16]int, len(defaultHTTPFacility)),
		grpcFacility: make(map[uint16]int, len(defaultGRPCFacility)),

		// overrides and spans are usually few
		httpOverride: make(map[overrideKey]int),
		grpcOverride: make(map[overrideKey]int),
		httpRanges:   make(map[uint16][]rangeRule),
		grpcRanges:   make(map[uint16][]rangeRule),

		// hard fallbacks if the severity was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
