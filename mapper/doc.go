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

// Package mapper provides deterministic, immutable mappings from the fields
// of a winstat status code (severity, facility, id) to transport-level
// statuses for HTTP and gRPC.
//
// # Overview
//
// Services that surface Windows-style status codes over the network (file
// gateways, RPC bridges, management APIs) need to turn a packed 32-bit code
// into concrete transport statuses. Package mapper does that in a way that
// is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per severity or
//     per facility;
//   - id-aware — callers can add fine-grained rules for specific status ids
//     or id ranges within a facility;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// The severity decides which rules apply. Success-class severities
// (Success, Informational) describe operations that worked, so they resolve
// directly to the per-severity default; facility- and id-level rules
// describe failures and are not consulted. Failure-class severities
// (Warning, Error — the high severity bit set) resolve in the following
// order:
//
//  1. exact (facility, id) override;
//  2. narrowest id-range rule registered for the facility;
//  3. per-facility default;
//  4. per-severity default (library or user-adjusted);
//  5. global fallback (500 / codes.Internal).
//
// Id-range rules are inclusive [lo, hi] spans; the narrowest span containing
// the id wins, so a rule for one specific id beats a rule for the whole
// block around it. For example:
//
//	mapper.WithHTTPRange(facility.Win32, 2, 3, http.StatusNotFound)
//	mapper.WithHTTPOverride(facility.Win32, 5, http.StatusForbidden)
//
// # Library defaults
//
// The package ships with sensible defaults: success-class severities map to
// 200 / OK, failure-class severities to 500 (Unknown for warnings, Internal
// for errors), plus a few facility defaults (RPC -> 502 / Unavailable,
// Security -> 403 / PermissionDenied) and Win32 id-range rules for the most
// common ERROR_* ids (file/path not found -> 404, access denied -> 403,
// wait timeout -> 504). These can be adjusted at build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPFacilityDefault(facility.Storage, 507),
//	    mapper.WithGRPCRange(facility.Win32, 1450, 1459, int(codes.ResourceExhausted)),
//	)
//	if err != nil {
//	    // out-of-range facility/severity key, invalid span, etc.
//	}
//
//	st := m.Status(c.Severity(), c.Facility(), c.ID())
//	// st.HTTP, st.GRPC
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular code was resolved, including which tier matched and, for
// id-range rules, which span was used.
//
// This is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's values. This makes
// it safe to share a single instance across handlers, goroutines, and
// requests.
package mapper
