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
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"winstat.dev/winstat/apis"
	"winstat.dev/winstat/mapper/internal/rangeindex"
)

// failureBit is the high bit of the 2-bit severity field. Warning and Error
// carry it; Success and Informational do not. Facility- and id-level rules
// apply only to severities with this bit set.
const failureBit = 0x2

// maxSeverity and maxFacility bound the keys accepted from options.
const (
	maxSeverity = 0x3
	maxFacility = 0xFFF
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, id-range rules).
//  3. Validate all severity and facility keys against their bit widths.
//  4. Build per-facility id-range indexes (HTTP & gRPC) supporting
//     narrowest-span-wins matching.
//  5. Freeze all maps and indexes into immutable copies (fresh allocations).
//
// Errors returned from this function indicate out-of-range keys or invalid
// spans discovered during validation or index construction.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTPSeverity {
		b.httpSeverity[k] = v
	}
	for k, v := range defaultGRPCSeverity {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcSeverity[k] = int(v)
	}
	for k, v := range defaultHTTPFacility {
		b.httpFacility[k] = v
	}
	for k, v := range defaultGRPCFacility {
		b.grpcFacility[k] = int(v)
	}
	for fac, rules := range defaultHTTPRanges {
		b.httpRanges[fac] = append(b.httpRanges[fac], rules...)
	}
	for fac, rules := range defaultGRPCRanges {
		b.grpcRanges[fac] = append(b.grpcRanges[fac], rules...)
	}

	// (2) Apply user-supplied options (defaults, overrides, spans, etc.).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate severity and facility keys against their bit widths.
	if err := validateKeys(b); err != nil {
		return nil, err
	}

	// (4a) Build per-facility HTTP id-range indexes.
	httpRange := make(map[uint16]*rangeindex.Index[int], len(b.httpRanges))
	for fac, rules := range b.httpRanges {
		if len(rules) == 0 {
			continue
		}
		idx := rangeindex.New[int]()
		for _, r := range rules {
			if err := idx.Insert(r.lo, r.hi, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert HTTP id-span [0x%04X,0x%04X] for facility 0x%03X: %w", r.lo, r.hi, fac, err)
			}
		}
		idx.Freeze()
		httpRange[fac] = idx
	}

	// (4b) Build per-facility gRPC id-range indexes.
	// Values are stored as int in the builder and converted to codes.Code here.
	grpcRange := make(map[uint16]*rangeindex.Index[codes.Code], len(b.grpcRanges))
	for fac, rules := range b.grpcRanges {
		if len(rules) == 0 {
			continue
		}
		idx := rangeindex.New[codes.Code]()
		for _, r := range rules {
			if err := idx.Insert(r.lo, r.hi, codes.Code(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert gRPC id-span [0x%04X,0x%04X] for facility 0x%03X: %w", r.lo, r.hi, fac, err)
			}
		}
		idx.Freeze()
		grpcRange[fac] = idx
	}

	// (5) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated; indexes are shallow-copied (they are immutable).
	m := &mapper{
		httpSeverity: freezeHTTPSeverity(b.httpSeverity),
		grpcSeverity: freezeGRPCSeverity(b.grpcSeverity),
		httpFacility: freezeHTTPFacility(b.httpFacility),
		grpcFacility: freezeGRPCFacility(b.grpcFacility),
		httpOverride: freezeHTTPOverrides(b.httpOverride),
		grpcOverride: freezeGRPCOverrides(b.grpcOverride),
		httpRange:    freezeHTTPRange(httpRange),
		grpcRange:    freezeGRPCRange(grpcRange),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// validateKeys checks every severity and facility key accumulated in the
// builder against the bit widths of the packed layout. Options accept
// arbitrary severity/facility values (those types are unvalidated by
// design), so this is the single choke point that keeps bad keys out of the
// frozen snapshot.
func validateKeys(b *builder) error {
	for sv := range b.httpSeverity {
		if sv > maxSeverity {
			return fmt.Errorf("mapper: HTTP severity key %d does not fit in 2 bits", sv)
		}
	}
	for sv := range b.grpcSeverity {
		if sv > maxSeverity {
			return fmt.Errorf("mapper: gRPC severity key %d does not fit in 2 bits", sv)
		}
	}
	for fv := range b.httpFacility {
		if fv > maxFacility {
			return fmt.Errorf("mapper: HTTP facility key 0x%X does not fit in 12 bits", fv)
		}
	}
	for fv := range b.grpcFacility {
		if fv > maxFacility {
			return fmt.Errorf("mapper: gRPC facility key 0x%X does not fit in 12 bits", fv)
		}
	}
	for k := range b.httpOverride {
		if k.fac > maxFacility {
			return fmt.Errorf("mapper: HTTP override facility 0x%X does not fit in 12 bits", k.fac)
		}
	}
	for k := range b.grpcOverride {
		if k.fac > maxFacility {
			return fmt.Errorf("mapper: gRPC override facility 0x%X does not fit in 12 bits", k.fac)
		}
	}
	for fv := range b.httpRanges {
		if fv > maxFacility {
			return fmt.Errorf("mapper: HTTP id-span facility 0x%X does not fit in 12 bits", fv)
		}
	}
	for fv := range b.grpcRanges {
		if fv > maxFacility {
			return fmt.Errorf("mapper: gRPC id-span facility 0x%X does not fit in 12 bits", fv)
		}
	}
	return nil
}

// mapper is an immutable mapper implementation that combines per-severity
// defaults, per-facility defaults, exact (facility, id) overrides, and
// per-facility id-range indexes. Lookups are O(rules-per-facility) and safe
// for concurrent use once constructed.
type mapper struct {
	// httpSeverity holds the base HTTP status for a severity class.
	// Used when no facility/id rule applies (always, for success classes).
	httpSeverity map[uint8]int

	// grpcSeverity holds the base gRPC status for a severity class.
	grpcSeverity map[uint8]codes.Code

	// httpFacility holds per-facility HTTP defaults for failure-class codes.
	// These take precedence over severity defaults but sit below id rules.
	httpFacility map[uint16]int

	// grpcFacility holds per-facility gRPC defaults for failure-class codes.
	grpcFacility map[uint16]codes.Code

	// httpOverride holds exact (facility, id) HTTP statuses. Highest tier.
	httpOverride map[overrideKey]int

	// grpcOverride holds exact (facility, id) gRPC statuses. Highest tier.
	grpcOverride map[overrideKey]codes.Code

	// httpRange stores per-facility indexes that resolve HTTP statuses for
	// inclusive id spans, narrowest span first.
	httpRange map[uint16]*rangeindex.Index[int]

	// grpcRange stores per-facility indexes that resolve gRPC statuses for
	// inclusive id spans.
	grpcRange map[uint16]*rangeindex.Index[codes.Code]

	// fallbackHTTP is used when there is no severity default at all.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no severity default at all.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given status code fields.
//
// Resolution order for failure-class severities (highest to lowest):
//  1. exact (facility, id) override;
//  2. narrowest id-span rule for the facility;
//  3. per-facility default;
//  4. per-severity default (library or user overridden);
//  5. hardcoded ultimate fallback (500).
//
// Success-class severities skip tiers 1-3: facility and id rules describe
// failures, and a successful code must not inherit their statuses.
func (m *mapper) HTTPStatus(sev uint8, fac, id uint16) int {
	if sev&failureBit != 0 {
		// 1. Fast path: exact override for this (facility, id).
		if v, ok := m.httpOverride[overrideKey{fac: fac, id: id}]; ok {
			return v
		}

		// 2. Narrowest id-span rule for this facility.
		if idx, ok := m.httpRange[fac]; ok && idx != nil {
			if v, ok := idx.Match(id); ok {
				return v
			}
		}

		// 3. Per-facility default.
		if v, ok := m.httpFacility[fac]; ok {
			return v
		}
	}

	// 4. Per-severity default.
	if v, ok := m.httpSeverity[sev]; ok {
		return v
	}

	// 5. Ultimate fallback: HTTP must never be zero.
	return 500
}

// GRPCStatus resolves a gRPC status for the given status code fields.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order for failure-class severities:
//  1. exact (facility, id) override;
//  2. narrowest id-span rule for the facility;
//  3. per-facility default;
//  4. per-severity default;
//  5. hardcoded fallback (codes.Internal).
func (m *mapper) GRPCStatus(sev uint8, fac, id uint16) codes.Code {
	if sev&failureBit != 0 {
		// 1. Exact override.
		if v, ok := m.grpcOverride[overrideKey{fac: fac, id: id}]; ok {
			return v
		}

		// 2. Id-span rule for this facility.
		if idx, ok := m.grpcRange[fac]; ok && idx != nil {
			if v, ok := idx.Match(id); ok {
				return v
			}
		}

		// 3. Default for this facility.
		if v, ok := m.grpcFacility[fac]; ok {
			return v
		}
	}

	// 4. Default for this severity.
	if v, ok := m.grpcSeverity[sev]; ok {
		return v
	}

	// 5. Ultimate fallback.
	return codes.Internal
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single status code.
func (m *mapper) Status(sev uint8, fac, id uint16) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(sev, fac, id),
		GRPC: m.GRPCStatus(sev, fac, id),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular status code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, range, facility, severity, or fallback) and, for id-span
// matches, which span was used.
//
// Example output:
//
//	severity=3 facility=0x007 id=0x0002
//	http: source=range span=[0x0002,0x0003] -> 404
//	grpc: source=range span=[0x0002,0x0003] -> NOTFOUND(5)
//
// Notes:
//   - source ∈ {override | range | facility | severity | fallback}
//   - span is the rule's inclusive bounds as stored in the index
func (m *mapper) Explain(sev uint8, fac, id uint16) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "severity=%d facility=0x%03X id=0x%04X\n", sev, fac, id)

	_, httpLine := m.explainHTTP(sev, fac, id)
	_, _ = fmt.Fprintln(&b, httpLine)

	_, grpcLine := m.explainGRPC(sev, fac, id)
	_, _ = fmt.Fprintln(&b, grpcLine)

	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns the origin ("override", "range", "facility",
// "severity", "fallback") and a formatted line describing how the HTTP
// status was chosen.
func (m *mapper) explainHTTP(sev uint8, fac, id uint16) (source, line string) {
	if sev&failureBit != 0 {
		// 1) exact (facility, id) override
		if v, ok := m.httpOverride[overrideKey{fac: fac, id: id}]; ok {
			return "override", fmt.Sprintf("http: source=override -> %d", v)
		}

		// 2) id-span rule for this facility
		if idx, ok := m.httpRange[fac]; ok && idx != nil {
			if v, ok2, lo, hi := idx.MatchWithSpan(id); ok2 {
				return "range", fmt.Sprintf("http: source=range span=[0x%04X,0x%04X] -> %d", lo, hi, v)
			}
		}

		// 3) per-facility default
		if v, ok := m.httpFacility[fac]; ok {
			return "facility", fmt.Sprintf("http: source=facility -> %d", v)
		}
	}

	// 4) per-severity default
	if v, ok := m.httpSeverity[sev]; ok {
		return "severity", fmt.Sprintf("http: source=severity -> %d", v)
	}

	// 5) global fallback
	return "fallback", fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns the origin ("override", "range", "facility",
// "severity", "fallback") and a formatted line describing how the gRPC
// status was chosen.
func (m *mapper) explainGRPC(sev uint8, fac, id uint16) (source, line string) {
	if sev&failureBit != 0 {
		// 1) exact (facility, id) override
		if v, ok := m.grpcOverride[overrideKey{fac: fac, id: id}]; ok {
			return "override", fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
		}

		// 2) id-span rule for this facility
		if idx, ok := m.grpcRange[fac]; ok && idx != nil {
			if v, ok2, lo, hi := idx.MatchWithSpan(id); ok2 {
				return "range", fmt.Sprintf("grpc: source=range span=[0x%04X,0x%04X] -> %s(%d)", lo, hi, strings.ToUpper(v.String()), int(v))
			}
		}

		// 3) per-facility default
		if v, ok := m.grpcFacility[fac]; ok {
			return "facility", fmt.Sprintf("grpc: source=facility -> %s(%d)", strings.ToUpper(v.String()), int(v))
		}
	}

	// 4) per-severity default
	if v, ok := m.grpcSeverity[sev]; ok {
		return "severity", fmt.Sprintf("grpc: source=severity -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 5) global fallback
	return "fallback", fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}
