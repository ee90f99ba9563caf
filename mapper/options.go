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
	"winstat.dev/winstat/facility"
	"winstat.dev/winstat/severity"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper. Keys are validated in New: a severity outside the
// 2-bit range or a facility outside the 12-bit range fails the build.
type Option func(*builder)

// WithHTTPSeverityDefault sets or replaces the library-level default HTTP
// status for the given severity class. For success-class severities this is
// the final answer; for failure-class ones it is the tier below facility
// and id rules.
func WithHTTPSeverityDefault(s severity.Severity, http int) Option {
	return func(b *builder) { b.httpSeverity[s.Value()] = http }
}

// WithGRPCSeverityDefault sets or replaces the library-level default gRPC
// status for the given severity class.
func WithGRPCSeverityDefault(s severity.Severity, grpc int) Option {
	return func(b *builder) { b.grpcSeverity[s.Value()] = grpc }
}

// WithHTTPFacilityDefault sets or replaces the default HTTP status for
// failure-class codes of the given facility. Facility defaults sit above
// severity defaults but below id-range rules and exact overrides.
func WithHTTPFacilityDefault(f facility.Facility, http int) Option {
	return func(b *builder) { b.httpFacility[f.Value()] = http }
}

// WithGRPCFacilityDefault sets or replaces the default gRPC status for
// failure-class codes of the given facility.
func WithGRPCFacilityDefault(f facility.Facility, grpc int) Option {
	return func(b *builder) { b.grpcFacility[f.Value()] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for one (facility, id)
// pair. Overrides are the highest tier for failure-class codes.
func WithHTTPOverride(f facility.Facility, id uint16, http int) Option {
	return func(b *builder) { b.httpOverride[overrideKey{fac: f.Value(), id: id}] = http }
}

// WithGRPCOverride registers an exact gRPC override for one (facility, id)
// pair. Overrides are the highest tier for failure-class codes.
func WithGRPCOverride(f facility.Facility, id uint16, grpc int) Option {
	return func(b *builder) { b.grpcOverride[overrideKey{fac: f.Value(), id: id}] = grpc }
}

// WithHTTPRange adds an HTTP id-span rule for the given facility. The rule
// applies to failure-class codes whose id falls into the inclusive
// [lo, hi] span; the narrowest matching span wins. Use lo == hi for a
// single id.
func WithHTTPRange(f facility.Facility, lo, hi uint16, http int) Option {
	return func(b *builder) {
		b.httpRanges[f.Value()] = append(b.httpRanges[f.Value()], rangeRule{lo: lo, hi: hi, val: http})
	}
}

// WithGRPCRange adds a gRPC id-span rule for the given facility. The rule
// applies to failure-class codes whose id falls into the inclusive
// [lo, hi] span; the narrowest matching span wins. Use lo == hi for a
// single id.
func WithGRPCRange(f facility.Facility, lo, hi uint16, grpc int) Option {
	return func(b *builder) {
		b.grpcRanges[f.Value()] = append(b.grpcRanges[f.Value()], rangeRule{lo: lo, hi: hi, val: grpc})
	}
}
