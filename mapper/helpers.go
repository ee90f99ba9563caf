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
	"google.golang.org/grpc/codes"
	"winstat.dev/winstat/mapper/internal/rangeindex"
)

// freezeHTTPSeverity makes an immutable copy of the per-severity HTTP map.
// Used when finalizing the mapper so later mutations to the builder
// (or caller-owned values) cannot affect the mapper.
func freezeHTTPSeverity(src map[uint8]int) map[uint8]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[uint8]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCSeverity makes an immutable copy of the per-severity gRPC map,
// converting builder-style int values into typed gRPC codes.
func freezeGRPCSeverity(src map[uint8]int) map[uint8]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[uint8]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// freezeHTTPFacility makes an immutable copy of the per-facility HTTP map.
func freezeHTTPFacility(src map[uint16]int) map[uint16]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[uint16]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCFacility makes an immutable copy of the per-facility gRPC map,
// converting ints into typed gRPC codes.
func freezeGRPCFacility(src map[uint16]int) map[uint16]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[uint16]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// freezeHTTPOverrides makes an immutable copy of the HTTP overrides map.
func freezeHTTPOverrides(src map[overrideKey]int) map[overrideKey]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[overrideKey]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCOverrides makes an immutable copy of the gRPC overrides map,
// converting ints into typed gRPC codes.
func freezeGRPCOverrides(src map[overrideKey]int) map[overrideKey]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[overrideKey]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// freezeHTTPRange makes a shallow copy of the per-facility HTTP indexes.
// Each index is immutable after Freeze, so we only need to protect the
// top-level map.
func freezeHTTPRange(src map[uint16]*rangeindex.Index[int]) map[uint16]*rangeindex.Index[int] {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[uint16]*rangeindex.Index[int], len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCRange makes a shallow copy of the per-facility gRPC indexes.
func freezeGRPCRange(src map[uint16]*rangeindex.Index[codes.Code]) map[uint16]*rangeindex.Index[codes.Code] {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[uint16]*rangeindex.Index[codes.Code], len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
