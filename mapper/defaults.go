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
	"winstat.dev/winstat/facility"
	"winstat.dev/winstat/severity"
)

// defaultHTTPSeverity defines the library's built-in HTTP mappings per
// severity class. These are only defaults: callers are expected to adjust
// them at the boundary where HTTP is actually produced (REST gateway, HTTP
// handler, etc.).
//
// Success-class severities resolve here directly; failure-class severities
// land here only when no facility or id rule matched.
var defaultHTTPSeverity = map[uint8]int{
	severity.Success.Value():       http.StatusOK, // Operation completed as requested.
	severity.Informational.Value(): http.StatusOK, // Success with extra information; still a 2xx.

	// Warning means "completed, but not cleanly" — without a facility rule
	// saying otherwise we surface it as a server-side problem rather than
	// pretending the result is clean.
	severity.Warning.Value(): http.StatusInternalServerError,
	severity.Error.Value():   http.StatusInternalServerError, // Generic failure; facility/id rules refine this.
}

// defaultGRPCSeverity defines the library's built-in gRPC mappings per
// severity class, aligned with canonical gRPC status codes.
var defaultGRPCSeverity = map[uint8]codes.Code{
	severity.Success.Value():       codes.OK,
	severity.Informational.Value(): codes.OK,

	// Unknown for warnings: the operation is not cleanly classifiable
	// without a facility/id rule. Internal for outright errors.
	severity.Warning.Value(): codes.Unknown,
	severity.Error.Value():   codes.Internal,
}

// defaultHTTPFacility defines built-in per-facility HTTP defaults for
// failure-class codes. Only facilities with an obviously better mapping than
// the severity default are listed; everything else falls through.
var defaultHTTPFacility = map[uint16]int{
	// RPC failures mean a remote peer misbehaved or was unreachable.
	facility.RPC.Value(): http.StatusBadGateway,

	// Security failures are authorization problems, not server bugs.
	facility.Security.Value(): http.StatusForbidden,
}

// defaultGRPCFacility defines built-in per-facility gRPC defaults for
// failure-class codes.
var defaultGRPCFacility = map[uint16]codes.Code{
	facility.RPC.Value():      codes.Unavailable,
	facility.Security.Value(): codes.PermissionDenied,
}

// defaultHTTPRanges defines built-in id-span rules per facility for HTTP.
//
// The Win32 facility wraps the classic ERROR_* space, whose most common ids
// have direct HTTP equivalents:
//
//	2    ERROR_FILE_NOT_FOUND
//	3    ERROR_PATH_NOT_FOUND
//	5    ERROR_ACCESS_DENIED
//	1460 ERROR_TIMEOUT
var defaultHTTPRanges = map[uint16][]rangeRule{
	facility.Win32.Value(): {
		{lo: 2, hi: 3, val: http.StatusNotFound},
		{lo: 5, hi: 5, val: http.StatusForbidden},
		{lo: 1460, hi: 1460, val: http.StatusGatewayTimeout},
	},
}

// defaultGRPCRanges defines built-in id-span rules per facility for gRPC,
// mirroring defaultHTTPRanges.
var defaultGRPCRanges = map[uint16][]rangeRule{
	facility.Win32.Value(): {
		{lo: 2, hi: 3, val: int(codes.NotFound)},
		{lo: 5, hi: 5, val: int(codes.PermissionDenied)},
		{lo: 1460, hi: 1460, val: int(codes.DeadlineExceeded)},
	},
}
