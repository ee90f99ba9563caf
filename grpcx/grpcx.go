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

// Package grpcx projects status codes onto the gRPC status model.
//
// A packed status code travels as a google.rpc.ErrorInfo detail attached to
// the gRPC status: the symbolic name becomes the reason, and the decomposed
// fields ride along as metadata. Clients that know this library can recover
// the full code; everyone else still sees a well-formed gRPC status.
package grpcx

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"winstat.dev/winstat"
	"winstat.dev/winstat/apis"
)

// Domain identifies this code space inside google.rpc.ErrorInfo details.
const Domain = "win32"

// Metadata keys used in the attached ErrorInfo.
const (
	// MetaValue holds the packed 32-bit status word, "0x"-prefixed hex.
	MetaValue = "value"
	// MetaSeverity holds the 2-bit severity class as a decimal digit.
	MetaSeverity = "severity"
	// MetaFacility holds the 12-bit facility id, "0x"-prefixed hex.
	MetaFacility = "facility"
	// MetaID holds the 16-bit status id, "0x"-prefixed hex.
	MetaID = "id"
)

// ToStatus converts a status code into a gRPC status using the provided
// mapper for the transport code.
//
// The status message is the code's message lines joined with a space, or
// the symbolic name when no message lines exist. A google.rpc.ErrorInfo
// detail is attached carrying the symbol as reason, Domain as domain, and
// the decomposed fields as metadata; when attaching fails the bare status
// is returned instead.
//
// A nil code converts to an OK status with no details.
func ToStatus(m apis.Mapper, c *winstat.Code) *gstatus.Status {
	if c == nil {
		return gstatus.New(gcodes.OK, "")
	}

	st := m.Status(c.Severity(), c.Facility(), c.ID())

	msg := strings.Join(c.Message(), " ")
	if msg == "" {
		msg = string(c.Symbol())
	}
	base := gstatus.New(st.GRPC, msg)

	with, err := base.WithDetails(ErrorInfo(c))
	if err != nil {
		return base
	}
	return with
}

// ErrorInfo builds the google.rpc.ErrorInfo detail describing a status
// code: the symbol as reason, Domain as domain, and the packed value plus
// its decomposed fields as metadata. The HTTP projection in httpx attaches
// the same detail so both transports speak one wire shape.
func ErrorInfo(c *winstat.Code) *errdetails.ErrorInfo {
	if c == nil {
		return nil
	}
	return &errdetails.ErrorInfo{
		Reason: string(c.Symbol()),
		Domain: Domain,
		Metadata: map[string]string{
			MetaValue:    fmt.Sprintf("0x%08X", c.Value()),
			MetaSeverity: strconv.Itoa(int(c.Severity())),
			MetaFacility: fmt.Sprintf("0x%03X", c.Facility()),
			MetaID:       fmt.Sprintf("0x%04X", c.ID()),
		},
	}
}

// FromError pulls the ErrorInfo detail for Domain out of a gRPC error, if
// present. Useful in tests and client code that wants to recover the packed
// code from a transported status.
func FromError(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// UnpackError recovers the decomposed status fields from a gRPC error
// produced by ToStatus. It returns ok=false when the error carries no
// ErrorInfo for Domain or when the packed value is missing or malformed.
func UnpackError(err error) (value uint32, symbol string, ok bool) {
	info, ok := FromError(err)
	if !ok {
		return 0, "", false
	}
	raw, found := info.GetMetadata()[MetaValue]
	if !found {
		return 0, "", false
	}
	v, perr := strconv.ParseUint(strings.TrimPrefix(raw, "0x"), 16, 32)
	if perr != nil {
		return 0, "", false
	}
	return uint32(v), info.GetReason(), true
}
