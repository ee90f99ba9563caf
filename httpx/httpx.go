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

// Package httpx renders status codes as HTTP error responses.
//
// The response body is a google.rpc.Status JSON document carrying the same
// google.rpc.ErrorInfo detail the gRPC projection uses, so clients get one
// wire shape regardless of transport.
package httpx

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/durationpb"

	"winstat.dev/winstat"
	"winstat.dev/winstat/apis"
	"winstat.dev/winstat/grpcx"
)

// Meta carries extra context that the HTTP layer can add on top of the
// status code. All fields are optional and typically come from request
// context, headers, or rate-limiter output.
type Meta struct {
	// Correlation is a client/server correlation token (request ID,
	// idempotency key). Embedded into the ErrorInfo metadata when set.
	Correlation string

	// RetryAfterSeconds, when positive, sets the Retry-After header and
	// attaches a google.rpc.RetryInfo detail with the same delay.
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a status code into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the HTTP status via the Mapper and writes a
// google.rpc.Status JSON body describing the code.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the code and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed. A nil code writes nothing.
func (w Writer) Write(rw http.ResponseWriter, c *winstat.Code, meta Meta) {
	if c == nil {
		return
	}

	st := w.Mapper.Status(c.Severity(), c.Facility(), c.ID())

	msg := strings.Join(c.Message(), " ")
	if msg == "" {
		msg = string(c.Symbol())
	}

	info := grpcx.ErrorInfo(c)
	if meta.Correlation != "" {
		info.Metadata["correlation"] = meta.Correlation
	}

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: msg,
	}
	if a, err := anypb.New(info); err == nil {
		body.Details = append(body.Details, a)
	}
	if meta.RetryAfterSeconds > 0 {
		retry := &errdetails.RetryInfo{
			RetryDelay: durationpb.New(time.Duration(meta.RetryAfterSeconds) * time.Second),
		}
		if a, err := anypb.New(retry); err == nil {
			body.Details = append(body.Details, a)
		}
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of nested structures, field names (json_name),
	// and well-known types.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	_, _ = rw.Write(b)
}
