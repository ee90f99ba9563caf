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

// Package adapter converts domain-level status codes into the flat shapes
// defined by the apis package, so that loggers and transport layers never
// have to know the concrete code type.
package adapter

import (
	"strings"

	"winstat.dev/winstat"
	"winstat.dev/winstat/apis"
	"winstat.dev/winstat/facility"
	"winstat.dev/winstat/severity"
)

// ToDescriptor converts a status code together with its resolved transport
// status into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the packed value with its decomposed fields
// and the concrete transport statuses (HTTP and gRPC). Display names for the
// severity and facility are filled in when the values are well known and
// left empty otherwise.
func ToDescriptor(c *winstat.Code, st apis.Status) apis.Descriptor {
	if c == nil {
		return apis.Descriptor{}
	}
	d := apis.Descriptor{
		Value:      c.Value(),
		Symbol:     string(c.Symbol()),
		Severity:   c.Severity(),
		Facility:   c.Facility(),
		ID:         c.ID(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    strings.Join(c.Message(), " "),
	}
	if sv, ok := severity.FromValue(c.Severity()); ok {
		d.SeverityName = sv.Name()
	}
	if f, ok := facility.FromValue(c.Facility()); ok {
		d.FacilitySymbol = string(f.Symbol())
	}
	return d
}

// ToView converts a status code into a public View. This function performs
// no redaction or filtering; it exposes exactly what the code contains. It
// is up to the caller or API layer to decide what is safe to return.
func ToView(c *winstat.Code) apis.View {
	if c == nil {
		return apis.View{}
	}
	return c.StatusView()
}
