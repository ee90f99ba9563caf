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

package winstat

import (
	"winstat.dev/winstat/apis"
	"winstat.dev/winstat/facility"
	"winstat.dev/winstat/severity"
)

// Code satisfies the narrow status contracts from the apis package so that
// adapters and registries can work against interfaces instead of the
// concrete type.
var (
	_ apis.PackedStatus   = (*Code)(nil)
	_ apis.SymbolicStatus = (*Code)(nil)
	_ apis.MessagedStatus = (*Code)(nil)
	_ apis.ViewProvider   = (*Code)(nil)
)

// StatusValue implements apis.PackedStatus. It is Value under the contract
// name.
func (c *Code) StatusValue() uint32 { return c.Value() }

// StatusSymbol implements apis.SymbolicStatus.
func (c *Code) StatusSymbol() string { return string(c.sym) }

// StatusMessage implements apis.MessagedStatus. Like Message, the returned
// slice is a copy.
func (c *Code) StatusMessage() []string { return c.Message() }

// StatusView implements apis.ViewProvider. Display names for the severity
// and facility are filled in when the values are well known and left empty
// otherwise.
func (c *Code) StatusView() apis.View {
	v := apis.View{
		Value:   c.Value(),
		Symbol:  string(c.sym),
		Message: c.Message(),
	}
	if sv, ok := severity.FromValue(c.severity); ok {
		v.Severity = sv.Name()
	}
	if f, ok := facility.FromValue(c.facility); ok {
		v.Facility = string(f.Symbol())
	}
	return v
}
