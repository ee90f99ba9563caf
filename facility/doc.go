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

// Package facility models the facility classification of a Windows-style
// status code: which subsystem a code originated from.
//
// A facility carries three pieces of identity:
//
//   - a display name, e.g. "Interface";
//   - a numeric facility id, conventionally 0..4095 (12 bits), which
//     occupies bits 27-16 of the generic packed status value;
//   - a symbolic name, e.g. "FACILITY_ITF", following the conventional
//     uppercase identifier style.
//
// The type itself performs no validation: range discipline is the caller's
// responsibility, and the composite code constructor in the winstat root
// package is where facility values are range-checked before packing.
//
// The package ships a handful of well-known Windows facilities as documented
// package values. This is deliberately NOT an exhaustive table of every real
// facility; callers that need a complete mapping maintain their own registry.
package facility
