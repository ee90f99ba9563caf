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

// Package symbol provides parsing, normalization and validation for winstat
// symbolic names.
//
// A "symbol" is the conventional uppercase identifier attached to a status
// code or facility, such as "E_ACCESSDENIED", "STATUS_NOT_FOUND" or
// "FACILITY_ITF". Symbols are meant to be:
//
//   - short and stable;
//   - uppercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in registries.
//
// Symbols are distinct from human-readable display names: a facility may be
// displayed as "Interface" while its symbol is "FACILITY_ITF".
//
// This package defines the canonical representation and the functions that
// convert arbitrary user input to that canonical form.
package symbol
