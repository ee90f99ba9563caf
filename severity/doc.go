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

// Package severity models the severity classification of a Windows-style
// status code.
//
// A severity pairs a display name with its small numeric code. In the
// generic 32-bit status code layout the severity occupies the top two bits
// (bits 31-30), which gives exactly four values:
//
//	0 - Success
//	1 - Informational
//	2 - Warning
//	3 - Error
//
// The type itself performs no validation: range discipline is the caller's
// responsibility. The composite code constructor in the winstat root package
// is the place where severity values are range-checked before packing.
package severity
