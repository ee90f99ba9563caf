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

// Package registry provides a caller-populated lookup table of status code
// definitions, keyed by packed value and by symbolic name.
//
// The core packages deliberately ship no exhaustive code tables; each
// application registers the definitions it actually uses. The intended
// lifecycle is populate-at-init, then read-only:
//
//	var codes = registry.New()
//
//	var ErrAccessDenied = codes.MustRegister(
//		winstat.MustNew(5, 3, 7, "E_ACCESSDENIED",
//			winstat.WithMessageOption("Access is denied.")))
//
// Registration is not synchronized. Concurrent lookups after the populate
// phase are safe because nothing mutates the maps anymore; interleaving
// Register with lookups is the caller's synchronization problem.
package registry
