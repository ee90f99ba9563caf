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

// Option is a functional option for constructing a Code. Options run only
// after the range checks have passed, so they always see a valid instance.
type Option func(*Code)

// WithMessageOption appends message lines on construction.
// Intended to be used with New(...):
//
//	c, err := winstat.New(5, 3, 7, "E_ACCESSDENIED",
//	    winstat.WithMessageOption("Access is denied."),
//	)
func WithMessageOption(lines ...string) Option {
	return func(c *Code) {
		c.AppendMessage(lines...)
	}
}
