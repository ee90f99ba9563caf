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

package severity

import "testing"

func TestNew_AccessorFidelity(t *testing.T) {
	tests := []struct {
		name  string
		value uint8
	}{
		{"Success", 0},
		{"Error", 3},
		// No validation on this type: out-of-range values are stored as-is
		// and only rejected when packed into a composite code.
		{"Bogus", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.name, tt.value)
			if s.Name() != tt.name {
				t.Fatalf("Name() = %q, want %q", s.Name(), tt.name)
			}
			if s.Value() != tt.value {
				t.Fatalf("Value() = %d, want %d", s.Value(), tt.value)
			}
		})
	}
}

func TestCanonicalValues(t *testing.T) {
	tests := []struct {
		sev  Severity
		name string
		val  uint8
	}{
		{Success, "Success", 0},
		{Informational, "Informational", 1},
		{Warning, "Warning", 2},
		{Error, "Error", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sev.Name() != tt.name || tt.sev.Value() != tt.val {
				t.Fatalf("got %s, want %s(%d)", tt.sev, tt.name, tt.val)
			}
		})
	}
}

func TestFromValue(t *testing.T) {
	for v := uint8(0); v < 4; v++ {
		s, ok := FromValue(v)
		if !ok {
			t.Fatalf("FromValue(%d) not ok", v)
		}
		if s.Value() != v {
			t.Fatalf("FromValue(%d).Value() = %d", v, s.Value())
		}
	}
	if _, ok := FromValue(4); ok {
		t.Fatalf("FromValue(4) must not resolve")
	}
}

func TestString(t *testing.T) {
	if got := Error.String(); got != "Error(3)" {
		t.Fatalf("String() = %q, want %q", got, "Error(3)")
	}
}
