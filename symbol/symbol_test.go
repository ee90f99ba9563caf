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

package symbol

import (
	"encoding"
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  E_ACCESSDENIED  ", "E_ACCESSDENIED"},
		{"to upper", "e_AccessDenied", "E_ACCESSDENIED"},
		{"dash to underscore", "STATUS-NOT-FOUND", "STATUS_NOT_FOUND"},
		{"inner space to underscore", "FACILITY ITF", "FACILITY_ITF"},
		{"mixed", "  facility-itf  ", "FACILITY_ITF"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Symbol
	}{
		{"simple", "E_ACCESSDENIED", Symbol("E_ACCESSDENIED")},
		{"with spaces", "  STATUS_NOT_FOUND  ", Symbol("STATUS_NOT_FOUND")},
		{"lower", "facility_itf", Symbol("FACILITY_ITF")},
		{"dash", "ERROR-FILE-NOT-FOUND", Symbol("ERROR_FILE_NOT_FOUND")},
		{"min length", "ITF", Symbol("ITF")},
		{"digits", "E_FAIL2", Symbol("E_FAIL2")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "E"},
		{"starts with digit", "1STATUS"},
		{"starts with underscore", "_STATUS"},
		{"bad char", "E_ACCESS!"},
		{"too long", "STATUS_" + strings.Repeat("X", 64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrSymbolInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrSymbolInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Symbol{
		"E_ACCESSDENIED",
		"STATUS_NOT_FOUND",
		"FACILITY_ITF",
		"ITF",
	}
	for _, s := range valid {
		if err := Validate(s); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", s, err)
		}
	}

	invalid := []Symbol{
		"",               // empty
		"EA",             // too short
		"e_accessdenied", // lowercase
		"E-ACCESSDENIED", // dash
	}
	for _, s := range invalid {
		if err := Validate(s); err == nil {
			t.Fatalf("Validate(%q) expected error", s)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("not a symbol ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	s := MustParse("facility_null")
	if s != Symbol("FACILITY_NULL") {
		t.Fatalf("MustParse(valid) = %q, want %q", s, "FACILITY_NULL")
	}
}

func TestSymbol_String(t *testing.T) {
	s := Symbol("E_FAIL")
	if s.String() != "E_FAIL" {
		t.Fatalf("String() = %q, want %q", s.String(), "E_FAIL")
	}
}

func TestSymbol_MarshalText(t *testing.T) {
	s := Symbol("E_ACCESSDENIED")
	text, err := s.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "E_ACCESSDENIED" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "E_ACCESSDENIED")
	}

	// invalid symbol should fail MarshalText
	invalid := Symbol("e-accessdenied")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid symbol must return error")
	}
}

func TestSymbol_UnmarshalText(t *testing.T) {
	var s Symbol
	if err := s.UnmarshalText([]byte("  status-not-found  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if s != Symbol("STATUS_NOT_FOUND") {
		t.Fatalf("UnmarshalText() = %q, want %q", s, "STATUS_NOT_FOUND")
	}

	// invalid
	var bad Symbol
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestSymbol_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Symbol)(nil)
	var _ encoding.TextUnmarshaler = (*Symbol)(nil)
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	// sanity: symbolFmt should enforce 3..64
	if MinLength != 3 {
		t.Fatalf("MinLength changed, update tests")
	}
	if MaxLength != 64 {
		t.Fatalf("MaxLength changed, update tests")
	}

	// check a 64-char valid symbol: first char letter, rest letters
	long := strings.Repeat("A", MaxLength)
	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %q to be valid (len=%d): %v", long, len(long), err)
	}

	// now 65 chars
	longer := long + "A"
	if _, err := Parse(longer); err == nil {
		t.Fatalf("expected %q (len=%d) to be invalid", longer, len(longer))
	}
}
