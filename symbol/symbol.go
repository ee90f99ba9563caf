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
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Symbol is the canonical, validated representation of a symbolic name.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// The zero value ("") means "no symbol provided" and is valid to store in
// value structs; callers that require a non-empty canonical symbol should
// explicitly call Validate.
type Symbol string

// MinLength and MaxLength define the allowed length range for a canonical
// winstat symbol.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid symbol.
	// We require at least 3 characters so that ultra-short and ambiguous
	// identifiers like "E" or "S1" are not accepted.
	MinLength = 3

	// MaxLength is the maximum length for a valid symbol.
	// 64 characters is enough for descriptive identifiers like
	// "STATUS_OBJECT_PATH_NOT_FOUND" while still preventing unbounded or
	// accidental long strings.
	MaxLength = 64
)

const (
	// symbolFmt is the canonical regular expression used to validate symbols.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Z] - first character must be an uppercase ASCII letter;
	//	[A-Z0-9_]{2,63} - the remaining characters may be uppercase letters,
	//	                  digits or underscore; the quantifier {2,63} makes the
	//	                  total length 3..64 characters (1 + 2..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength above.
	// If you change MinLength / MaxLength, make sure to adjust this pattern as well.
	symbolFmt = `^[A-Z][A-Z0-9_]{2,63}$`
)

var (
	// symbolRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical winstat symbol.
	//
	// We precompile it so that repeated validations (e.g. in registries) do
	// not pay the compilation cost over and over again.
	//
	// Examples of valid symbols:
	//   - "E_ACCESSDENIED"
	//   - "STATUS_NOT_FOUND"
	//   - "FACILITY_ITF"
	//   - "ERROR_FILE_NOT_FOUND"
	//
	// Examples of invalid symbols:
	//   - "e_accessdenied"  (lowercase)
	//   - "E-ACCESSDENIED"  (dash instead of underscore)
	//   - "E"               (too short)
	//   - "1STATUS"         (does not start with a letter)
	symbolRe = regexp.MustCompile(symbolFmt)
)

var (
	// ErrSymbolInvalid is returned when a value cannot be parsed or validated
	// as a winstat symbol.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about symbol format" vs "this is some other error".
	ErrSymbolInvalid = errors.New("winstat: invalid symbol")
)

// Ensure Symbol implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Symbol)(nil)
	_ encoding.TextUnmarshaler = (*Symbol)(nil)
)

// Empty is the zero-value symbol. It is considered "not provided" and is
// valid to store in value structs. Callers that require a non-empty,
// canonical symbol should explicitly call Validate.
var Empty Symbol = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Symbol value.
func Parse(s string) (Symbol, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Symbol(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level symbol constants in init() or var blocks.
func MustParse(s string) Symbol {
	sym, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sym
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical symbol form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces '-' and ' ' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Validate checks whether the provided Symbol is valid.
// The empty symbol ("") is considered invalid.
func Validate(s Symbol) error {
	return validate(string(s))
}

// String returns the canonical string representation of the symbol.
func (s Symbol) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (s Symbol) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (s *Symbol) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	raw := string(bytes.TrimSpace(text))
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid symbol.
func validate(s string) error {
	if !symbolRe.MatchString(s) {
		return ErrSymbolInvalid
	}
	return nil
}
