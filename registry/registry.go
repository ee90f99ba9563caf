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

package registry

import (
	"errors"
	"fmt"
	"sort"

	"winstat.dev/winstat"
	"winstat.dev/winstat/symbol"
)

var (
	// ErrNilCode is returned when registering a nil code.
	ErrNilCode = errors.New("registry: nil code")

	// ErrDuplicateValue is returned when a code with the same packed value
	// is already registered.
	ErrDuplicateValue = errors.New("registry: duplicate value")

	// ErrDuplicateSymbol is returned when a code with the same symbolic
	// name is already registered.
	ErrDuplicateSymbol = errors.New("registry: duplicate symbol")
)

// Registry is a lookup table of status code definitions.
//
// The zero value is not usable; construct with New. See the package
// documentation for the populate-at-init lifecycle.
type Registry struct {
	byValue  map[uint32]*winstat.Code
	bySymbol map[symbol.Symbol]*winstat.Code
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byValue:  make(map[uint32]*winstat.Code),
		bySymbol: make(map[symbol.Symbol]*winstat.Code),
	}
}

// Register adds a code definition to the registry.
//
// Both the packed value and the symbolic name must be unique within the
// registry; a clash returns ErrDuplicateValue or ErrDuplicateSymbol with
// the offending key in the message, and leaves the registry unchanged.
// Codes without a symbol are indexed by value only.
func (r *Registry) Register(c *winstat.Code) error {
	if c == nil {
		return ErrNilCode
	}
	v := c.Value()
	if _, ok := r.byValue[v]; ok {
		return fmt.Errorf("%w: 0x%08X", ErrDuplicateValue, v)
	}
	sym := c.Symbol()
	if sym != symbol.Empty {
		if _, ok := r.bySymbol[sym]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSymbol, sym)
		}
		r.bySymbol[sym] = c
	}
	r.byValue[v] = c
	return nil
}

// MustRegister is Register that panics on error and returns the code, so
// package-level definitions read as single assignments.
func (r *Registry) MustRegister(c *winstat.Code) *winstat.Code {
	if err := r.Register(c); err != nil {
		panic(err)
	}
	return c
}

// ByValue looks up a definition by its packed 32-bit value.
func (r *Registry) ByValue(v uint32) (*winstat.Code, bool) {
	c, ok := r.byValue[v]
	return c, ok
}

// BySymbol looks up a definition by its symbolic name.
func (r *Registry) BySymbol(sym symbol.Symbol) (*winstat.Code, bool) {
	c, ok := r.bySymbol[sym]
	return c, ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.byValue)
}

// Codes returns all registered definitions ordered by packed value. The
// slice is freshly allocated on every call.
func (r *Registry) Codes() []*winstat.Code {
	out := make([]*winstat.Code, 0, len(r.byValue))
	for _, c := range r.byValue {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value() < out[j].Value() })
	return out
}
