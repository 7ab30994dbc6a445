// This file is part of sdl4go.
//
// sdl4go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl4go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl4go.  If not, see <https://www.gnu.org/licenses/>.

package sdlerr

import (
	"fmt"
	"strings"
)

// Kind distinguishes misuse of a handle from failure of the underlying
// library.
type Kind int

// List of valid Kind values.
const (
	Runtime Kind = iota
	Logic
)

func (k Kind) String() string {
	switch k {
	case Runtime:
		return "runtime"
	case Logic:
		return "logic"
	}
	return "unknown"
}

// sdlerr is an implementation of the go language error interface.
type sdlerr struct {
	kind    Kind
	pattern string
	values  []interface{}
}

// Errorf creates a new runtime error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". The pattern is used by the Is() and Has()
// functions.
func Errorf(pattern string, values ...interface{}) error {
	// formatting takes place in the Error() function
	return sdlerr{
		kind:    Runtime,
		pattern: pattern,
		values:  values,
	}
}

// Logicf creates a new logic error. See Errorf() for details.
func Logicf(pattern string, values ...interface{}) error {
	return sdlerr{
		kind:    Logic,
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the removal
// of duplicate adjacent error messsage parts in the error message chains. It
// doesn't affect letter-case or white space.
func (er sdlerr) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for _, q := range p {
		if len(n) > 0 && n[len(n)-1] == q {
			continue
		}
		n = append(n, q)
	}

	return strings.Join(n, ": ")
}

// Unwrap returns the first error in the placeholder values. This allows the
// errors.Is() and errors.As() functions in the standard library to see errors
// that have been wrapped.
func (er sdlerr) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny checks if the error was created by Errorf() or Logicf().
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(sdlerr)
	return ok
}

// Is checks if the error has been created with the specific pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(sdlerr); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if the pattern appears somewhere in the error chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(sdlerr).values {
		if e, ok := v.(sdlerr); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}

// KindOf returns the kind of the error. Errors not created by this package
// are runtime errors.
func KindOf(err error) Kind {
	if er, ok := err.(sdlerr); ok {
		return er.kind
	}
	return Runtime
}

// IsLogic returns true if err is a logic error.
func IsLogic(err error) bool {
	if er, ok := err.(sdlerr); ok {
		return er.kind == Logic
	}
	return false
}

// IsRuntime returns true if err is not nil and is not a logic error.
func IsRuntime(err error) bool {
	if err == nil {
		return false
	}
	return !IsLogic(err)
}
