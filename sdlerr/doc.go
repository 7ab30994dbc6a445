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

// Package sdlerr is the error type used throughout sdl4go. Errors are of one
// of two kinds:
//
// A Runtime error is returned when the underlying SDL library (or operating
// system) reports a failure. The SDL error string is usually part of the
// message.
//
// A Logic error is returned when a handle is used in a state that doesn't
// allow the requested operation. For example, reading the axis of a joystick
// that has not been opened or blitting from a surface that has been freed.
//
// Errors are created with Errorf() or Logicf(). Like the Errorf() function in
// the fmt package they take a formatting pattern and placeholder values. The
// pattern is stored with the error and can be tested with Is() and Has():
//
//	e := sdlerr.Errorf("joystick: cannot open device %d", 3)
//
//	if sdlerr.Is(e, "joystick: cannot open device %d") {
//		fmt.Println("true")
//	}
//
// Has() checks whether the pattern occurs anywhere in the error chain. An error
// passed as a placeholder value to Errorf() or Logicf() becomes part of the
// chain:
//
//	f := sdlerr.Errorf("system: %v", e)
//
//	if sdlerr.Has(f, "joystick: cannot open device %d") {
//		fmt.Println("true")
//	}
//
// The kind of an error is decided by the outermost error. IsLogic() and
// IsRuntime() test the kind. If a logic error is wrapped by Errorf() then the
// chain will be reported as a runtime error. If this isn't wanted then use
// Logicf() to wrap the error.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts in the chain. Parts are separated by the sub-string ": ".
// This means that wrapping errors with the name of the package does not
// result in messages like:
//
//	video: video: surface is not initialised
//
// Pattern strings that callers might want to test for are exported as
// constants in the package that creates them.
package sdlerr
