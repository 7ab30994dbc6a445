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

// Package test bundles helper functions that remove common boilerplate from
// tests, particularly useful in conjunction with the standard go test
// harness.
//
// The Expect functions report a test error and allow the test to continue.
// The Demand functions are fatal and should be used when a value is required
// for the rest of the test to be meaningful.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle the
// nil type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure() to fail and ExpectSuccess() to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// The CompareWriter and RingWriter types implement the io.Writer interface and
// are used to capture output.
package test
