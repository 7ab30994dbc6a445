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


//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package main

import (
	"os"
)

// keyReader reads from the input without changing the terminal mode. keys
// are only seen after return is pressed
type keyReader struct {
	input *os.File
}

func newKeyReader(input *os.File) (*keyReader, error) {
	return &keyReader{input: input}, nil
}

func (kr *keyReader) Read(b []byte) (int, error) {
	return kr.input.Read(b)
}

func (kr *keyReader) restore() {
}
