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


//go:build linux || darwin || freebsd || netbsd || openbsd

package main

import (
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// keyReader reads single key presses from a terminal
type keyReader struct {
	input *os.File

	canAttr    syscall.Termios
	cbreakAttr syscall.Termios
}

// newKeyReader puts the terminal into cbreak mode. the terminal must be
// restored with restore()
func newKeyReader(input *os.File) (*keyReader, error) {
	kr := &keyReader{input: input}

	if err := termios.Tcgetattr(kr.input.Fd(), &kr.canAttr); err != nil {
		return nil, err
	}
	kr.cbreakAttr = kr.canAttr
	termios.Cfmakecbreak(&kr.cbreakAttr)

	if err := termios.Tcsetattr(kr.input.Fd(), termios.TCIFLUSH, &kr.cbreakAttr); err != nil {
		return nil, err
	}

	return kr, nil
}

func (kr *keyReader) Read(b []byte) (int, error) {
	return kr.input.Read(b)
}

func (kr *keyReader) restore() {
	_ = termios.Tcsetattr(kr.input.Fd(), termios.TCIFLUSH, &kr.canAttr)
}
