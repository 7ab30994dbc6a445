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

// Package rwops reads and writes data through SDL's RWops interface. An
// RWops can be a file or a block of memory. RWops implements the
// io.ReadWriteSeeker and io.Closer interfaces so that it can be used anywhere
// a Go file can be used, and the underlying SDL handle is available for
// functions that load data from an RWops.
package rwops

import (
	"io"

	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// Error patterns.
const (
	NotOpened  = "rwops: %s: not opened"
	OpenError  = "rwops: open: %v"
	SeekError  = "rwops: seek: %v"
	ReadError  = "rwops: read: %v"
	WriteError = "rwops: write: %v"
	ReadOnly   = "rwops: write: memory is read only"
)

// RWops is an SDL RWops handle.
type RWops struct {
	rw *sdl.RWops

	// memory used by the handle is kept here so that it remains referenced
	mem      []byte
	readOnly bool
}

// FromFile opens the file using the same modes as the fopen() function in
// the C library.
func FromFile(filename string, mode string) (*RWops, error) {
	rw := sdl.RWFromFile(filename, mode)
	if rw == nil {
		return nil, sdlerr.Errorf(OpenError, sdl.GetError())
	}
	logger.Logf(logger.Allow, "rwops", "opened %s (%s)", filename, mode)
	return &RWops{rw: rw}, nil
}

// FromMem uses the memory for reading and writing. The size of the memory
// does not change. Writing past the end of the memory fails.
func FromMem(mem []byte) (*RWops, error) {
	if len(mem) == 0 {
		return nil, sdlerr.Errorf(OpenError, "empty memory")
	}
	rw, err := sdl.RWFromMem(mem)
	if err != nil {
		return nil, sdlerr.Errorf(OpenError, err)
	}
	return &RWops{rw: rw, mem: mem}, nil
}

// FromConstMem is like FromMem() but the memory cannot be written to.
func FromConstMem(mem []byte) (*RWops, error) {
	rw, err := FromMem(mem)
	if err != nil {
		return nil, err
	}
	rw.readOnly = true
	return rw, nil
}

// FromReader reads everything from the reader into memory that can be read
// from but not written to.
func FromReader(r io.Reader) (*RWops, error) {
	mem, err := io.ReadAll(r)
	if err != nil {
		return nil, sdlerr.Errorf(OpenError, err)
	}
	return FromConstMem(mem)
}

// Opened returns true if the RWops has been opened and not closed.
func (rw *RWops) Opened() bool {
	return rw != nil && rw.rw != nil
}

// SDL returns the underlying SDL handle. It will be nil if the RWops is not
// opened.
func (rw *RWops) SDL() *sdl.RWops {
	if rw == nil {
		return nil
	}
	return rw.rw
}

// Seek implements the io.Seeker interface.
func (rw *RWops) Seek(offset int64, whence int) (int64, error) {
	if !rw.Opened() {
		return 0, sdlerr.Logicf(NotOpened, "Seek")
	}
	n, err := rw.rw.Seek(offset, whence)
	if err != nil {
		return n, sdlerr.Errorf(SeekError, err)
	}
	return n, nil
}

// Tell returns the current position.
func (rw *RWops) Tell() (int64, error) {
	return rw.Seek(0, io.SeekCurrent)
}

// Size returns the size of the data.
func (rw *RWops) Size() (int64, error) {
	if !rw.Opened() {
		return 0, sdlerr.Logicf(NotOpened, "Size")
	}
	n, err := rw.rw.Size()
	if err != nil {
		return 0, sdlerr.Errorf(SeekError, err)
	}
	return n, nil
}

// Read implements the io.Reader interface.
func (rw *RWops) Read(p []byte) (int, error) {
	if !rw.Opened() {
		return 0, sdlerr.Logicf(NotOpened, "Read")
	}
	if len(p) == 0 {
		return 0, nil
	}

	// SDL only sets the error string when a read fails. reaching the end of
	// the data is not an error
	sdl.ClearError()
	n, err := rw.rw.Read(p)
	if n <= 0 {
		if err != nil {
			return 0, sdlerr.Errorf(ReadError, err)
		}
		return 0, io.EOF
	}
	return n, nil
}

// Write implements the io.Writer interface.
func (rw *RWops) Write(p []byte) (int, error) {
	if !rw.Opened() {
		return 0, sdlerr.Logicf(NotOpened, "Write")
	}
	if rw.readOnly {
		return 0, sdlerr.Errorf(ReadOnly)
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := rw.rw.Write(p)
	if n < len(p) {
		if err == nil {
			err = io.ErrShortWrite
		}
		return max(n, 0), sdlerr.Errorf(WriteError, err)
	}
	return n, nil
}

// Close implements the io.Closer interface. The SDL handle is freed.
func (rw *RWops) Close() error {
	if !rw.Opened() {
		return sdlerr.Logicf(NotOpened, "Close")
	}
	err := rw.rw.Close()
	rw.rw = nil
	rw.mem = nil
	if err != nil {
		return sdlerr.Errorf("rwops: close: %v", err)
	}
	return nil
}

// Free releases the RWops. Unlike Close() it is safe to call more than once
// and errors are ignored.
func (rw *RWops) Free() {
	if rw.Opened() {
		_ = rw.Close()
	}
}
