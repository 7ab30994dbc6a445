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


package test

import (
	"fmt"
)

// RingWriter is an io.Writer that keeps only the most recent bytes written to
// it.
type RingWriter struct {
	buffer []byte
	cursor int
	full   bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{buffer: make([]byte, size)}, nil
}

// String returns the contents of the ring with the oldest bytes first.
func (r *RingWriter) String() string {
	if !r.full {
		return string(r.buffer[:r.cursor])
	}
	return string(r.buffer[r.cursor:]) + string(r.buffer[:r.cursor])
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.full = false
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	n := len(p)

	// only the tail of a long write survives
	if n >= len(r.buffer) {
		copy(r.buffer, p[n-len(r.buffer):])
		r.cursor = 0
		r.full = true
		return n, nil
	}

	for len(p) > 0 {
		c := copy(r.buffer[r.cursor:], p)
		p = p[c:]
		r.cursor += c
		if r.cursor == len(r.buffer) {
			r.cursor = 0
			r.full = true
		}
	}

	return n, nil
}
