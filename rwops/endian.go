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

package rwops

import (
	"encoding/binary"
	"io"
)

// the endian functions are implemented with Read() and Write() so that
// errors are reported

func (rw *RWops) read(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rw, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadLE16 reads a little endian 16 bit value.
func (rw *RWops) ReadLE16() (uint16, error) {
	b, err := rw.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadBE16 reads a big endian 16 bit value.
func (rw *RWops) ReadBE16() (uint16, error) {
	b, err := rw.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadLE32 reads a little endian 32 bit value.
func (rw *RWops) ReadLE32() (uint32, error) {
	b, err := rw.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadBE32 reads a big endian 32 bit value.
func (rw *RWops) ReadBE32() (uint32, error) {
	b, err := rw.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadLE64 reads a little endian 64 bit value.
func (rw *RWops) ReadLE64() (uint64, error) {
	b, err := rw.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadBE64 reads a big endian 64 bit value.
func (rw *RWops) ReadBE64() (uint64, error) {
	b, err := rw.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (rw *RWops) write(b []byte) error {
	_, err := rw.Write(b)
	return err
}

// WriteLE16 writes a little endian 16 bit value.
func (rw *RWops) WriteLE16(v uint16) error {
	return rw.write(binary.LittleEndian.AppendUint16(nil, v))
}

// WriteBE16 writes a big endian 16 bit value.
func (rw *RWops) WriteBE16(v uint16) error {
	return rw.write(binary.BigEndian.AppendUint16(nil, v))
}

// WriteLE32 writes a little endian 32 bit value.
func (rw *RWops) WriteLE32(v uint32) error {
	return rw.write(binary.LittleEndian.AppendUint32(nil, v))
}

// WriteBE32 writes a big endian 32 bit value.
func (rw *RWops) WriteBE32(v uint32) error {
	return rw.write(binary.BigEndian.AppendUint32(nil, v))
}

// WriteLE64 writes a little endian 64 bit value.
func (rw *RWops) WriteLE64(v uint64) error {
	return rw.write(binary.LittleEndian.AppendUint64(nil, v))
}

// WriteBE64 writes a big endian 64 bit value.
func (rw *RWops) WriteBE64(v uint64) error {
	return rw.write(binary.BigEndian.AppendUint64(nil, v))
}
