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

package video

import (
	"encoding/binary"
)

// true if the host is big endian. the layout of 24bit pixels and the choice
// of RGBA masks depend on it
var bigEndian = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	return b[0] == 0x01
}()

// Masks returns the red, green, blue and alpha masks used for new surfaces of
// the given depth. Depths of 8 bits or fewer are palettised and have no masks.
func Masks(depth int32) (r, g, b, a uint32) {
	switch {
	case depth <= 8:
		return 0, 0, 0, 0
	case depth <= 15:
		return 0x7c00, 0x03e0, 0x001f, 0
	case depth <= 16:
		return 0xf800, 0x07e0, 0x001f, 0
	case depth <= 24:
		if bigEndian {
			return 0xff0000, 0x00ff00, 0x0000ff, 0
		}
		return 0x0000ff, 0x00ff00, 0xff0000, 0
	}

	// SDL interprets each pixel as a 32-bit number, so our masks must depend
	// on the endianness (byte order) of the machine
	if bigEndian {
		return 0xff000000, 0x00ff0000, 0x0000ff00, 0x000000ff
	}
	return 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000
}

// getPixel returns the pixel value at (x, y) of pixels with the given number
// of bits per pixel. depths of less than eight bits are packed with the
// leftmost pixel in the high bits of each byte. the pixel data must be locked
func getPixel(pixels []byte, pitch int, bits int, x, y int) uint32 {
	if bits < 8 {
		b, shift, mask := packed(bits, x)
		return uint32(pixels[y*pitch+b]>>shift) & uint32(mask)
	}

	p := pixels[y*pitch+x*((bits+7)/8):]
	switch (bits + 7) / 8 {
	case 1:
		return uint32(p[0])
	case 2:
		return uint32(binary.NativeEndian.Uint16(p))
	case 3:
		if bigEndian {
			return uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	case 4:
		return binary.NativeEndian.Uint32(p)
	}
	return 0
}

// setPixel sets the pixel value at (x, y). the pixel data must be locked
func setPixel(pixels []byte, pitch int, bits int, x, y int, v uint32) {
	if bits < 8 {
		b, shift, mask := packed(bits, x)
		p := &pixels[y*pitch+b]
		*p = *p&^(mask<<shift) | (uint8(v)&mask)<<shift
		return
	}

	p := pixels[y*pitch+x*((bits+7)/8):]
	switch (bits + 7) / 8 {
	case 1:
		p[0] = uint8(v)
	case 2:
		binary.NativeEndian.PutUint16(p, uint16(v))
	case 3:
		if bigEndian {
			p[0] = uint8(v >> 16)
			p[1] = uint8(v >> 8)
			p[2] = uint8(v)
		} else {
			p[0] = uint8(v)
			p[1] = uint8(v >> 8)
			p[2] = uint8(v >> 16)
		}
	case 4:
		binary.NativeEndian.PutUint32(p, v)
	}
}

// the byte offset, shift and mask of pixel x in a row of packed pixels
func packed(bits int, x int) (int, uint, uint8) {
	perByte := 8 / bits
	shift := uint(8 - bits*(x%perByte+1))
	return x / perByte, shift, uint8(1<<bits - 1)
}

// rowBytes returns the number of bytes used by the pixels in a row
func rowBytes(w int, bits int) int {
	return (w*bits + 7) / 8
}
