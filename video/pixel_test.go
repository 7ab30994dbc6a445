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
	"testing"

	"github.com/jetsetilly/sdl4go/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestPixelAccess(t *testing.T) {
	for _, bits := range []int{8, 15, 16, 24, 32} {
		const w = 3
		const h = 2
		pitch := w*((bits+7)/8) + 2
		pixels := make([]byte, pitch*h)

		// value that fits into the pixel size
		v := uint32(0x11223344) >> (32 - (bits+7)/8*8)

		setPixel(pixels, pitch, bits, 2, 1, v)
		test.ExpectEquality(t, getPixel(pixels, pitch, bits, 2, 1), v, bits)
		test.ExpectEquality(t, getPixel(pixels, pitch, bits, 1, 1), 0, bits)
		test.ExpectEquality(t, getPixel(pixels, pitch, bits, 2, 0), 0, bits)
	}
}

func TestPackedPixelAccess(t *testing.T) {
	pixels := make([]byte, 4)

	setPixel(pixels, 2, 1, 0, 0, 1)
	setPixel(pixels, 2, 1, 9, 0, 1)
	test.ExpectEquality(t, pixels[0], uint8(0x80))
	test.ExpectEquality(t, pixels[1], uint8(0x40))
	test.ExpectEquality(t, getPixel(pixels, 2, 1, 9, 0), 1)
	test.ExpectEquality(t, getPixel(pixels, 2, 1, 8, 0), 0)

	// setting a pixel to zero leaves its neighbours alone
	pixels[2] = 0xff
	setPixel(pixels, 2, 1, 3, 1, 0)
	test.ExpectEquality(t, pixels[2], uint8(0xef))

	pixels = make([]byte, 2)
	setPixel(pixels, 2, 4, 0, 0, 0x0a)
	setPixel(pixels, 2, 4, 1, 0, 0x0b)
	setPixel(pixels, 2, 4, 2, 0, 0x1c)
	test.ExpectEquality(t, pixels[0], uint8(0xab))
	test.ExpectEquality(t, pixels[1], uint8(0xc0))
	test.ExpectEquality(t, getPixel(pixels, 2, 4, 2, 0), 0x0c)

	test.ExpectEquality(t, rowBytes(10, 1), 2)
	test.ExpectEquality(t, rowBytes(3, 4), 2)
	test.ExpectEquality(t, rowBytes(3, 24), 9)
}

func TestMasks(t *testing.T) {
	r, g, b, a := Masks(8)
	test.ExpectEquality(t, r|g|b|a, 0)

	r, g, b, a = Masks(16)
	test.ExpectEquality(t, r, 0xf800)
	test.ExpectEquality(t, g, 0x07e0)
	test.ExpectEquality(t, b, 0x001f)
	test.ExpectEquality(t, a, 0)

	r, g, b, a = Masks(32)
	test.ExpectEquality(t, r|g|b|a, 0xffffffff)
	test.ExpectEquality(t, r&g&b&a, 0)

	// whatever the byte order, red is the first byte in memory
	var p [4]byte
	setPixel(p[:], 4, 32, 0, 0, r)
	test.ExpectEquality(t, p, [4]byte{0xff, 0, 0, 0})
}

func TestBitsPerPixel(t *testing.T) {
	test.ExpectEquality(t, bitsPerPixel(sdl.PIXELFORMAT_ARGB8888), 32)
	test.ExpectEquality(t, bitsPerPixel(sdl.PIXELFORMAT_RGB565), 16)
	test.ExpectEquality(t, bitsPerPixel(sdl.PIXELFORMAT_INDEX8), 8)
}

func TestPixelFormatEquality(t *testing.T) {
	a := PixelFormat{BitsPerPixel: 8, BytesPerPixel: 1, Alpha: 0xff}
	b := a

	// two formats without a palette are equal
	test.ExpectSuccess(t, a.Equals(b))

	// a format with a palette is different to one without
	b.Palette = []Color{{R: 1, G: 2, B: 3, A: 0xff}}
	test.ExpectFailure(t, a.Equals(b))

	a.Palette = []Color{{R: 1, G: 2, B: 3, A: 0xff}}
	test.ExpectSuccess(t, a.Equals(b))

	a.Palette[0].G = 10
	test.ExpectFailure(t, a.Equals(b))

	a.Palette[0].G = 2
	a.ColorKey = 1
	test.ExpectFailure(t, a.Equals(b))

	// formats without a palette are also compared by their masks
	c := PixelFormat{BitsPerPixel: 16, BytesPerPixel: 2, Rmask: 0xf800, Gmask: 0x07e0, Bmask: 0x001f, Alpha: 0xff}
	d := c
	test.ExpectSuccess(t, c.Equals(d))
	d.Rmask, d.Gmask, d.Bmask = 0x7c00, 0x03e0, 0x001f
	test.ExpectFailure(t, c.Equals(d))
}
