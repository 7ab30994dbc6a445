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
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Color is a single palette entry.
type Color = sdl.Color

// PixelFormat is a snapshot of an SDL pixel format.
type PixelFormat struct {
	Format        uint32
	BitsPerPixel  uint8
	BytesPerPixel uint8

	Rmask, Gmask, Bmask, Amask     uint32
	Rshift, Gshift, Bshift, Ashift uint8
	Rloss, Gloss, Bloss, Aloss     uint8

	// the color key and per-surface alpha are properties of the surface in
	// SDL2 but are part of the pixel format in SDL 1.2
	ColorKey uint32
	Alpha    uint8

	// nil if the format is not palettised
	Palette []Color
}

// newPixelFormat creates a snapshot from an SDL pixel format. the palette
// is copied
func newPixelFormat(f *sdl.PixelFormat) PixelFormat {
	if f == nil {
		return PixelFormat{}
	}

	pf := PixelFormat{
		Format:        f.Format,
		BitsPerPixel:  f.BitsPerPixel,
		BytesPerPixel: f.BytesPerPixel,
		Rmask:         f.Rmask,
		Gmask:         f.Gmask,
		Bmask:         f.Bmask,
		Amask:         f.Amask,
		Rshift:        f.Rshift,
		Gshift:        f.Gshift,
		Bshift:        f.Bshift,
		Ashift:        f.Ashift,
		Rloss:         f.Rloss,
		Gloss:         f.Gloss,
		Bloss:         f.Bloss,
		Aloss:         f.Aloss,
		Alpha:         0xff,
	}

	if f.Palette != nil && f.Palette.Colors != nil && f.Palette.Ncolors > 0 {
		pf.Palette = make([]Color, f.Palette.Ncolors)
		copy(pf.Palette, paletteColors(f.Palette))
	}

	return pf
}

// paletteColors returns the colors of an SDL palette as a slice. the slice
// refers to the palette's memory
func paletteColors(p *sdl.Palette) []Color {
	if p == nil || p.Colors == nil || p.Ncolors <= 0 {
		return nil
	}
	return unsafe.Slice(p.Colors, p.Ncolors)
}

// Equals compares every field of the pixel format, including every entry in
// the palette.
func (pf PixelFormat) Equals(o PixelFormat) bool {
	if pf.BitsPerPixel != o.BitsPerPixel || pf.BytesPerPixel != o.BytesPerPixel {
		return false
	}
	if pf.Rmask != o.Rmask || pf.Gmask != o.Gmask || pf.Bmask != o.Bmask || pf.Amask != o.Amask {
		return false
	}
	if pf.Rshift != o.Rshift || pf.Gshift != o.Gshift || pf.Bshift != o.Bshift || pf.Ashift != o.Ashift {
		return false
	}
	if pf.Rloss != o.Rloss || pf.Gloss != o.Gloss || pf.Bloss != o.Bloss || pf.Aloss != o.Aloss {
		return false
	}
	if pf.ColorKey != o.ColorKey || pf.Alpha != o.Alpha {
		return false
	}

	if (pf.Palette == nil) != (o.Palette == nil) {
		return false
	}
	if len(pf.Palette) != len(o.Palette) {
		return false
	}
	for i := range pf.Palette {
		if pf.Palette[i] != o.Palette[i] {
			return false
		}
	}

	return true
}

// MapRGB maps an RGB triple to an opaque pixel value for the format.
func MapRGB(format *sdl.PixelFormat, r, g, b uint8) uint32 {
	return sdl.MapRGB(format, r, g, b)
}

// MapRGBA maps an RGBA quadruple to a pixel value for the format.
func MapRGBA(format *sdl.PixelFormat, r, g, b, a uint8) uint32 {
	return sdl.MapRGBA(format, r, g, b, a)
}

// GetRGB returns the RGB components of the pixel value.
func GetRGB(pixel uint32, format *sdl.PixelFormat) (r, g, b uint8) {
	return sdl.GetRGB(pixel, format)
}

// GetRGBA returns the RGBA components of the pixel value.
func GetRGBA(pixel uint32, format *sdl.PixelFormat) (r, g, b, a uint8) {
	return sdl.GetRGBA(pixel, format)
}

// bitsPerPixel extracts the depth from an SDL pixel format enumeration.
func bitsPerPixel(format uint32) int32 {
	return int32((format >> 8) & 0xff)
}
