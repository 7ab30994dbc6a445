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

// Surface and video mode flags. The values are those of SDL 1.2. Not all of
// them have meaning in SDL2 but they are accepted and reported by Flags() so
// that surfaces can be compared.
const (
	SWSurface   uint32 = 0x00000000
	HWSurface   uint32 = 0x00000001
	AsyncBlit   uint32 = 0x00000004
	AnyFormat   uint32 = 0x10000000
	HWPalette   uint32 = 0x20000000
	DoubleBuf   uint32 = 0x40000000
	Fullscreen  uint32 = 0x80000000
	OpenGL      uint32 = 0x00000002
	OpenGLBlit  uint32 = 0x0000000a
	Resizable   uint32 = 0x00000010
	NoFrame     uint32 = 0x00000020
	HWAccel     uint32 = 0x00000100
	SrcColorKey uint32 = 0x00001000
	RLEAccelOK  uint32 = 0x00002000
	RLEAccel    uint32 = 0x00004000
	SrcAlpha    uint32 = 0x00010000
	PreAlloc    uint32 = 0x01000000
)

// Palette flags for SetPalette().
const (
	LogPal  = 0x01
	PhysPal = 0x02
)

// Alpha values.
const (
	AlphaOpaque      = 255
	AlphaTransparent = 0
)

// the flags that are set by SetColorKey() and SetAlpha() rather than by the
// creator of the surface
const blitFlags = SrcColorKey | RLEAccel | SrcAlpha
