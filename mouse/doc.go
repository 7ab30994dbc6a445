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

// Package mouse controls the mouse pointer. Cursors can be created from
// monochrome bitmaps, from a simple text image or from a video.Surface.
//
// A text image is a list of strings in the style of an XPM file. The first
// string gives the width, height, number of colors and characters per pixel.
// The color strings follow and are ignored. Then there is one string per
// row, where 'X' is a black pixel, '.' is a white pixel and ' ' is
// transparent. The final string gives the hot spot as "x,y".
//
//	var arrow = []string{
//		"16 3 3 1",
//		"X c #000000",
//		". c #ffffff",
//		"  c None",
//		"X               ",
//		"X.X             ",
//		"XXXX            ",
//		"0,0",
//	}
package mouse
