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

// Package imageload loads images in many formats into surfaces.
//
// Images are loaded by SDL_image, either from a file or from an RWops. The
// format of the image is detected automatically or can be given with
// LoadTypedRW() and LoadFormatRW(). Is() tests whether the data in an RWops
// is in a given format.
//
// Images can also be decoded without SDL_image. Decode() uses the image
// decoders registered with the Go image package, which includes the BMP,
// TIFF and WebP decoders from the golang.org/x/image module, and
// DecodeSurface() converts the result into a surface.
package imageload
