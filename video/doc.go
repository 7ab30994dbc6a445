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

// Package video wraps the SDL video surface API. Surface values own a native
// surface handle and free it when Free() is called. Copying a surface with
// Copy() or Assign() results in a deep copy of the pixel data.
//
// The single video surface of SDL 1.2 is represented by the Screen type. A
// screen is created by SetVideoMode() and is retrieved at any time with
// GetVideoSurface(). The screen is backed by an SDL window. Freeing the screen
// surface from user code only detaches the Surface value, it never frees the
// window surface.
//
// Errors returned by the package are created by the sdlerr package. Using a
// surface before it has been initialised (or after it has been freed) results
// in a logic error.
//
// All functions in this package must be called from the main thread.
package video
