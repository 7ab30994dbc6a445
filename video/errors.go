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

// Sentinal error patterns. The first placeholder is the name of the function
// that failed.
const (
	// a surface (or screen) was used before it was initialised
	NotInitialised = "video: %s: surface is not initialised"

	// the underlying SDL call failed
	SDLError = "video: %s: %v"

	// the function requires that no screen has been set up
	ScreenExists = "video: %s: must not be called after SetVideoMode()"

	// the function requires a screen
	NoScreen = "video: %s: must be called after SetVideoMode()"

	// the surface has no palette
	NoPalette = "video: %s: surface does not have a palette"

	// coordinates are outside the surface
	OutOfBounds = "video: %s: (%d, %d) out of bounds"
)
