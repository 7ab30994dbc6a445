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

// Package system initialises and shuts down the library and its subsystems.
//
// Init() must be called before most other functions in the library. The CD-ROM
// subsystem is provided by the cdrom package and the other subsystems by SDL.
// Quit() closes the screen and shuts everything down.
//
// Preferences that affect how SDL is initialised are held by the Config type.
// The preferences are saved to disk and should be applied before calling
// Init().
package system
