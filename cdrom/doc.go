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

// Package cdrom controls the audio playback of CD-ROM drives.
//
// The drives attached to the system are found by Init(). On Linux the
// standard device nodes are checked along with any paths added by
// AddDevicePaths() or listed in the SDL_CDROM environment variable. Other
// platforms report no drives.
//
// Positions on a disc are measured in frames. There are 75 frames in every
// second of audio. FramesToMSF() and MSFToFrames() convert between frames and
// minutes, seconds and frames.
//
// An opened CD caches the table of contents of the disc. The cache, along
// with the current track and frame, is refreshed every time Status() is
// called.
package cdrom
