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

package cdrom

// drive is an opened CD-ROM drive as provided by the platform.
type drive interface {
	// the status of the drive and the current position on the disc
	status() (Status, int32, error)

	// the table of contents. the final entry is the lead out
	toc() ([]Track, error)

	play(start int32, length int32) error
	pause() error
	resume() error
	stop() error
	eject() error
	close() error
}

// platform finds and opens drives.
type platform interface {
	detect(extra []string) []string
	open(path string) (drive, error)
}

// the platform in use. replaced in tests
var plat platform = newPlatform()
