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

//go:build !linux

package cdrom

import (
	"github.com/jetsetilly/sdl4go/sdlerr"
)

// CD-ROM drives are only supported on Linux
type nullPlatform struct{}

func newPlatform() platform {
	return nullPlatform{}
}

func (nullPlatform) detect(_ []string) []string {
	return nil
}

func (nullPlatform) open(path string) (drive, error) {
	return nil, sdlerr.Errorf(OpenError, path, "not supported on this platform")
}
