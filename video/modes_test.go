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
	"testing"

	"github.com/jetsetilly/sdl4go/test"
	"github.com/veandco/go-sdl2/sdl"
)

var testModes = []sdl.DisplayMode{
	{Format: sdl.PIXELFORMAT_RGB888, W: 1920, H: 1080},
	{Format: sdl.PIXELFORMAT_RGB565, W: 1920, H: 1080},
	{Format: sdl.PIXELFORMAT_RGB888, W: 1280, H: 720},
	{Format: sdl.PIXELFORMAT_RGB565, W: 800, H: 600},
}

func TestChooseDepth(t *testing.T) {
	test.ExpectEquality(t, chooseDepth(testModes, 1920, 1080, 16), 16)
	test.ExpectEquality(t, chooseDepth(testModes, 1280, 720, 16), bitsPerPixel(sdl.PIXELFORMAT_RGB888))
	test.ExpectEquality(t, chooseDepth(testModes, 640, 480, 32), 0)
}

func TestListModes(t *testing.T) {
	all := listModes(testModes, 0)
	test.ExpectEquality(t, len(all), 3)
	test.ExpectEquality(t, all[0], Rect{W: 1920, H: 1080})
	test.ExpectEquality(t, all[2], Rect{W: 800, H: 600})

	sixteen := listModes(testModes, 16)
	test.ExpectEquality(t, len(sixteen), 2)
	test.ExpectEquality(t, sixteen[1], Rect{W: 800, H: 600})

	modes, anySize, err := ListModes(nil, SWSurface)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, anySize)
	test.ExpectEquality(t, len(modes), 0)
}
