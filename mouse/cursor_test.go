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

package mouse_test

import (
	"testing"

	"github.com/jetsetilly/sdl4go/mouse"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
)

var arrow = []string{
	"16 3 3 1",
	"X c #000000",
	". c #ffffff",
	"  c None",
	"X               ",
	"X.X             ",
	"XXXX.......X",
	"2,1",
}

func TestParseCursor(t *testing.T) {
	data, mask, w, h, hx, hy, err := mouse.ParseCursor(arrow)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, w, 16)
	test.ExpectEquality(t, h, 3)
	test.ExpectEquality(t, hx, 2)
	test.ExpectEquality(t, hy, 1)
	test.DemandEquality(t, len(data), 6)
	test.DemandEquality(t, len(mask), 6)

	test.ExpectEquality(t, data[0], 0x80)
	test.ExpectEquality(t, mask[0], 0x80)
	test.ExpectEquality(t, data[1], 0x00)

	// X.X
	test.ExpectEquality(t, data[2], 0xa0)
	test.ExpectEquality(t, mask[2], 0xe0)

	// XXXX....
	// ...X    (short rows are transparent)
	test.ExpectEquality(t, data[4], 0xf0)
	test.ExpectEquality(t, mask[4], 0xff)
	test.ExpectEquality(t, data[5], 0x10)
	test.ExpectEquality(t, mask[5], 0xf0)
}

func TestParseErrors(t *testing.T) {
	_, _, _, _, _, _, err := mouse.ParseCursor(nil)
	test.ExpectSuccess(t, sdlerr.Is(err, mouse.ParseError))

	// width is not a multiple of eight
	_, _, _, _, _, _, err = mouse.ParseCursor([]string{"10 1 0 1", "X", "0,0"})
	test.ExpectFailure(t, err)

	// missing hot spot
	_, _, _, _, _, _, err = mouse.ParseCursor([]string{"8 1 0 1", "X"})
	test.ExpectFailure(t, err)

	_, _, _, _, _, _, err = mouse.ParseCursor([]string{"8 1 0 1", "X", "a,0"})
	test.ExpectFailure(t, err)

	_, _, _, _, _, _, err = mouse.ParseCursor([]string{"8 1 0 2", "X", "0,0"})
	test.ExpectFailure(t, err)

	// negative number of colours with enough lines to pass the length check
	_, _, _, _, _, _, err = mouse.ParseCursor([]string{"8 8 -3 1", "X", "X", "X", "X", "X", "X", "X", "0,0"})
	test.ExpectSuccess(t, sdlerr.Is(err, mouse.ParseError))
}

func TestUncreatedCursor(t *testing.T) {
	var c mouse.Cursor
	test.ExpectFailure(t, c.Created())
	test.ExpectSuccess(t, sdlerr.IsLogic(c.Set()))

	_, err := c.Copy()
	test.ExpectSuccess(t, sdlerr.IsLogic(err))

	// the data is checked before SDL is called
	err = c.Create([]byte{0}, []byte{0}, 16, 16, 0, 0)
	test.ExpectSuccess(t, sdlerr.Is(err, mouse.CreateError))
	err = c.Create(nil, nil, 12, 1, 0, 0)
	test.ExpectSuccess(t, sdlerr.Is(err, mouse.CreateError))

	c.Free()
}
