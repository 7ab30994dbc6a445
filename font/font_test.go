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

package font_test

import (
	"testing"

	"github.com/jetsetilly/sdl4go/font"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
	"github.com/jetsetilly/sdl4go/video"
)

func TestNotOpened(t *testing.T) {
	var f font.Font
	test.ExpectFailure(t, f.Opened())

	_, err := f.Height()
	test.ExpectSuccess(t, sdlerr.Is(err, font.NotOpened))
	test.ExpectSuccess(t, sdlerr.IsLogic(err))

	_, _, err = f.Size("hello")
	test.ExpectSuccess(t, sdlerr.Is(err, font.NotOpened))
	test.ExpectSuccess(t, sdlerr.Is(f.SetStyle(font.Bold), font.NotOpened))

	_, err = f.Render("hello", font.Blended, video.Color{R: 255, A: 255}, video.Color{})
	test.ExpectSuccess(t, sdlerr.Is(err, font.NotOpened))

	f.Close()
}

func TestOpenMissing(t *testing.T) {
	test.DemandSuccess(t, font.Init())
	defer font.Quit()

	_, err := font.Open("missing.ttf", 12)
	test.ExpectSuccess(t, sdlerr.Is(err, font.OpenError))
}

func TestModes(t *testing.T) {
	test.ExpectEquality(t, font.Solid.String(), "solid")
	test.ExpectEquality(t, font.Blended.String(), "blended")
	test.ExpectEquality(t, font.Mode(10).String(), "unknown")
	test.ExpectInequality(t, font.Bold|font.Italic, font.Normal)
}
