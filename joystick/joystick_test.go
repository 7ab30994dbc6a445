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

package joystick_test

import (
	"testing"

	"github.com/jetsetilly/sdl4go/joystick"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
)

func TestUnopened(t *testing.T) {
	var j joystick.Joystick
	test.ExpectFailure(t, j.Opened())
	test.ExpectFailure(t, joystick.Opened(0))

	_, err := j.Index()
	test.ExpectSuccess(t, sdlerr.IsLogic(err))
	test.ExpectSuccess(t, sdlerr.Is(err, joystick.NotOpened))

	_, err = j.Name()
	test.ExpectSuccess(t, sdlerr.IsLogic(err))

	_, err = j.NumAxes()
	test.ExpectSuccess(t, sdlerr.IsLogic(err))

	_, err = j.Axis(0)
	test.ExpectSuccess(t, sdlerr.IsLogic(err))

	_, err = j.Button(0)
	test.ExpectSuccess(t, sdlerr.IsLogic(err))

	_, _, err = j.Ball(0)
	test.ExpectSuccess(t, sdlerr.IsLogic(err))

	// closing an unopened joystick is a runtime error
	err = j.Close()
	test.ExpectSuccess(t, sdlerr.IsRuntime(err))
	test.ExpectSuccess(t, sdlerr.Is(err, joystick.CloseError))
}

func TestHatName(t *testing.T) {
	test.ExpectEquality(t, joystick.HatName(joystick.HatCentered), "centered")
	test.ExpectEquality(t, joystick.HatName(joystick.HatLeftUp), "left up")
	test.ExpectEquality(t, joystick.HatName(0xf0), "unknown (0xf0)")
}
