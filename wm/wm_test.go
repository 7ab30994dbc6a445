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

package wm_test

import (
	"testing"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
	"github.com/jetsetilly/sdl4go/wm"
)

func TestCaptionWithoutWindow(t *testing.T) {
	wm.SetCaption("sdl4go", "icon")

	title, icon := wm.Caption()
	test.ExpectEquality(t, title, "sdl4go")
	test.ExpectEquality(t, icon, "icon")
	test.ExpectEquality(t, wm.Title(), "sdl4go")
	test.ExpectEquality(t, wm.IconTitle(), "icon")
}

func TestWithoutWindow(t *testing.T) {
	test.ExpectFailure(t, wm.IconifyWindow())
	test.ExpectEquality(t, wm.GrabInput(wm.GrabQuery), wm.GrabOff)
	test.ExpectEquality(t, wm.GrabInput(wm.GrabOn), wm.GrabOff)

	_, err := wm.GetInfo()
	test.ExpectSuccess(t, sdlerr.Is(err, wm.NoWindow))

	test.ExpectSuccess(t, sdlerr.IsLogic(wm.ToggleFullScreen()))
}

func TestSubsystemName(t *testing.T) {
	test.ExpectEquality(t, wm.SubsystemName(2), "X11")
	test.ExpectEquality(t, wm.SubsystemName(0), "unknown")
	test.ExpectEquality(t, wm.SubsystemName(1000), "unknown")
	test.ExpectEquality(t, wm.GrabOn.String(), "on")
}
