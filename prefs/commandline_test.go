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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sdl4go/prefs"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// spaces around keys and values are removed
	prefs.PushCommandLineStack("  video.driver ::  x11 ")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "video.driver::x11")

	// unused values are returned sorted by key
	prefs.PushCommandLineStack("video.driver::x11;audio.driver::alsa; keyboard.repeat.delay::500")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "audio.driver::alsa; keyboard.repeat.delay::500; video.driver::x11")

	// pairs without a double colon are dropped
	prefs.PushCommandLineStack("video.driver:x11; audio.driver::alsa; cdrom.paths")
	ok, _ := prefs.GetCommandLinePref("video.driver")
	test.ExpectFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("audio.driver")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("alsa"))

	// a value is only returned once
	ok, _ = prefs.GetCommandLinePref("audio.driver")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("video.driver::x11")
	prefs.PushCommandLineStack("video.driver::wayland")

	// only the top group is consulted
	ok, v := prefs.GetCommandLinePref("video.driver")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("wayland"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "video.driver::x11")
}

func TestCommandLineOverridesConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	cfg, err := system.NewConfig(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cfg.VideoDriver.Set("x11"))
	test.ExpectSuccess(t, cfg.KeyRepeatDelay.Set(250))
	test.DemandSuccess(t, cfg.Save())

	prefs.PushCommandLineStack("video.driver::dummy; keyboard.repeat.delay::400; no.such.key::1")
	cfg, err = system.NewConfig(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.VideoDriver.String(), "dummy")
	test.ExpectEquality(t, cfg.KeyRepeatDelay.Get().(int), 400)

	// keys that the configuration does not know about are left on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "no.such.key::1")

	// the overridden values were not saved
	cfg, err = system.NewConfig(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.VideoDriver.String(), "x11")
	test.ExpectEquality(t, cfg.KeyRepeatDelay.Get().(int), 250)

	// a badly formed override is an error
	prefs.PushCommandLineStack("keyboard.repeat.delay::soon")
	_, err = system.NewConfig(fn)
	test.ExpectFailure(t, err)
	prefs.PopCommandLineStack()
}
