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
	"runtime"
	"testing"

	"github.com/jetsetilly/sdl4go/test"
	"github.com/veandco/go-sdl2/sdl"
)

// dummyVideo starts the SDL video subsystem with the dummy driver. the test
// is skipped if that is not possible
func dummyVideo(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	t.Setenv("SDL_VIDEODRIVER", "dummy")
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("no video: %v", err)
	}
	t.Cleanup(func() {
		CloseScreen()
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		runtime.UnlockOSThread()
	})
}

func TestToggleFullScreenWithoutScreen(t *testing.T) {
	CloseScreen()
	test.ExpectFailure(t, ToggleFullScreen())

	// a closed screen is not the current screen
	current = &Screen{}
	current.Close()
	test.ExpectFailure(t, ToggleFullScreen())
}

func TestToggleFullScreenAfterFree(t *testing.T) {
	dummyVideo(t)

	scr, err := SetVideoMode(64, 48, 32, SWSurface)
	test.DemandSuccess(t, err)

	// freeing the screen surface only detaches it
	scr.Free()
	test.ExpectSuccess(t, ToggleFullScreen())
	test.ExpectSuccess(t, scr.Flags()&Fullscreen == Fullscreen)

	// the screen surface is attached again with the requested depth
	test.ExpectSuccess(t, ToggleFullScreen())
	test.ExpectSuccess(t, scr.Initialised())
	test.ExpectEquality(t, scr.PixelFormat().BitsPerPixel, uint8(32))
}
