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
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// VideoInfo describes the video hardware.
type VideoInfo struct {
	// a window manager is always available with SDL2
	WMAvailable bool

	// hardware surfaces are not distinguished from software surfaces
	HWAvailable bool

	// the size and pixel format of the desktop
	CurrentW int32
	CurrentH int32
	Format   uint32
	Depth    int32

	Driver string
}

// GetVideoInfo returns information about the video hardware of the first
// display.
func GetVideoInfo() (VideoInfo, error) {
	mode, err := sdl.GetDesktopDisplayMode(0)
	if err != nil {
		return VideoInfo{}, sdlerr.Errorf(SDLError, "GetVideoInfo", err)
	}

	driver, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return VideoInfo{}, sdlerr.Errorf(SDLError, "GetVideoInfo", err)
	}

	return VideoInfo{
		WMAvailable: true,
		CurrentW:    mode.W,
		CurrentH:    mode.H,
		Format:      mode.Format,
		Depth:       bitsPerPixel(mode.Format),
		Driver:      driver,
	}, nil
}

// VideoDriverName returns the name of the video driver in use.
func VideoDriverName() (string, error) {
	driver, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return "", sdlerr.Errorf(SDLError, "VideoDriverName", err)
	}
	return driver, nil
}

// the display modes of the first display
func displayModes() ([]sdl.DisplayMode, error) {
	n, err := sdl.GetNumDisplayModes(0)
	if err != nil {
		return nil, err
	}

	modes := make([]sdl.DisplayMode, 0, n)
	for i := 0; i < n; i++ {
		m, err := sdl.GetDisplayMode(0, i)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}

	return modes, nil
}

// VideoModeOK returns the depth that SetVideoMode() would use for the
// requested mode. Returns zero if the mode is not available.
//
// Windowed modes are always available at the requested depth because any
// difference in depth is handled with a shadow surface.
func VideoModeOK(w, h, bpp int32, flags uint32) (int32, error) {
	if bpp == 0 {
		bpp = desktopDepth()
	}

	if flags&Fullscreen != Fullscreen {
		return bpp, nil
	}

	modes, err := displayModes()
	if err != nil {
		return 0, sdlerr.Errorf(SDLError, "VideoModeOK", err)
	}

	return chooseDepth(modes, w, h, bpp), nil
}

// chooseDepth returns bpp if there is a mode of that size and depth, the
// depth of the first mode of that size if not, and zero if there is no mode
// of that size
func chooseDepth(modes []sdl.DisplayMode, w, h, bpp int32) int32 {
	var found int32
	for _, m := range modes {
		if m.W != w || m.H != h {
			continue
		}
		d := bitsPerPixel(m.Format)
		if d == bpp {
			return bpp
		}
		if found == 0 {
			found = d
		}
	}
	return found
}

// ListModes returns the available fullscreen sizes, largest first. If the
// anySize return value is true then any size is allowed and the list is empty,
// which is the case for windowed modes. A nil format means the depth is not
// important.
func ListModes(format *PixelFormat, flags uint32) (modes []Rect, anySize bool, err error) {
	if flags&Fullscreen != Fullscreen {
		return nil, true, nil
	}

	dm, err := displayModes()
	if err != nil {
		return nil, false, sdlerr.Errorf(SDLError, "ListModes", err)
	}

	var bpp int32
	if format != nil {
		bpp = int32(format.BitsPerPixel)
	}

	return listModes(dm, bpp), false, nil
}

// sizes of the display modes with the depth, without duplicates. SDL
// returns modes largest first and the order is preserved
func listModes(dm []sdl.DisplayMode, bpp int32) []Rect {
	var modes []Rect
	seen := make(map[Rect]bool)
	for _, m := range dm {
		if bpp != 0 && bitsPerPixel(m.Format) != bpp {
			continue
		}
		r := Rect{W: m.W, H: m.H}
		if !seen[r] {
			seen[r] = true
			modes = append(modes, r)
		}
	}
	return modes
}
