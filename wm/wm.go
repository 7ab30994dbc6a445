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

package wm

import (
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	NoWindow = "wm: %s: there is no window"
	SDLError = "wm: %s: %v"
)

var caption struct {
	title string
	icon  string
}

func init() {
	video.OnWindowCreated(func(w *sdl.Window) {
		if caption.title != "" {
			w.SetTitle(caption.title)
		}
	})
}

// SetCaption sets the title of the window and the title shown when the
// window is iconified. SDL2 has no separate icon title so it is only
// remembered.
func SetCaption(title string, icon string) {
	caption.title = title
	caption.icon = icon
	if w := video.CurrentWindow(); w != nil {
		w.SetTitle(title)
	}
}

// Caption returns the window title and icon title.
func Caption() (title string, icon string) {
	return caption.title, caption.icon
}

// Title returns the window title.
func Title() string {
	return caption.title
}

// IconTitle returns the icon title.
func IconTitle() string {
	return caption.icon
}

// SetIcon sets the window icon. See video.SetIcon() for the format of the
// mask.
func SetIcon(icon *video.Surface, mask []byte) error {
	return video.SetIcon(icon, mask)
}

// IconifyWindow minimises the window. Returns false if there is no window.
func IconifyWindow() bool {
	w := video.CurrentWindow()
	if w == nil {
		return false
	}
	w.Minimize()
	logger.Log(logger.Allow, "wm", "window iconified")
	return true
}

// ToggleFullScreen switches the screen between windowed and fullscreen.
func ToggleFullScreen() error {
	return video.ToggleFullScreen()
}

// GrabMode is used with GrabInput().
type GrabMode int

// List of valid GrabMode values.
const (
	GrabQuery GrabMode = -1
	GrabOff   GrabMode = 0
	GrabOn    GrabMode = 1
)

func (m GrabMode) String() string {
	switch m {
	case GrabQuery:
		return "query"
	case GrabOff:
		return "off"
	case GrabOn:
		return "on"
	}
	return "unknown"
}

// GrabInput confines the mouse and keyboard input to the window. GrabQuery
// returns the current mode without changing it. Input is never grabbed if
// there is no window.
func GrabInput(mode GrabMode) GrabMode {
	w := video.CurrentWindow()
	if w == nil {
		return GrabOff
	}

	switch mode {
	case GrabOn:
		w.SetGrab(true)
	case GrabOff:
		w.SetGrab(false)
	}

	if w.GetGrab() {
		return GrabOn
	}
	return GrabOff
}

// names of the window system types. the order is the same as the
// SDL_SYSWM_TYPE enumeration
var subsystems = []string{
	"unknown",
	"Windows",
	"X11",
	"DirectFB",
	"Cocoa",
	"UIKit",
	"Wayland",
	"Mir",
	"WinRT",
	"Android",
	"Vivante",
	"OS2",
	"Haiku",
	"KMSDRM",
	"RISCOS",
}

// SubsystemName returns the name of the window system type.
func SubsystemName(subsystem uint32) string {
	if int(subsystem) < len(subsystems) {
		return subsystems[subsystem]
	}
	return subsystems[0]
}

// Info describes the window system.
type Info struct {
	Major, Minor, Patch uint8
	Subsystem           string
}

// GetInfo returns information about the window system of the current window.
func GetInfo() (Info, error) {
	w := video.CurrentWindow()
	if w == nil {
		return Info{}, sdlerr.Logicf(NoWindow, "GetInfo")
	}

	info, err := w.GetWMInfo()
	if err != nil {
		return Info{}, sdlerr.Errorf(SDLError, "GetInfo", err)
	}

	return Info{
		Major:     info.Version.Major,
		Minor:     info.Version.Minor,
		Patch:     info.Version.Patch,
		Subsystem: SubsystemName(uint32(info.Subsystem)),
	}, nil
}
