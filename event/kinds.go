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

package event

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Kind is the type of an event.
type Kind int

// List of valid Kind values.
const (
	Other Kind = iota
	Active
	KeyDown
	KeyUp
	MouseMotion
	MouseButtonDown
	MouseButtonUp
	JoyAxisMotion
	JoyBallMotion
	JoyHatMotion
	JoyButtonDown
	JoyButtonUp
	Quit
	SysWM
	VideoResize
	VideoExpose
	User
)

func (k Kind) String() string {
	switch k {
	case Active:
		return "active"
	case KeyDown:
		return "key down"
	case KeyUp:
		return "key up"
	case MouseMotion:
		return "mouse motion"
	case MouseButtonDown:
		return "mouse button down"
	case MouseButtonUp:
		return "mouse button up"
	case JoyAxisMotion:
		return "joystick axis"
	case JoyBallMotion:
		return "joystick ball"
	case JoyHatMotion:
		return "joystick hat"
	case JoyButtonDown:
		return "joystick button down"
	case JoyButtonUp:
		return "joystick button up"
	case Quit:
		return "quit"
	case SysWM:
		return "system window manager"
	case VideoResize:
		return "video resize"
	case VideoExpose:
		return "video expose"
	case User:
		return "user"
	}
	return "other"
}

// Mask is a set of event kinds.
type Mask uint32

// MaskOf returns the mask for a single event kind.
func MaskOf(k Kind) Mask {
	return 1 << Mask(k)
}

// Event masks.
const (
	ActiveMask          = Mask(1 << Active)
	KeyDownMask         = Mask(1 << KeyDown)
	KeyUpMask           = Mask(1 << KeyUp)
	KeyMask             = KeyDownMask | KeyUpMask
	MouseMotionMask     = Mask(1 << MouseMotion)
	MouseButtonDownMask = Mask(1 << MouseButtonDown)
	MouseButtonUpMask   = Mask(1 << MouseButtonUp)
	MouseMask           = MouseMotionMask | MouseButtonDownMask | MouseButtonUpMask
	JoyAxisMotionMask   = Mask(1 << JoyAxisMotion)
	JoyBallMotionMask   = Mask(1 << JoyBallMotion)
	JoyHatMotionMask    = Mask(1 << JoyHatMotion)
	JoyButtonDownMask   = Mask(1 << JoyButtonDown)
	JoyButtonUpMask     = Mask(1 << JoyButtonUp)
	JoyMask             = JoyAxisMotionMask | JoyBallMotionMask | JoyHatMotionMask | JoyButtonDownMask | JoyButtonUpMask
	QuitMask            = Mask(1 << Quit)
	SysWMMask           = Mask(1 << SysWM)
	VideoResizeMask     = Mask(1 << VideoResize)
	VideoExposeMask     = Mask(1 << VideoExpose)
	UserMask            = Mask(1 << User)
	OtherMask           = Mask(1 << Other)
	AllMask             = Mask(0xffffffff)
)

// KindOf returns the kind of the event. Mouse wheel events are of the
// MouseButtonDown kind.
func KindOf(ev sdl.Event) Kind {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return Quit
	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN {
			return KeyDown
		}
		return KeyUp
	case *sdl.MouseMotionEvent:
		return MouseMotion
	case *sdl.MouseButtonEvent:
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			return MouseButtonDown
		}
		return MouseButtonUp
	case *sdl.MouseWheelEvent:
		return MouseButtonDown
	case *sdl.JoyAxisEvent:
		return JoyAxisMotion
	case *sdl.JoyBallEvent:
		return JoyBallMotion
	case *sdl.JoyHatEvent:
		return JoyHatMotion
	case *sdl.JoyButtonEvent:
		if ev.Type == sdl.JOYBUTTONDOWN {
			return JoyButtonDown
		}
		return JoyButtonUp
	case *sdl.SysWMEvent:
		return SysWM
	case *sdl.UserEvent:
		return User
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_ENTER, sdl.WINDOWEVENT_LEAVE,
			sdl.WINDOWEVENT_FOCUS_GAINED, sdl.WINDOWEVENT_FOCUS_LOST,
			sdl.WINDOWEVENT_MINIMIZED, sdl.WINDOWEVENT_RESTORED:
			return Active
		case sdl.WINDOWEVENT_RESIZED:
			return VideoResize
		case sdl.WINDOWEVENT_EXPOSED:
			return VideoExpose
		}
	}
	return Other
}

// MaskFor returns the mask that matches the event. Mouse wheel events match
// both the MouseButtonDown and MouseButtonUp masks.
func MaskFor(ev sdl.Event) Mask {
	if _, ok := ev.(*sdl.MouseWheelEvent); ok {
		return MouseButtonDownMask | MouseButtonUpMask
	}
	return MaskOf(KindOf(ev))
}
