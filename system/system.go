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

package system

import (
	"strings"

	"github.com/jetsetilly/sdl4go/cdrom"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/veandco/go-sdl2/sdl"
)

// Error patterns.
const (
	InitError = "system: init: %v"
)

// Flags select subsystems for Init(), InitSubSystem(), QuitSubSystem() and
// WasInit().
type Flags uint32

// List of valid Flags values.
const (
	Timer      Flags = 0x00000001
	Audio      Flags = 0x00000010
	Video      Flags = 0x00000020
	CDROM      Flags = 0x00000100
	Joystick   Flags = 0x00000200
	Everything Flags = 0x0000ffff

	// accepted for compatibility and ignored
	NoParachute Flags = 0x00100000
	EventThread Flags = 0x01000000
)

func (f Flags) String() string {
	var s []string
	if f&Timer == Timer {
		s = append(s, "timer")
	}
	if f&Audio == Audio {
		s = append(s, "audio")
	}
	if f&Video == Video {
		s = append(s, "video")
	}
	if f&CDROM == CDROM {
		s = append(s, "cdrom")
	}
	if f&Joystick == Joystick {
		s = append(s, "joystick")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

// the flags passed to SDL
func (f Flags) sdl() uint32 {
	var v uint32
	if f&Timer == Timer {
		v |= sdl.INIT_TIMER
	}
	if f&Audio == Audio {
		v |= sdl.INIT_AUDIO
	}
	if f&Video == Video {
		v |= sdl.INIT_VIDEO | sdl.INIT_EVENTS
	}
	if f&Joystick == Joystick {
		v |= sdl.INIT_JOYSTICK
	}
	return v
}

// Init initialises the subsystems.
func Init(flags Flags) error {
	if err := sdl.Init(flags.sdl()); err != nil {
		return sdlerr.Errorf(InitError, err)
	}
	if err := initCDROM(flags); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "system", "initialised %s", flags)
	return nil
}

// InitSubSystem initialises subsystems after Init() has been called.
func InitSubSystem(flags Flags) error {
	if err := sdl.InitSubSystem(flags.sdl()); err != nil {
		return sdlerr.Errorf(InitError, err)
	}
	if err := initCDROM(flags); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "system", "initialised %s", flags)
	return nil
}

func initCDROM(flags Flags) error {
	if flags&CDROM == CDROM {
		if err := cdrom.Init(); err != nil {
			return sdlerr.Errorf(InitError, err)
		}
	}
	return nil
}

// QuitSubSystem shuts down the subsystems. Shutting down the video subsystem
// closes the screen.
func QuitSubSystem(flags Flags) {
	if flags&Video == Video {
		video.CloseScreen()
	}
	if flags&CDROM == CDROM {
		cdrom.Quit()
	}
	sdl.QuitSubSystem(flags.sdl())
	logger.Logf(logger.Allow, "system", "quit %s", flags)
}

// Quit shuts down every subsystem.
func Quit() {
	video.CloseScreen()
	cdrom.Quit()
	sdl.Quit()
	logger.Log(logger.Allow, "system", "quit")
}

// WasInit returns the subsystems in flags that have been initialised.
func WasInit(flags Flags) Flags {
	var v Flags

	was := sdl.WasInit(flags.sdl())
	if was&sdl.INIT_TIMER != 0 {
		v |= Timer
	}
	if was&sdl.INIT_AUDIO != 0 {
		v |= Audio
	}
	if was&sdl.INIT_VIDEO != 0 {
		v |= Video
	}
	if was&sdl.INIT_JOYSTICK != 0 {
		v |= Joystick
	}
	if cdrom.Initialised() {
		v |= CDROM
	}

	return v & flags
}

// GetError returns the most recent error reported by SDL. An empty string is
// returned if there is no error.
func GetError() string {
	if err := sdl.GetError(); err != nil {
		return err.Error()
	}
	return ""
}

// ClearError forgets the most recent error reported by SDL.
func ClearError() {
	sdl.ClearError()
}
