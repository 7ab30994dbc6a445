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


package main

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/jetsetilly/sdl4go/event"
	"github.com/jetsetilly/sdl4go/joystick"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/timer"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/jetsetilly/sdl4go/wm"
	"github.com/veandco/go-sdl2/sdl"
)

// the user event code pushed by the tick timer
const tickCode = 1

func eventsMode(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	motion := md.AddBool("motion", false, "report mouse motion events")
	tick := md.AddInt("tick", 1000, "interval in milliseconds of the user event timer (0 is no timer)")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noMoreArgs(md); err != nil {
		return err
	}

	q := event.NewQueue()
	quit, err := start(cfg, system.Video|system.Timer|system.Joystick, q)
	if err != nil {
		return err
	}
	defer quit()

	if _, err := video.SetVideoMode(320, 200, 0, video.Resizable); err != nil {
		return err
	}
	defer video.CloseScreen()
	wm.SetCaption("sdl4go events", "events")

	if !*motion {
		q.EventState(event.MouseMotion, event.Ignore)
	}
	event.JoystickEventState(event.Enable)

	if *tick > 0 {
		id, err := timer.AddTimer(uint32(*tick), func(interval uint32, _ any) uint32 {
			if err := q.Push(event.NewUser(tickCode, nil, nil)); err != nil {
				logger.Log(logger.Allow, "sdl4go", err)
			}
			return interval
		}, nil)
		if err != nil {
			return err
		}
		defer timer.RemoveTimer(id)
	}

	return run(q, &eventReporter{out: os.Stdout}, 0, nil)
}

// eventReporter writes a line for every event it sees
type eventReporter struct {
	quitter
	out   io.Writer
	ticks int
}

func (h *eventReporter) report(kind event.Kind, format string, args ...any) bool {
	fmt.Fprintf(h.out, "%-18s %s\n", kind, fmt.Sprintf(format, args...))
	return true
}

func (h *eventReporter) Active(gain bool, state event.AppState) bool {
	return h.report(event.Active, "gain=%v state=%#02x", gain, uint8(state))
}

func (h *eventReporter) KeyPressed(key event.Keysym) bool {
	h.quitter.KeyPressed(key)
	return h.report(event.KeyDown, "%s", event.KeyName(key.Sym))
}

func (h *eventReporter) KeyReleased(key event.Keysym) bool {
	return h.report(event.KeyUp, "%s", event.KeyName(key.Sym))
}

func (h *eventReporter) MouseMotion(state uint32, x, y, xrel, yrel int32) bool {
	return h.report(event.MouseMotion, "%d,%d (%+d,%+d) buttons=%#x", x, y, xrel, yrel, state)
}

func (h *eventReporter) MouseButtonPressed(button uint8, x, y int32) bool {
	return h.report(event.MouseButtonDown, "button %d at %d,%d", button, x, y)
}

func (h *eventReporter) MouseButtonReleased(button uint8, x, y int32) bool {
	return h.report(event.MouseButtonUp, "button %d at %d,%d", button, x, y)
}

func (h *eventReporter) JoyAxis(which int32, axis uint8, value int16) bool {
	return h.report(event.JoyAxisMotion, "joystick %d axis %d = %d", which, axis, value)
}

func (h *eventReporter) JoyBall(which int32, ball uint8, xrel, yrel int16) bool {
	return h.report(event.JoyBallMotion, "joystick %d ball %d (%+d,%+d)", which, ball, xrel, yrel)
}

func (h *eventReporter) JoyHat(which int32, hat uint8, value uint8) bool {
	return h.report(event.JoyHatMotion, "joystick %d hat %d %s", which, hat, joystick.HatName(value))
}

func (h *eventReporter) JoyButtonPressed(which int32, button uint8) bool {
	return h.report(event.JoyButtonDown, "joystick %d button %d", which, button)
}

func (h *eventReporter) JoyButtonReleased(which int32, button uint8) bool {
	return h.report(event.JoyButtonUp, "joystick %d button %d", which, button)
}

func (h *eventReporter) VideoResize(w, ht int32) bool {
	if _, err := video.SetVideoMode(w, ht, 0, video.Resizable); err != nil {
		logger.Log(logger.Allow, "sdl4go", err)
	}
	return h.report(event.VideoResize, "%dx%d", w, ht)
}

func (h *eventReporter) VideoExpose() bool {
	return h.report(event.VideoExpose, "")
}

func (h *eventReporter) User(code int32, _, _ unsafe.Pointer) bool {
	if code == tickCode {
		h.ticks++
		return h.report(event.User, "tick %d at %dms", h.ticks, timer.Ticks())
	}
	return h.report(event.User, "code %d", code)
}

func (h *eventReporter) Quit() bool {
	h.quitter.Quit()
	return h.report(event.Quit, "")
}

func (h *eventReporter) All(ev sdl.Event) bool {
	return h.report(event.KindOf(ev), "%T", ev)
}

func keyboardMode(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	repeat := md.AddBool("repeat", false, "enable key repeat at the default rate")
	unicode := md.AddBool("unicode", true, "report text input")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noMoreArgs(md); err != nil {
		return err
	}

	q := event.NewQueue()
	quit, err := start(cfg, system.Video, q)
	if err != nil {
		return err
	}
	defer quit()

	if *repeat {
		if err := q.EnableKeyRepeat(event.DefaultRepeatDelay, event.DefaultRepeatInterval); err != nil {
			return err
		}
	}

	if _, err := video.SetVideoMode(320, 200, 0, video.SWSurface); err != nil {
		return err
	}
	defer video.CloseScreen()
	wm.SetCaption("sdl4go keyboard", "keyboard")

	if *unicode {
		event.EnableUnicode(event.Enable)
		defer event.EnableUnicode(event.Ignore)
	}

	h := &keyReporter{out: os.Stdout}
	return run(q, h, framePeriod, h.modifiers)
}

type keyReporter struct {
	quitter
	out io.Writer
	mod sdl.Keymod
}

func (h *keyReporter) key(dir string, key event.Keysym) {
	fmt.Fprintf(h.out, "%s %-12s scancode=%-3d mod=%#04x\n", dir, event.KeyName(key.Sym), key.Scancode, key.Mod)
}

func (h *keyReporter) KeyPressed(key event.Keysym) bool {
	h.quitter.KeyPressed(key)
	h.key("down", key)
	return true
}

func (h *keyReporter) KeyReleased(key event.Keysym) bool {
	h.key("up  ", key)
	return true
}

func (h *keyReporter) All(ev sdl.Event) bool {
	if t, ok := ev.(*sdl.TextInputEvent); ok {
		fmt.Fprintf(h.out, "text %q\n", t.GetText())
		return true
	}
	return false
}

// modifiers reports changes to the modifier state. the state is polled rather
// than taken from the key events
func (h *keyReporter) modifiers() error {
	mod := event.ModState()
	if mod != h.mod {
		h.mod = mod
		fmt.Fprintf(h.out, "modifiers %#04x\n", uint16(mod))
	}
	return nil
}
