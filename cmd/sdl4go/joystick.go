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
	"os"

	"github.com/jetsetilly/sdl4go/event"
	"github.com/jetsetilly/sdl4go/joystick"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/jetsetilly/sdl4go/wm"
)

// axis values closer to zero than this are reported as zero
const deadZone = 3200

// joystickState is the polled state of an opened joystick. changes are
// written to stdout
type joystickState struct {
	joy     *joystick.Joystick
	axes    []int16
	hats    []uint8
	buttons []bool
}

func joystickMode(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	index := md.AddInt("index", 0, "joystick to open")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noMoreArgs(md); err != nil {
		return err
	}

	q := event.NewQueue()
	quit, err := start(cfg, system.Video|system.Joystick, q)
	if err != nil {
		return err
	}
	defer quit()

	if joystick.NumJoysticks() == 0 {
		return fmt.Errorf("no joysticks found")
	}

	js := &joystickState{}
	js.joy, err = joystick.Open(*index)
	if err != nil {
		return err
	}
	defer js.joy.Close()

	if err := js.describe(); err != nil {
		return err
	}

	if _, err := video.SetVideoMode(320, 200, 0, video.SWSurface); err != nil {
		return err
	}
	defer video.CloseScreen()
	wm.SetCaption(fmt.Sprintf("sdl4go joystick %d", *index), "joystick")

	// the state is polled so events are not needed
	event.JoystickEventState(event.Ignore)

	return run(q, &quitter{}, framePeriod, js.poll)
}

func (js *joystickState) describe() error {
	name, err := js.joy.Name()
	if err != nil {
		return err
	}
	axes, err := js.joy.NumAxes()
	if err != nil {
		return err
	}
	balls, err := js.joy.NumBalls()
	if err != nil {
		return err
	}
	hats, err := js.joy.NumHats()
	if err != nil {
		return err
	}
	buttons, err := js.joy.NumButtons()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d axes, %d balls, %d hats, %d buttons\n", name, axes, balls, hats, buttons)

	js.axes = make([]int16, axes)
	js.hats = make([]uint8, hats)
	js.buttons = make([]bool, buttons)

	return nil
}

func (js *joystickState) poll() error {
	joystick.Update()

	for i := range js.axes {
		v, err := js.joy.Axis(i)
		if err != nil {
			return err
		}
		if v > -deadZone && v < deadZone {
			v = 0
		}
		if v != js.axes[i] {
			js.axes[i] = v
			fmt.Fprintf(os.Stdout, "axis %d: %d\n", i, v)
		}
	}

	for i := range js.hats {
		v, err := js.joy.Hat(i)
		if err != nil {
			return err
		}
		if v != js.hats[i] {
			js.hats[i] = v
			fmt.Fprintf(os.Stdout, "hat %d: %s\n", i, joystick.HatName(v))
		}
	}

	for i := range js.buttons {
		v, err := js.joy.Button(i)
		if err != nil {
			return err
		}
		if v != js.buttons[i] {
			js.buttons[i] = v
			fmt.Fprintf(os.Stdout, "button %d: %v\n", i, v)
		}
	}

	return nil
}
