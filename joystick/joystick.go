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

package joystick

import (
	"fmt"

	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	NotOpened  = "joystick: %s: joystick is not opened"
	OpenError  = "joystick: open: %v"
	CloseError = "joystick: close: %v"
	BallError  = "joystick: ball: %v"
)

// Hat positions.
const (
	HatCentered  = sdl.HAT_CENTERED
	HatUp        = sdl.HAT_UP
	HatRight     = sdl.HAT_RIGHT
	HatDown      = sdl.HAT_DOWN
	HatLeft      = sdl.HAT_LEFT
	HatRightUp   = sdl.HAT_RIGHTUP
	HatRightDown = sdl.HAT_RIGHTDOWN
	HatLeftUp    = sdl.HAT_LEFTUP
	HatLeftDown  = sdl.HAT_LEFTDOWN
)

// HatName returns a description of the hat position.
func HatName(v uint8) string {
	switch v {
	case HatCentered:
		return "centered"
	case HatUp:
		return "up"
	case HatRight:
		return "right"
	case HatDown:
		return "down"
	case HatLeft:
		return "left"
	case HatRightUp:
		return "right up"
	case HatRightDown:
		return "right down"
	case HatLeftUp:
		return "left up"
	case HatLeftDown:
		return "left down"
	}
	return fmt.Sprintf("unknown (%#02x)", v)
}

// number of open Joystick instances for each index
var opened = make(map[int]int)

// NumJoysticks returns the number of joysticks attached to the system.
func NumJoysticks() int {
	n := sdl.NumJoysticks()
	if n < 0 {
		logger.Logf(logger.Allow, "joystick", "%v", sdl.GetError())
		return 0
	}
	return n
}

// Name returns the name of the joystick at the index without opening it.
func Name(index int) string {
	return sdl.JoystickNameForIndex(index)
}

// Opened returns true if the joystick at the index has been opened.
func Opened(index int) bool {
	return opened[index] > 0
}

// Update the state of all opened joysticks. It is called automatically if
// joystick events are enabled.
func Update() {
	sdl.JoystickUpdate()
}

// Joystick is a handle to an opened joystick. The zero value is an unopened
// joystick.
type Joystick struct {
	joy   *sdl.Joystick
	index int
}

// Open the joystick at the index.
func Open(index int) (*Joystick, error) {
	j := &Joystick{}
	if err := j.Open(index); err != nil {
		return nil, err
	}
	return j, nil
}

// Open the joystick at the index. If the joystick is already open it is
// closed first.
func (j *Joystick) Open(index int) error {
	if j.joy != nil {
		_ = j.Close()
	}

	joy := sdl.JoystickOpen(index)
	if joy == nil || !joy.Attached() {
		return sdlerr.Errorf(OpenError, sdl.GetError())
	}

	j.joy = joy
	j.index = index
	opened[index]++

	logger.Logf(logger.Allow, "joystick", "opened %s", joy.Name())

	return nil
}

// Opened returns true if the joystick is open.
func (j *Joystick) Opened() bool {
	return j.joy != nil
}

// Index returns the index used to open the joystick.
func (j *Joystick) Index() (int, error) {
	if j.joy == nil {
		return -1, sdlerr.Logicf(NotOpened, "Index")
	}
	return j.index, nil
}

// Name returns the name of the joystick.
func (j *Joystick) Name() (string, error) {
	if j.joy == nil {
		return "", sdlerr.Logicf(NotOpened, "Name")
	}
	return j.joy.Name(), nil
}

// NumAxes returns the number of axes of the joystick.
func (j *Joystick) NumAxes() (int, error) {
	if j.joy == nil {
		return 0, sdlerr.Logicf(NotOpened, "NumAxes")
	}
	return j.joy.NumAxes(), nil
}

// NumBalls returns the number of trackballs of the joystick.
func (j *Joystick) NumBalls() (int, error) {
	if j.joy == nil {
		return 0, sdlerr.Logicf(NotOpened, "NumBalls")
	}
	return j.joy.NumBalls(), nil
}

// NumHats returns the number of hats of the joystick.
func (j *Joystick) NumHats() (int, error) {
	if j.joy == nil {
		return 0, sdlerr.Logicf(NotOpened, "NumHats")
	}
	return j.joy.NumHats(), nil
}

// NumButtons returns the number of buttons of the joystick.
func (j *Joystick) NumButtons() (int, error) {
	if j.joy == nil {
		return 0, sdlerr.Logicf(NotOpened, "NumButtons")
	}
	return j.joy.NumButtons(), nil
}

// Axis returns the position of the axis, between -32768 and 32767.
func (j *Joystick) Axis(axis int) (int16, error) {
	if j.joy == nil {
		return 0, sdlerr.Logicf(NotOpened, "Axis")
	}
	return j.joy.Axis(axis), nil
}

// Hat returns the position of the hat.
func (j *Joystick) Hat(hat int) (uint8, error) {
	if j.joy == nil {
		return 0, sdlerr.Logicf(NotOpened, "Hat")
	}
	return j.joy.Hat(hat), nil
}

// Button returns true if the button is pressed.
func (j *Joystick) Button(button int) (bool, error) {
	if j.joy == nil {
		return false, sdlerr.Logicf(NotOpened, "Button")
	}
	return j.joy.Button(button) == 1, nil
}

// Ball returns the motion of the trackball since the last call.
func (j *Joystick) Ball(ball int) (dx, dy int32, err error) {
	if j.joy == nil {
		return 0, 0, sdlerr.Logicf(NotOpened, "Ball")
	}
	if j.joy.Ball(ball, &dx, &dy) != 0 {
		return 0, 0, sdlerr.Errorf(BallError, sdl.GetError())
	}
	return dx, dy, nil
}

// Close the joystick. Closing a joystick that is not open is an error.
func (j *Joystick) Close() error {
	if j.joy == nil {
		return sdlerr.Errorf(CloseError, "joystick is not opened")
	}

	j.joy.Close()
	j.joy = nil

	opened[j.index]--
	if opened[j.index] <= 0 {
		delete(opened, j.index)
	}
	j.index = -1

	return nil
}
