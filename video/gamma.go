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

// CalculateGammaRamp returns the gamma ramp for the gamma value. A gamma of
// zero or less is entirely black. A gamma of one is the identity ramp.
func CalculateGammaRamp(gamma float32) [256]uint16 {
	var ramp [256]uint16
	if gamma <= 0.0 {
		return ramp
	}
	sdl.CalculateGammaRamp(gamma, &ramp)
	return ramp
}

// SetGamma sets the gamma of each colour channel of the screen.
func (scr *Screen) SetGamma(red, green, blue float32) error {
	r := CalculateGammaRamp(red)
	g := CalculateGammaRamp(green)
	b := CalculateGammaRamp(blue)
	return scr.SetGammaRamp(&r, &g, &b)
}

// SetGammaRamp sets the gamma lookup tables of the screen. A nil table leaves
// that channel unchanged.
func (scr *Screen) SetGammaRamp(red, green, blue *[256]uint16) error {
	if scr.window == nil {
		return sdlerr.Logicf(NoScreen, "SetGammaRamp")
	}

	if red == nil || green == nil || blue == nil {
		r, g, b, err := scr.GammaRamp()
		if err != nil {
			return err
		}
		if red == nil {
			red = &r
		}
		if green == nil {
			green = &g
		}
		if blue == nil {
			blue = &b
		}
	}

	if err := scr.window.SetGammaRamp(red, green, blue); err != nil {
		return sdlerr.Errorf(SDLError, "SetGammaRamp", err)
	}

	return nil
}

// GammaRamp returns the gamma lookup tables of the display showing the screen.
func (scr *Screen) GammaRamp() (red, green, blue [256]uint16, err error) {
	if scr.window == nil {
		return red, green, blue, sdlerr.Logicf(NoScreen, "GammaRamp")
	}

	r, g, b, err := scr.window.GetGammaRamp()
	if err != nil {
		return red, green, blue, sdlerr.Errorf(SDLError, "GammaRamp", err)
	}

	return *r, *g, *b, nil
}
