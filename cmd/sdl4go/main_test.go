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
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/sdl4go/audio"
	"github.com/jetsetilly/sdl4go/event"
	"github.com/jetsetilly/sdl4go/mouse"
	"github.com/jetsetilly/sdl4go/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestLaunchArguments(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"-help"}), exitOK)
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}), exitParseError)
}

func TestModeNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range modes {
		test.ExpectEquality(t, seen[m.name], false, m.name)
		test.ExpectEquality(t, m.run != nil, true, m.name)
		seen[m.name] = true
	}
	test.ExpectEquality(t, modes[0].name, "INFO")
}

func TestQuitter(t *testing.T) {
	var h quitter
	test.ExpectEquality(t, h.finished(), false)
	test.ExpectEquality(t, h.KeyPressed(event.Keysym{Sym: sdl.K_a}), false)
	test.ExpectEquality(t, h.finished(), false)
	test.ExpectEquality(t, h.KeyPressed(event.Keysym{Sym: sdl.K_ESCAPE}), true)
	test.ExpectEquality(t, h.finished(), true)

	h = quitter{}
	test.ExpectEquality(t, event.Dispatch(event.NewQuit(), &h), true)
	test.ExpectEquality(t, h.finished(), true)
}

func TestMakeTone(t *testing.T) {
	snd := makeTone(8000, 1000, 0.5)
	test.ExpectEquality(t, snd.Spec.Format, audio.S16LSB)
	test.ExpectEquality(t, snd.Spec.Channels, uint8(2))
	test.ExpectEquality(t, len(snd.Data), 4000*4)

	// the first sample is zero and both channels are the same
	test.ExpectEquality(t, binary.LittleEndian.Uint16(snd.Data[0:]), 0)
	for i := 0; i < len(snd.Data); i += 4 {
		l := binary.LittleEndian.Uint16(snd.Data[i:])
		r := binary.LittleEndian.Uint16(snd.Data[i+2:])
		if !test.ExpectEquality(t, l, r, i) {
			break // for loop
		}
	}

	// peak of a 1000Hz tone at 8000Hz is the third frame
	peak := int16(binary.LittleEndian.Uint16(snd.Data[2*4:]))
	test.ExpectApproximate(t, int32(peak), int32(16383), 0.01)
}

func TestCrosshair(t *testing.T) {
	_, _, w, h, hx, hy, err := mouse.ParseCursor(crosshair)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, int32(16))
	test.ExpectEquality(t, h, int32(16))
	test.ExpectEquality(t, hx, int32(7))
	test.ExpectEquality(t, hy, int32(7))
}
