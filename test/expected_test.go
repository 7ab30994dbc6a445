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

package test_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
)

func TestSuccessAndFailureValues(t *testing.T) {
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.ExpectSuccess(t, 1 < 2)

	test.ExpectFailure(t, sdlerr.Errorf("surface: %v", "locked"))
	test.ExpectFailure(t, sdlerr.Logicf("screen: %s", "not initialised"))
	test.ExpectFailure(t, 2 < 1)

	test.DemandSuccess(t, true)
	test.DemandFailure(t, io.EOF)
}

func TestEqualityValues(t *testing.T) {
	test.ExpectEquality(t, uint8(0xff), 0xff)
	test.ExpectEquality(t, "S16LSB", fmt.Sprintf("S%dLSB", 16))
	test.ExpectInequality(t, int32(640), 480)
	test.DemandEquality(t, len([]int{1, 2, 3}), 3)

	test.ExpectApproximate(t, 16383, 16384, 0.001)
	test.ExpectApproximate(t, float32(0.49), 0.5, 0.1)
	test.ExpectApproximate(t, 0, 0, 0)
}

func TestDemandImplements(t *testing.T) {
	var w io.Writer
	test.DemandImplements(t, &test.CompareWriter{}, w)
	test.DemandImplements[fmt.Stringer](t, &test.CompareWriter{}, nil)
}

func TestCompareWriter(t *testing.T) {
	var cw test.CompareWriter
	test.ExpectEquality(t, len(cw.Lines()), 0)

	fmt.Fprintf(&cw, "video: %dx%d\n", 320, 240)
	fmt.Fprint(&cw, "audio: 44100Hz\n")
	test.ExpectSuccess(t, cw.Compare("video: 320x240\naudio: 44100Hz\n"))
	test.DemandEquality(t, len(cw.Lines()), 2)
	test.ExpectEquality(t, cw.Lines()[1], "audio: 44100Hz")

	cw.Clear()
	test.ExpectSuccess(t, cw.Compare(""))
	test.ExpectEquality(t, cw.String(), "")
}
