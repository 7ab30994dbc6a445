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
	"testing"

	"github.com/jetsetilly/sdl4go/test"
)

func TestGammaRamp(t *testing.T) {
	black := CalculateGammaRamp(0.0)
	for i := range black {
		test.ExpectEquality(t, black[i], 0, i)
	}

	identity := CalculateGammaRamp(1.0)
	test.ExpectEquality(t, identity[0], 0)
	test.ExpectEquality(t, identity[1], 0x0101)
	test.ExpectEquality(t, identity[255], 0xffff)

	// a gamma greater than one brightens the mid tones
	bright := CalculateGammaRamp(2.0)
	test.ExpectApproximate(t, int(bright[128]), 46340, 0.001)
	test.ExpectSuccess(t, bright[128] > identity[128])
	for i := 1; i < len(bright); i++ {
		test.ExpectSuccess(t, bright[i] >= bright[i-1], i)
	}

	dark := CalculateGammaRamp(0.5)
	test.ExpectSuccess(t, dark[128] < identity[128])

	// negative gamma is treated the same as zero
	neg := CalculateGammaRamp(-1.0)
	test.ExpectEquality(t, neg[255], 0)
}

func TestGammaWithoutScreen(t *testing.T) {
	var scr Screen
	test.ExpectFailure(t, scr.SetGamma(1.0, 1.0, 1.0))
	test.ExpectFailure(t, scr.SetGammaRamp(nil, nil, nil))
	_, _, _, err := scr.GammaRamp()
	test.ExpectFailure(t, err)
}
