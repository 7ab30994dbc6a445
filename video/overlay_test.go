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

func TestOverlayPlanar(t *testing.T) {
	ov, err := newOverlay(4, 2, YV12Overlay, nil)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(ov.Planes()), 3)
	test.ExpectEquality(t, ov.Pitches()[0], 4)
	test.ExpectEquality(t, ov.Pitches()[1], 2)

	planes := ov.Planes()
	for i := range planes[0] {
		planes[0][i] = byte(i)
	}

	// YV12 has the V plane before the U plane
	planes[1][0] = 0xcc
	planes[2][0] = 0xbb

	img, err := ov.Image()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Y[img.YStride+3], 7)
	test.ExpectEquality(t, img.Cb[0], 0xbb)
	test.ExpectEquality(t, img.Cr[0], 0xcc)

	ov, err = newOverlay(4, 2, IYUVOverlay, nil)
	test.DemandSuccess(t, err)
	ov.Planes()[1][0] = 0xbb
	ov.Planes()[2][0] = 0xcc
	img, err = ov.Image()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Cb[0], 0xbb)
	test.ExpectEquality(t, img.Cr[0], 0xcc)
}

func TestOverlayPacked(t *testing.T) {
	ov, err := newOverlay(2, 1, UYVYOverlay, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ov.Planes()), 1)
	test.ExpectEquality(t, ov.Pitches()[0], 4)

	copy(ov.Planes()[0], []byte{10, 20, 30, 40})

	img, err := ov.Image()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Y[0], 20)
	test.ExpectEquality(t, img.Y[1], 40)
	test.ExpectEquality(t, img.Cb[0], 10)
	test.ExpectEquality(t, img.Cr[0], 30)

	ov, err = newOverlay(2, 1, YVYUOverlay, nil)
	test.DemandSuccess(t, err)
	copy(ov.Planes()[0], []byte{10, 20, 30, 40})
	img, err = ov.Image()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Y[0], 10)
	test.ExpectEquality(t, img.Y[1], 30)
	test.ExpectEquality(t, img.Cb[0], 40)
	test.ExpectEquality(t, img.Cr[0], 20)
}

func TestOverlayErrors(t *testing.T) {
	_, err := newOverlay(4, 4, 0x12345678, nil)
	test.ExpectFailure(t, err)

	_, err = newOverlay(0, 4, YUY2Overlay, nil)
	test.ExpectFailure(t, err)

	_, err = CreateOverlay(4, 4, YUY2Overlay, nil)
	test.ExpectFailure(t, err)

	ov, err := newOverlay(4, 4, YUY2Overlay, nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ov.Display(Rect{W: 4, H: 4}))

	ov.Free()
	test.ExpectFailure(t, ov.Lock())
	_, err = ov.Image()
	test.ExpectFailure(t, err)
}
