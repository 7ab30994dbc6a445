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

package video_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/sdl4go/test"
	"github.com/jetsetilly/sdl4go/video"
)

func TestRectArithmetic(t *testing.T) {
	a := video.Rect{X: 10, Y: 20, W: 30, H: 40}
	b := video.Rect{X: 1, Y: 2, W: 3, H: 4}

	test.ExpectEquality(t, a.Add(b), video.Rect{X: 11, Y: 22, W: 33, H: 44})
	test.ExpectEquality(t, a.Sub(b), video.Rect{X: 9, Y: 18, W: 27, H: 36})

	a.Inc()
	test.ExpectEquality(t, a, video.Rect{X: 11, Y: 21, W: 31, H: 41})
	a.Dec()
	a.Dec()
	test.ExpectEquality(t, a, video.Rect{X: 9, Y: 19, W: 29, H: 39})

	test.ExpectSuccess(t, a.Equals(a))
	test.ExpectFailure(t, a.Equals(b))
}

func TestRectGeometry(t *testing.T) {
	a := video.Rect{X: 0, Y: 0, W: 10, H: 10}
	b := video.Rect{X: 5, Y: 5, W: 10, H: 10}
	c := video.Rect{X: 20, Y: 20, W: 5, H: 5}

	test.ExpectEquality(t, a.Intersect(b), video.Rect{X: 5, Y: 5, W: 5, H: 5})
	test.ExpectEquality(t, a.Union(b), video.Rect{X: 0, Y: 0, W: 15, H: 15})
	test.ExpectSuccess(t, a.Intersect(c).Empty())

	test.ExpectSuccess(t, a.Contains(0, 0))
	test.ExpectSuccess(t, a.Contains(9, 9))
	test.ExpectFailure(t, a.Contains(10, 9))
	test.ExpectFailure(t, a.Contains(-1, 0))

	test.ExpectSuccess(t, video.Rect{W: 0, H: 10}.Empty())
	test.ExpectFailure(t, a.Empty())
}

func TestRectConversion(t *testing.T) {
	a := video.Rect{X: 3, Y: 4, W: 5, H: 6}

	test.ExpectEquality(t, a.Rectangle(), image.Rect(3, 4, 8, 10))
	test.ExpectEquality(t, video.FromRectangle(a.Rectangle()), a)
	test.ExpectEquality(t, video.FromSDL(a.SDL()), a)
	test.ExpectEquality(t, a.String(), "(3, 4) 5x6")
}
