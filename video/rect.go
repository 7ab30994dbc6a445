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
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"
)

// Rect is a rectangle with the origin at the top left.
type Rect struct {
	X, Y int32
	W, H int32
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d) %dx%d", r.X, r.Y, r.W, r.H)
}

// Equals returns true if every field of both rectangles are equal.
func (r Rect) Equals(o Rect) bool {
	return r == o
}

// Add adds each field of o to the corresponding field of r.
func (r Rect) Add(o Rect) Rect {
	return Rect{X: r.X + o.X, Y: r.Y + o.Y, W: r.W + o.W, H: r.H + o.H}
}

// Sub subtracts each field of o from the corresponding field of r.
func (r Rect) Sub(o Rect) Rect {
	return Rect{X: r.X - o.X, Y: r.Y - o.Y, W: r.W - o.W, H: r.H - o.H}
}

// Inc increases every field by one.
func (r *Rect) Inc() {
	r.X++
	r.Y++
	r.W++
	r.H++
}

// Dec decreases every field by one.
func (r *Rect) Dec() {
	r.X--
	r.Y--
	r.W--
	r.H--
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the largest rectangle contained by both r and o. If there
// is no intersection the zero Rect is returned.
func (r Rect) Intersect(o Rect) Rect {
	return FromRectangle(r.Rectangle().Intersect(o.Rectangle()))
}

// Union returns the smallest rectangle that contains both r and o.
func (r Rect) Union(o Rect) Rect {
	return FromRectangle(r.Rectangle().Union(o.Rectangle()))
}

// Rectangle converts the Rect to the image.Rectangle type.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

// FromRectangle converts an image.Rectangle to a Rect.
func FromRectangle(r image.Rectangle) Rect {
	if r.Empty() {
		return Rect{}
	}
	return Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}

// SDL returns the equivalent sdl.Rect.
func (r Rect) SDL() sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// FromSDL converts an sdl.Rect to a Rect.
func FromSDL(r sdl.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// sdlRect returns a pointer to an sdl.Rect equivalent to r. a nil Rect
// results in a nil pointer, which SDL interprets as the entire surface
func sdlRect(r *Rect) *sdl.Rect {
	if r == nil {
		return nil
	}
	s := r.SDL()
	return &s
}
