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
	"image"
	"image/color"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
	xdraw "golang.org/x/image/draw"
)

// Image returns a copy of the surface as an RGBA image. The per-surface alpha
// value is not applied.
func (s *Surface) Image() (*image.RGBA, error) {
	if !s.Initialised() {
		return nil, sdlerr.Logicf(NotInitialised, "Image")
	}

	if err := s.Lock(); err != nil {
		return nil, err
	}
	defer s.Unlock()

	w := int(s.surf.W)
	h := int(s.surf.H)
	pixels := s.surf.Pixels()
	pitch := int(s.surf.Pitch)
	bits := int(s.surf.Format.BitsPerPixel)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := sdl.GetRGBA(getPixel(pixels, pitch, bits, x, y), s.surf.Format)
			img.Set(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}

	return img, nil
}

// FromImage creates a new 32bit surface from an image.
func FromImage(img image.Image) (*Surface, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, sdlerr.Errorf(SDLError, "FromImage", "image is empty")
	}

	// the masks chosen by Masks() place the red component first in memory,
	// which is the same layout as image.NRGBA
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)

	s, err := NewSurface(int32(b.Dx()), int32(b.Dy()), 32, SWSurface)
	if err != nil {
		return nil, err
	}

	if err := s.Lock(); err != nil {
		s.Free()
		return nil, err
	}
	defer s.Unlock()

	dst := s.surf.Pixels()
	pitch := int(s.surf.Pitch)
	for y := 0; y < b.Dy(); y++ {
		copy(dst[y*pitch:], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+b.Dx()*4])
	}

	return s, nil
}
