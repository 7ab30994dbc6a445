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

	"github.com/jetsetilly/sdl4go/sdlerr"
	xdraw "golang.org/x/image/draw"
)

// YUV overlay formats.
const (
	// planar modes
	YV12Overlay = 0x32315659 // Y + V + U
	IYUVOverlay = 0x56555949 // Y + U + V

	// packed modes
	YUY2Overlay = 0x32595559 // Y0 + U0 + Y1 + V0
	UYVYOverlay = 0x59565955 // U0 + Y0 + V0 + Y1
	YVYUOverlay = 0x55595659 // Y0 + V0 + Y1 + U0
)

// Overlay is a YUV image that is converted and scaled when it is displayed on
// the screen. The planes are held in memory and are always accessible but
// Lock() and Unlock() should still bracket any changes.
type Overlay struct {
	format uint32
	w, h   int32

	planes  [][]byte
	pitches []int32

	display *Screen
	locked  bool
}

// CreateOverlay creates a YUV overlay of the given size and format for the
// display.
func CreateOverlay(w, h int32, format uint32, display *Screen) (*Overlay, error) {
	if display == nil || display.window == nil {
		return nil, sdlerr.Logicf(NoScreen, "CreateOverlay")
	}
	return newOverlay(w, h, format, display)
}

func newOverlay(w, h int32, format uint32, display *Screen) (*Overlay, error) {
	if w <= 0 || h <= 0 {
		return nil, sdlerr.Errorf(SDLError, "CreateOverlay", fmt.Sprintf("invalid size %dx%d", w, h))
	}

	ov := &Overlay{
		format:  format,
		w:       w,
		h:       h,
		display: display,
	}

	// width and height of the chroma planes rounded up
	cw := (w + 1) / 2
	ch := (h + 1) / 2

	switch format {
	case YV12Overlay, IYUVOverlay:
		ov.pitches = []int32{w, cw, cw}
		ov.planes = [][]byte{
			make([]byte, w*h),
			make([]byte, cw*ch),
			make([]byte, cw*ch),
		}
	case YUY2Overlay, UYVYOverlay, YVYUOverlay:
		ov.pitches = []int32{cw * 4}
		ov.planes = [][]byte{make([]byte, cw*4*h)}
	default:
		return nil, sdlerr.Errorf(SDLError, "CreateOverlay", fmt.Sprintf("unsupported format %#08x", format))
	}

	return ov, nil
}

// Format returns the YUV format of the overlay.
func (ov *Overlay) Format() uint32 {
	return ov.format
}

// Size returns the width and height of the overlay.
func (ov *Overlay) Size() (int32, int32) {
	return ov.w, ov.h
}

// Planes returns the pixel data of each plane. For planar formats the first
// plane is always the Y plane.
func (ov *Overlay) Planes() [][]byte {
	return ov.planes
}

// Pitches returns the length in bytes of a row of each plane.
func (ov *Overlay) Pitches() []int32 {
	return ov.pitches
}

// Lock the overlay for direct access to the planes.
func (ov *Overlay) Lock() error {
	if ov.planes == nil {
		return sdlerr.Logicf(NotInitialised, "Overlay.Lock")
	}
	ov.locked = true
	return nil
}

// Unlock the overlay.
func (ov *Overlay) Unlock() {
	ov.locked = false
}

// Hardware always returns false. Overlays are converted in software.
func (ov *Overlay) Hardware() bool {
	return false
}

// Free the overlay.
func (ov *Overlay) Free() {
	ov.planes = nil
	ov.pitches = nil
	ov.display = nil
}

// Image returns the contents of the overlay as a YCbCr image.
func (ov *Overlay) Image() (*image.YCbCr, error) {
	if ov.planes == nil {
		return nil, sdlerr.Logicf(NotInitialised, "Overlay.Image")
	}

	w := int(ov.w)
	h := int(ov.h)

	switch ov.format {
	case YV12Overlay, IYUVOverlay:
		img := image.NewYCbCr(image.Rect(0, 0, w, h), image.YCbCrSubsampleRatio420)
		copyPlane(img.Y, img.YStride, ov.planes[0], int(ov.pitches[0]), w, h)

		u, v := ov.planes[2], ov.planes[1]
		if ov.format == IYUVOverlay {
			u, v = ov.planes[1], ov.planes[2]
		}
		cw := (w + 1) / 2
		ch := (h + 1) / 2
		copyPlane(img.Cb, img.CStride, u, int(ov.pitches[1]), cw, ch)
		copyPlane(img.Cr, img.CStride, v, int(ov.pitches[1]), cw, ch)

		return img, nil
	}

	// the offsets of Y0, U, Y1 and V in each group of four bytes
	var y0, u, y1, v int
	switch ov.format {
	case YUY2Overlay:
		y0, u, y1, v = 0, 1, 2, 3
	case UYVYOverlay:
		u, y0, v, y1 = 0, 1, 2, 3
	case YVYUOverlay:
		y0, v, y1, u = 0, 1, 2, 3
	}

	img := image.NewYCbCr(image.Rect(0, 0, w, h), image.YCbCrSubsampleRatio422)
	pitch := int(ov.pitches[0])
	for row := 0; row < h; row++ {
		src := ov.planes[0][row*pitch:]
		for g := 0; g < (w+1)/2; g++ {
			p := src[g*4:]
			img.Y[row*img.YStride+g*2] = p[y0]
			if g*2+1 < w {
				img.Y[row*img.YStride+g*2+1] = p[y1]
			}
			img.Cb[row*img.CStride+g] = p[u]
			img.Cr[row*img.CStride+g] = p[v]
		}
	}

	return img, nil
}

func copyPlane(dst []byte, dstStride int, src []byte, srcStride int, w, h int) {
	for y := 0; y < h; y++ {
		copy(dst[y*dstStride:y*dstStride+w], src[y*srcStride:])
	}
}

// Display converts the overlay to RGB and draws it on the screen, scaled to
// fill the rectangle.
func (ov *Overlay) Display(dst Rect) error {
	if ov.display == nil || !ov.display.Initialised() {
		return sdlerr.Logicf(NoScreen, "Overlay.Display")
	}
	if dst.Empty() {
		return nil
	}

	src, err := ov.Image()
	if err != nil {
		return err
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, int(dst.W), int(dst.H)))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	surf, err := FromImage(scaled)
	if err != nil {
		return err
	}
	defer surf.Free()

	return ov.display.Blit(surf, nil, &dst)
}
