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

// SetIcon sets the icon of the window. Each bit of the mask is one pixel of
// the icon, most significant bit first, and each row of the mask is padded to
// a whole number of bytes. A clear bit makes the pixel transparent. If the
// mask is nil and the icon has a color key then pixels of the key color are
// transparent.
//
// If there is no screen the icon is kept and used when the window is
// created.
func SetIcon(icon *Surface, mask []byte) error {
	if !icon.Initialised() {
		return sdlerr.Logicf(NotInitialised, "SetIcon")
	}

	w := int(icon.surf.W)
	h := int(icon.surf.H)

	if mask == nil && icon.flags&SrcColorKey == SrcColorKey {
		key, err := icon.surf.GetColorKey()
		if err == nil {
			if err := icon.Lock(); err != nil {
				return err
			}
			mask = colorKeyMask(icon.surf.Pixels(), int(icon.surf.Pitch), int(icon.surf.Format.BitsPerPixel), w, h, key)
			icon.Unlock()
		}
	}

	if mask != nil && len(mask) < maskLen(w, h) {
		return sdlerr.Errorf(SDLError, "SetIcon", "mask is too short")
	}

	surf, err := icon.surf.ConvertFormat(sdl.PIXELFORMAT_ARGB8888, 0)
	if err != nil {
		return sdlerr.Errorf(SDLError, "SetIcon", err)
	}

	if mask != nil {
		if surf.MustLock() {
			surf.Lock()
		}
		applyIconMask(surf.Pixels(), int(surf.Pitch), w, h, surf.Format.Amask, mask)
		if surf.MustLock() {
			surf.Unlock()
		}
	}

	if current != nil {
		current.window.SetIcon(surf)
		surf.Free()
		return nil
	}

	if pendingIcon != nil {
		pendingIcon.Free()
	}
	pendingIcon = surf

	return nil
}

// the number of bytes in a mask for an icon of the given size
func maskLen(w, h int) int {
	return (w + 7) / 8 * h
}

// maskBit returns true if the pixel is set in the mask
func maskBit(mask []byte, w, x, y int) bool {
	return mask[y*((w+7)/8)+x/8]&(0x80>>(x%8)) != 0
}

// applyIconMask clears the alpha bits of every 32bit pixel that is not set
// in the mask
func applyIconMask(pixels []byte, pitch int, w, h int, amask uint32, mask []byte) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !maskBit(mask, w, x, y) {
				p := getPixel(pixels, pitch, 32, x, y)
				setPixel(pixels, pitch, 32, x, y, p&^amask)
			}
		}
	}
}

// colorKeyMask creates a mask with every pixel set except those that match
// the key
func colorKeyMask(pixels []byte, pitch int, bits int, w, h int, key uint32) []byte {
	mask := make([]byte, maskLen(w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if getPixel(pixels, pitch, bits, x, y) != key {
				mask[y*((w+7)/8)+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return mask
}
