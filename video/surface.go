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

// Surface wraps an SDL surface. The zero value is an uninitialised surface
// that owns whatever handle is later given to it.
type Surface struct {
	surf *sdl.Surface

	// borrowed surfaces belong to someone else (usually the window) and are
	// never freed by Free()
	borrowed bool

	// SDL 1.2 flags. see flags.go
	flags uint32
}

// NewSurface creates a new surface of the given size and depth. The pixel
// masks are chosen with the Masks() function.
func NewSurface(w, h, depth int32, flags uint32) (*Surface, error) {
	s := &Surface{}
	r, g, b, a := Masks(depth)
	if err := s.CreateRGB(flags, w, h, depth, r, g, b, a); err != nil {
		return nil, err
	}
	return s, nil
}

// Wrap an existing SDL surface. The Surface takes ownership of the handle.
func Wrap(surf *sdl.Surface) (*Surface, error) {
	if surf == nil {
		return nil, sdlerr.Logicf(NotInitialised, "Wrap")
	}
	return &Surface{surf: surf}, nil
}

// borrow an SDL surface. the returned Surface will never free the handle
func borrow(surf *sdl.Surface) *Surface {
	return &Surface{surf: surf, borrowed: true}
}

// SDL returns the underlying SDL surface. Returns nil if the surface is not
// initialised.
func (s *Surface) SDL() *sdl.Surface {
	if s == nil {
		return nil
	}
	return s.surf
}

// Initialised returns true if the surface has a valid handle.
func (s *Surface) Initialised() bool {
	return s != nil && s.surf != nil
}

// Free the surface. Borrowed surfaces, such as the screen surface, are
// detached but not freed. It is safe to call Free() more than once.
func (s *Surface) Free() {
	if s.surf == nil {
		return
	}
	if !s.borrowed {
		s.surf.Free()
	}
	s.surf = nil
	s.flags = 0
}

// release the current handle and take ownership of a new one
func (s *Surface) replace(surf *sdl.Surface, flags uint32) {
	s.Free()
	s.surf = surf
	s.borrowed = false
	s.flags = flags
}

// Set replaces the current handle with a new one. The current handle is freed.
// A nil handle is an error, in which case the surface will be left
// uninitialised.
func (s *Surface) Set(surf *sdl.Surface) error {
	s.replace(surf, 0)
	if surf == nil {
		return sdlerr.Errorf(SDLError, "Set", sdl.GetError())
	}
	return nil
}

// Copy returns a deep copy of the surface.
func (s *Surface) Copy() (*Surface, error) {
	if !s.Initialised() {
		return nil, sdlerr.Logicf(NotInitialised, "Copy")
	}

	c := &Surface{}
	if err := c.Convert(s); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign makes the surface a deep copy of src. Assigning a surface to itself
// or assigning an uninitialised surface does nothing.
func (s *Surface) Assign(src *Surface) error {
	if s == src || !src.Initialised() {
		return nil
	}
	return s.Convert(src)
}

// Convert replaces the surface with a copy of src, using the pixel format of
// src. SDL performs the conversion with a blit.
func (s *Surface) Convert(src *Surface) error {
	if !src.Initialised() {
		return sdlerr.Logicf(NotInitialised, "Convert")
	}

	surf, err := src.surf.Convert(src.surf.Format, 0)
	if err != nil {
		return sdlerr.Errorf(SDLError, "Convert", err)
	}

	s.replace(surf, src.flags&^PreAlloc)
	return nil
}

// CreateRGB replaces the surface with a new one of the given size, depth and
// pixel masks.
func (s *Surface) CreateRGB(flags uint32, w, h, depth int32, rmask, gmask, bmask, amask uint32) error {
	surf, err := sdl.CreateRGBSurface(0, w, h, depth, rmask, gmask, bmask, amask)
	if err != nil {
		s.Free()
		return sdlerr.Errorf(SDLError, "CreateRGB", err)
	}
	s.replace(surf, flags&^blitFlags)
	return nil
}

// CreateRGBFrom replaces the surface with a new one and copies the pixel data
// into it. Each row of the source data is pitch bytes long.
func (s *Surface) CreateRGBFrom(pixels []byte, w, h, depth, pitch int32, rmask, gmask, bmask, amask uint32) error {
	rowLen := rowBytes(int(w), int(depth))
	if pitch < int32(rowLen) || len(pixels) < int(pitch)*int(h-1)+rowLen {
		return sdlerr.Errorf(SDLError, "CreateRGBFrom", "pixel data is too short")
	}

	if err := s.CreateRGB(SWSurface, w, h, depth, rmask, gmask, bmask, amask); err != nil {
		return err
	}

	if err := s.Lock(); err != nil {
		return err
	}
	defer s.Unlock()

	dst := s.surf.Pixels()
	dstPitch := int(s.surf.Pitch)
	for y := 0; y < int(h); y++ {
		copy(dst[y*dstPitch:y*dstPitch+rowLen], pixels[y*int(pitch):])
	}

	s.flags |= PreAlloc
	return nil
}

// LoadBMP replaces the surface with the contents of the BMP file.
func (s *Surface) LoadBMP(file string) error {
	surf, err := sdl.LoadBMP(file)
	if err != nil {
		s.Free()
		return sdlerr.Errorf(SDLError, "LoadBMP", err)
	}
	s.replace(surf, 0)
	return nil
}

// SaveBMP saves the surface to a BMP file.
func (s *Surface) SaveBMP(file string) error {
	if !s.Initialised() {
		return sdlerr.Logicf(NotInitialised, "SaveBMP")
	}
	if err := s.surf.SaveBMP(file); err != nil {
		return sdlerr.Errorf(SDLError, "SaveBMP", err)
	}
	return nil
}

// Lock the surface for direct access to the pixels. Surfaces that don't need
// locking are not locked.
func (s *Surface) Lock() error {
	if !s.Initialised() {
		return sdlerr.Logicf(NotInitialised, "Lock")
	}
	if s.surf.MustLock() {
		if err := s.surf.Lock(); err != nil {
			return sdlerr.Errorf(SDLError, "Lock", err)
		}
	}
	return nil
}

// Unlock a surface previously locked with Lock().
func (s *Surface) Unlock() {
	if s.Initialised() && s.surf.MustLock() {
		s.surf.Unlock()
	}
}

// Pixels returns the raw pixel data. The surface should be locked.
func (s *Surface) Pixels() []byte {
	if !s.Initialised() {
		return nil
	}
	return s.surf.Pixels()
}

// Pixel returns the pixel value at (x, y).
func (s *Surface) Pixel(x, y int32) (uint32, error) {
	if !s.Initialised() {
		return 0, sdlerr.Logicf(NotInitialised, "Pixel")
	}
	if x < 0 || y < 0 || x >= s.surf.W || y >= s.surf.H {
		return 0, sdlerr.Errorf(OutOfBounds, "Pixel", x, y)
	}
	if err := s.Lock(); err != nil {
		return 0, err
	}
	defer s.Unlock()
	return getPixel(s.surf.Pixels(), int(s.surf.Pitch), int(s.surf.Format.BitsPerPixel), int(x), int(y)), nil
}

// SetPixel sets the pixel value at (x, y). The value should have been created
// with MapRGB() or MapRGBA().
func (s *Surface) SetPixel(x, y int32, v uint32) error {
	if !s.Initialised() {
		return sdlerr.Logicf(NotInitialised, "SetPixel")
	}
	if x < 0 || y < 0 || x >= s.surf.W || y >= s.surf.H {
		return sdlerr.Errorf(OutOfBounds, "SetPixel", x, y)
	}
	if err := s.Lock(); err != nil {
		return err
	}
	defer s.Unlock()
	setPixel(s.surf.Pixels(), int(s.surf.Pitch), int(s.surf.Format.BitsPerPixel), int(x), int(y), v)
	return nil
}

// Equals compares two surfaces. Two uninitialised surfaces are equal. Otherwise
// the pixel format, size, flags, pitch, clip rectangle and every pixel must be
// the same.
func (s *Surface) Equals(o *Surface) bool {
	if !s.Initialised() || !o.Initialised() {
		return s.Initialised() == o.Initialised()
	}

	if s.surf == o.surf {
		return true
	}

	if s.surf.Format == nil || o.surf.Format == nil {
		return false
	}

	if !s.PixelFormat().Equals(o.PixelFormat()) {
		return false
	}

	if s.surf.W != o.surf.W || s.surf.H != o.surf.H || s.flags != o.flags || s.surf.Pitch != o.surf.Pitch {
		return false
	}

	if !s.ClipRect().Equals(o.ClipRect()) {
		return false
	}

	if s.Lock() != nil {
		return false
	}
	defer s.Unlock()
	if o.Lock() != nil {
		return false
	}
	defer o.Unlock()

	sp := s.surf.Pixels()
	op := o.surf.Pixels()
	pitch := int(s.surf.Pitch)
	bits := int(s.surf.Format.BitsPerPixel)

	for y := 0; y < int(s.surf.H); y++ {
		for x := 0; x < int(s.surf.W); x++ {
			if getPixel(sp, pitch, bits, x, y) != getPixel(op, pitch, bits, x, y) {
				return false
			}
		}
	}

	return true
}

// Blit copies the src surface to this surface. A nil srcRect means the whole
// of the source surface. A nil dstRect places the copy at the top left of this
// surface. After a successful blit, dstRect holds the area that was actually
// drawn to.
func (s *Surface) Blit(src *Surface, srcRect *Rect, dstRect *Rect) error {
	return blit("Blit", src, srcRect, s, dstRect, false)
}

// BlitScaled is like Blit but the source is scaled to fill dstRect.
func (s *Surface) BlitScaled(src *Surface, srcRect *Rect, dstRect *Rect) error {
	return blit("BlitScaled", src, srcRect, s, dstRect, true)
}

// Blit copies from the src surface to the dst surface. See the Surface.Blit()
// function for details.
func Blit(src *Surface, srcRect *Rect, dst *Surface, dstRect *Rect) error {
	return blit("Blit", src, srcRect, dst, dstRect, false)
}

func blit(name string, src *Surface, srcRect *Rect, dst *Surface, dstRect *Rect, scaled bool) error {
	if !dst.Initialised() {
		return sdlerr.Logicf(NotInitialised, name+" (destination)")
	}
	if !src.Initialised() {
		return sdlerr.Logicf(NotInitialised, name+" (source)")
	}

	sr := sdlRect(srcRect)
	dr := sdlRect(dstRect)

	var err error
	if scaled {
		err = src.surf.BlitScaled(sr, dst.surf, dr)
	} else {
		err = src.surf.Blit(sr, dst.surf, dr)
	}
	if err != nil {
		return sdlerr.Errorf(SDLError, name, err)
	}

	// SDL updates the destination rectangle with the final blit area
	if dr != nil {
		*dstRect = FromSDL(*dr)
	}

	return nil
}

// FillRect fills the area with the color. A nil rect fills the entire
// surface, respecting the clip rectangle.
func (s *Surface) FillRect(rect *Rect, color uint32) error {
	if !s.Initialised() {
		return sdlerr.Logicf(NotInitialised, "FillRect")
	}
	if err := s.surf.FillRect(sdlRect(rect), color); err != nil {
		return sdlerr.Errorf(SDLError, "FillRect", err)
	}
	return nil
}

// SetColors sets a range of colors in the palette of an 8bit surface,
// starting at index first. Colors outside the range of the palette are
// ignored.
func (s *Surface) SetColors(colors []Color, first int) error {
	if !s.Initialised() {
		return sdlerr.Logicf(NotInitialised, "SetColors")
	}

	pal := s.surf.Format.Palette
	if pal == nil {
		return sdlerr.Errorf(NoPalette, "SetColors")
	}

	merged := make([]Color, pal.Ncolors)
	copy(merged, paletteColors(pal))
	if first >= 0 && first < len(merged) {
		copy(merged[first:], colors)
	}

	if err := pal.SetColors(merged); err != nil {
		return sdlerr.Errorf(SDLError, "SetColors", err)
	}
	return nil
}

// SetPalette sets the colors of the logical and/or physical palette. The
// logical and physical palettes are the same palette in SDL2 so the flags only
// decide whether anything is done at all.
func (s *Surface) SetPalette(flags int, colors []Color, first int) error {
	if flags&(LogPal|PhysPal) == 0 {
		return nil
	}
	return s.SetColors(colors, first)
}

// SetColorKey sets the transparent pixel value. Color keying is turned on
// with the SrcColorKey flag. The RLEAccel flag requests run-length
// acceleration.
func (s *Surface) SetColorKey(flag uint32, key uint32) error {
	if !s.Initialised() {
		return sdlerr.Logicf(NotInitialised, "SetColorKey")
	}

	on := flag&SrcColorKey == SrcColorKey
	if err := s.surf.SetColorKey(on, key); err != nil {
		return sdlerr.Errorf(SDLError, "SetColorKey", err)
	}

	rle := on && flag&RLEAccel == RLEAccel
	if err := s.surf.SetRLE(rle); err != nil {
		return sdlerr.Errorf(SDLError, "SetColorKey", err)
	}

	s.flags &^= SrcColorKey | RLEAccel
	if on {
		s.flags |= SrcColorKey
	}
	if rle {
		s.flags |= RLEAccel
	}

	return nil
}

// SetAlpha sets the per-surface alpha value. Alpha blending is turned on with
// the SrcAlpha flag.
func (s *Surface) SetAlpha(flag uint32, alpha uint8) error {
	if !s.Initialised() {
		return sdlerr.Logicf(NotInitialised, "SetAlpha")
	}

	if flag&SrcAlpha == SrcAlpha {
		if err := s.surf.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
			return sdlerr.Errorf(SDLError, "SetAlpha", err)
		}
		if err := s.surf.SetAlphaMod(alpha); err != nil {
			return sdlerr.Errorf(SDLError, "SetAlpha", err)
		}
		s.flags |= SrcAlpha
		return nil
	}

	if err := s.surf.SetBlendMode(sdl.BLENDMODE_NONE); err != nil {
		return sdlerr.Errorf(SDLError, "SetAlpha", err)
	}
	if err := s.surf.SetAlphaMod(AlphaOpaque); err != nil {
		return sdlerr.Errorf(SDLError, "SetAlpha", err)
	}
	s.flags &^= SrcAlpha

	return nil
}

// SetClipRect sets the clipping rectangle for blits to the surface. A nil
// rect disables clipping. Returns false if the rectangle does not intersect
// the surface, in which case nothing will be drawn.
func (s *Surface) SetClipRect(rect *Rect) bool {
	if !s.Initialised() {
		return false
	}
	return s.surf.SetClipRect(sdlRect(rect))
}

// ClipRect returns the current clipping rectangle.
func (s *Surface) ClipRect() Rect {
	if !s.Initialised() {
		return Rect{}
	}
	return FromSDL(s.surf.ClipRect)
}

// Flags returns the surface flags.
func (s *Surface) Flags() uint32 {
	return s.flags
}

// Rect returns a rectangle the size of the surface.
func (s *Surface) Rect() Rect {
	if !s.Initialised() {
		return Rect{}
	}
	return Rect{W: s.surf.W, H: s.surf.H}
}

// Size returns the width and height of the surface.
func (s *Surface) Size() (int32, int32) {
	r := s.Rect()
	return r.W, r.H
}

// Pitch returns the length of a row of pixels in bytes.
func (s *Surface) Pitch() int32 {
	if !s.Initialised() {
		return 0
	}
	return s.surf.Pitch
}

// Format returns the SDL pixel format of the surface. Returns nil if the
// surface is not initialised.
func (s *Surface) Format() *sdl.PixelFormat {
	if !s.Initialised() {
		return nil
	}
	return s.surf.Format
}

// PixelFormat returns a snapshot of the surface's pixel format.
func (s *Surface) PixelFormat() PixelFormat {
	if !s.Initialised() {
		return PixelFormat{}
	}

	pf := newPixelFormat(s.surf.Format)
	if s.flags&SrcColorKey == SrcColorKey {
		if key, err := s.surf.GetColorKey(); err == nil {
			pf.ColorKey = key
		}
	}
	if a, err := s.surf.GetAlphaMod(); err == nil {
		pf.Alpha = a
	}

	return pf
}

// MapRGB maps an RGB triple to a pixel value for the surface.
func (s *Surface) MapRGB(r, g, b uint8) uint32 {
	if !s.Initialised() {
		return 0
	}
	return sdl.MapRGB(s.surf.Format, r, g, b)
}

// MapRGBA maps an RGBA quadruple to a pixel value for the surface.
func (s *Surface) MapRGBA(r, g, b, a uint8) uint32 {
	if !s.Initialised() {
		return 0
	}
	return sdl.MapRGBA(s.surf.Format, r, g, b, a)
}
