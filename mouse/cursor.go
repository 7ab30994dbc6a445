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

package mouse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	NotCreated  = "mouse: %s: cursor has not been created"
	CreateError = "mouse: create: %v"
	ParseError  = "mouse: parse: %v"
)

// Values for ShowCursor().
const (
	Query   = sdl.QUERY
	Disable = sdl.DISABLE
	Enable  = sdl.ENABLE
)

// WarpMouse moves the mouse pointer to the position in the window. Does
// nothing if there is no window.
func WarpMouse(x, y int32) {
	if w := video.CurrentWindow(); w != nil {
		w.WarpMouseInWindow(x, y)
	}
}

// ShowCursor shows or hides the cursor. Returns the state of the cursor
// before the call, or the current state if the toggle is Query.
func ShowCursor(toggle int) (int, error) {
	v, err := sdl.ShowCursor(toggle)
	if err != nil {
		return 0, sdlerr.Errorf(CreateError, err)
	}
	return v, nil
}

// Cursor is a mouse cursor. The zero value has no cursor.
type Cursor struct {
	cur *sdl.Cursor

	// cursors returned by GetCursor() belong to SDL
	owned bool

	// the values used to create the cursor are kept so that the cursor can
	// be copied
	data, mask []byte
	w, h       int32
	hotX, hotY int32
	surface    *video.Surface
}

// NewCursor creates a monochrome cursor. See Cursor.Create().
func NewCursor(data, mask []byte, w, h, hotX, hotY int32) (*Cursor, error) {
	c := &Cursor{}
	if err := c.Create(data, mask, w, h, hotX, hotY); err != nil {
		return nil, err
	}
	return c, nil
}

// FromImage creates a cursor from a text image. See the package
// documentation for the format.
func FromImage(image []string) (*Cursor, error) {
	c := &Cursor{}
	if err := c.SetImage(image); err != nil {
		return nil, err
	}
	return c, nil
}

// FromSurface creates a color cursor from a surface.
func FromSurface(s *video.Surface, hotX, hotY int32) (*Cursor, error) {
	if !s.Initialised() {
		return nil, sdlerr.Logicf(video.NotInitialised, "FromSurface")
	}

	cp, err := s.Copy()
	if err != nil {
		return nil, err
	}

	cur := sdl.CreateColorCursor(cp.SDL(), hotX, hotY)
	if cur == nil {
		cp.Free()
		return nil, sdlerr.Errorf(CreateError, sdl.GetError())
	}

	return &Cursor{
		cur:     cur,
		owned:   true,
		surface: cp,
		hotX:    hotX,
		hotY:    hotY,
	}, nil
}

// Create replaces the cursor with a monochrome cursor. Each bit of the data
// and mask is one pixel, most significant bit first. The width must be a
// multiple of eight.
//
//	data  mask  pixel
//	 0     1    white
//	 1     1    black
//	 0     0    transparent
//	 1     0    inverted if possible, black if not
func (c *Cursor) Create(data, mask []byte, w, h, hotX, hotY int32) error {
	if w <= 0 || h <= 0 || w%8 != 0 {
		return sdlerr.Errorf(CreateError, fmt.Sprintf("invalid size %dx%d", w, h))
	}
	n := int(w / 8 * h)
	if len(data) < n || len(mask) < n {
		return sdlerr.Errorf(CreateError, "not enough data for cursor size")
	}

	d := append([]byte(nil), data[:n]...)
	m := append([]byte(nil), mask[:n]...)

	cur := sdl.CreateCursor(&d[0], &m[0], w, h, hotX, hotY)
	if cur == nil {
		return sdlerr.Errorf(CreateError, sdl.GetError())
	}

	c.Free()
	c.cur = cur
	c.owned = true
	c.data = d
	c.mask = m
	c.w = w
	c.h = h
	c.hotX = hotX
	c.hotY = hotY

	return nil
}

// SetImage replaces the cursor with one created from a text image and makes
// it the active cursor.
func (c *Cursor) SetImage(image []string) error {
	data, mask, w, h, hotX, hotY, err := ParseCursor(image)
	if err != nil {
		return err
	}
	if err := c.Create(data, mask, w, h, hotX, hotY); err != nil {
		return err
	}
	return c.Set()
}

// Set makes the cursor the active cursor.
func (c *Cursor) Set() error {
	if c.cur == nil {
		return sdlerr.Logicf(NotCreated, "Set")
	}
	sdl.SetCursor(c.cur)
	return nil
}

// Copy returns a new cursor created from the same data.
func (c *Cursor) Copy() (*Cursor, error) {
	if c.cur == nil {
		return nil, sdlerr.Logicf(NotCreated, "Copy")
	}
	if c.surface != nil {
		return FromSurface(c.surface, c.hotX, c.hotY)
	}
	if c.data == nil {
		return nil, sdlerr.Errorf(CreateError, "cursor data is not available")
	}
	return NewCursor(c.data, c.mask, c.w, c.h, c.hotX, c.hotY)
}

// Created returns true if the cursor has been created.
func (c *Cursor) Created() bool {
	return c.cur != nil
}

// HotSpot returns the position of the hot spot.
func (c *Cursor) HotSpot() (int32, int32) {
	return c.hotX, c.hotY
}

// Free the cursor. Cursors returned by GetCursor() are only detached.
func (c *Cursor) Free() {
	if c.cur != nil && c.owned {
		sdl.FreeCursor(c.cur)
	}
	if c.surface != nil {
		c.surface.Free()
		c.surface = nil
	}
	c.cur = nil
	c.owned = false
	c.data = nil
	c.mask = nil
}

// SetCursor makes the cursor the active cursor.
func SetCursor(c *Cursor) error {
	return c.Set()
}

// GetCursor returns the active cursor. The returned cursor belongs to SDL and
// cannot be copied.
func GetCursor() *Cursor {
	return &Cursor{cur: sdl.GetCursor()}
}

// ParseCursor converts a text image into cursor data and mask. See the
// package documentation for the format of the image.
func ParseCursor(image []string) (data, mask []byte, w, h, hotX, hotY int32, err error) {
	if len(image) == 0 {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, "empty image")
	}

	var ncolors, cpp int
	_, err = fmt.Sscanf(image[0], "%d %d %d %d", &w, &h, &ncolors, &cpp)
	if err != nil {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, err)
	}
	if w <= 0 || h <= 0 || w%8 != 0 {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, fmt.Sprintf("invalid size %dx%d", w, h))
	}
	if ncolors < 0 {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, fmt.Sprintf("invalid number of colours %d", ncolors))
	}
	if cpp != 1 {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, "only one character per pixel is supported")
	}

	first := 1 + ncolors
	if len(image) < first+int(h)+1 {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, "image is too short")
	}

	data = make([]byte, w/8*h)
	mask = make([]byte, w/8*h)

	for row := 0; row < int(h); row++ {
		line := image[first+row]
		for col := 0; col < int(w); col++ {
			i := row*int(w/8) + col/8
			bit := byte(0x80 >> (col % 8))

			var ch byte = ' '
			if col < len(line) {
				ch = line[col]
			}

			switch ch {
			case 'X':
				data[i] |= bit
				mask[i] |= bit
			case '.':
				mask[i] |= bit
			}
		}
	}

	hot := strings.SplitN(image[first+int(h)], ",", 2)
	if len(hot) != 2 {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, "missing hot spot")
	}
	x, err := strconv.Atoi(strings.TrimSpace(hot[0]))
	if err != nil {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(hot[1]))
	if err != nil {
		return nil, nil, 0, 0, 0, 0, sdlerr.Errorf(ParseError, err)
	}

	return data, mask, w, h, int32(x), int32(y), nil
}
