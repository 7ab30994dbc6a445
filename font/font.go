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

// Package font renders text to surfaces with SDL_ttf.
package font

import (
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/veandco/go-sdl2/ttf"
)

// Error patterns.
const (
	InitError   = "font: init: %v"
	OpenError   = "font: open: %v"
	RenderError = "font: render: %v"
	NotOpened   = "font: %s: font is not opened"
)

// Init initialises the font library.
func Init() error {
	if ttf.WasInit() {
		return nil
	}
	if err := ttf.Init(); err != nil {
		return sdlerr.Errorf(InitError, err)
	}
	logger.Log(logger.Allow, "font", "initialised")
	return nil
}

// Quit the font library. Fonts should be closed first.
func Quit() {
	if ttf.WasInit() {
		ttf.Quit()
		logger.Log(logger.Allow, "font", "quit")
	}
}

// Style of the rendered text. Styles can be combined.
type Style int

// List of valid Style values.
const (
	Normal        = Style(ttf.STYLE_NORMAL)
	Bold          = Style(ttf.STYLE_BOLD)
	Italic        = Style(ttf.STYLE_ITALIC)
	Underline     = Style(ttf.STYLE_UNDERLINE)
	Strikethrough = Style(ttf.STYLE_STRIKETHROUGH)
)

// Mode selects the quality of the rendered text.
type Mode int

// List of valid Mode values.
const (
	// Solid text is drawn quickly onto an 8 bit surface with a transparent
	// background.
	Solid Mode = iota

	// Shaded text is antialiased onto an 8 bit surface with a solid
	// background.
	Shaded

	// Blended text is antialiased onto a 32 bit surface with alpha.
	Blended
)

func (m Mode) String() string {
	switch m {
	case Solid:
		return "solid"
	case Shaded:
		return "shaded"
	case Blended:
		return "blended"
	}
	return "unknown"
}

// Font is an opened TrueType font.
type Font struct {
	font *ttf.Font
	size int
	name string
}

// Open the font file at the point size.
func Open(filename string, size int) (*Font, error) {
	f, err := ttf.OpenFont(filename, size)
	if err != nil {
		return nil, sdlerr.Errorf(OpenError, err)
	}
	logger.Logf(logger.Allow, "font", "opened %s at %dpt", filename, size)
	return &Font{font: f, size: size, name: filename}, nil
}

// Opened returns true if the font has been opened and not closed.
func (f *Font) Opened() bool {
	return f != nil && f.font != nil
}

// Close the font. It is safe to call more than once.
func (f *Font) Close() {
	if f.Opened() {
		f.font.Close()
		f.font = nil
	}
}

// PointSize returns the size the font was opened with.
func (f *Font) PointSize() int {
	return f.size
}

// Height returns the maximum height of the font in pixels.
func (f *Font) Height() (int, error) {
	if !f.Opened() {
		return 0, sdlerr.Logicf(NotOpened, "Height")
	}
	return f.font.Height(), nil
}

// Size returns the width and height of the text when rendered.
func (f *Font) Size(text string) (int, int, error) {
	if !f.Opened() {
		return 0, 0, sdlerr.Logicf(NotOpened, "Size")
	}
	w, h, err := f.font.SizeUTF8(text)
	if err != nil {
		return 0, 0, sdlerr.Errorf(RenderError, err)
	}
	return w, h, nil
}

// SetStyle sets the style of rendered text.
func (f *Font) SetStyle(style Style) error {
	if !f.Opened() {
		return sdlerr.Logicf(NotOpened, "SetStyle")
	}
	f.font.SetStyle(int(style))
	return nil
}

// Style returns the current style.
func (f *Font) Style() (Style, error) {
	if !f.Opened() {
		return Normal, sdlerr.Logicf(NotOpened, "Style")
	}
	return Style(f.font.GetStyle()), nil
}

// Render the text. The background colour is only used by the Shaded mode.
func (f *Font) Render(text string, mode Mode, fg video.Color, bg video.Color) (*video.Surface, error) {
	if !f.Opened() {
		return nil, sdlerr.Logicf(NotOpened, "Render")
	}

	// SDL_ttf will not render an empty string
	if text == "" {
		text = " "
	}

	var s *video.Surface

	switch mode {
	case Solid:
		surf, err := f.font.RenderUTF8Solid(text, fg)
		if err != nil {
			return nil, sdlerr.Errorf(RenderError, err)
		}
		s, err = video.Wrap(surf)
		if err != nil {
			return nil, err
		}
	case Shaded:
		surf, err := f.font.RenderUTF8Shaded(text, fg, bg)
		if err != nil {
			return nil, sdlerr.Errorf(RenderError, err)
		}
		s, err = video.Wrap(surf)
		if err != nil {
			return nil, err
		}
	case Blended:
		surf, err := f.font.RenderUTF8Blended(text, fg)
		if err != nil {
			return nil, sdlerr.Errorf(RenderError, err)
		}
		s, err = video.Wrap(surf)
		if err != nil {
			return nil, err
		}
	default:
		return nil, sdlerr.Errorf(RenderError, mode)
	}

	return s, nil
}
