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

package imageload

import (
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/rwops"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Error patterns.
const (
	InitError     = "imageload: init: %v"
	LoadError     = "imageload: load: %v"
	UnknownFormat = "imageload: unknown format (%s)"
	NoSource      = "imageload: %s: source is not opened"
)

// InitFlags select the image formats that need a dynamically loaded library.
type InitFlags int

// List of valid InitFlags values.
const (
	InitJPG  = InitFlags(img.INIT_JPG)
	InitPNG  = InitFlags(img.INIT_PNG)
	InitTIF  = InitFlags(img.INIT_TIF)
	InitWEBP = InitFlags(img.INIT_WEBP)
)

// Init loads the libraries for the formats. Formats that do not need a
// library are always available.
func Init(flags InitFlags) error {
	if err := img.Init(int(flags)); err != nil {
		return sdlerr.Errorf(InitError, err)
	}
	logger.Logf(logger.Allow, "imageload", "initialised (%#x)", int(flags))
	return nil
}

// Quit unloads the libraries loaded by Init().
func Quit() {
	img.Quit()
	logger.Log(logger.Allow, "imageload", "quit")
}

var invertAlpha bool

// InvertAlpha sets whether the alpha channel of loaded images is inverted.
// The previous setting is returned.
func InvertAlpha(on bool) bool {
	prev := invertAlpha
	invertAlpha = on
	return prev
}

// surface wraps the surface created by SDL_image
func surface(surf *sdl.Surface, err error) (*video.Surface, error) {
	if err != nil {
		return nil, sdlerr.Errorf(LoadError, err)
	}
	if surf == nil {
		return nil, sdlerr.Errorf(LoadError, sdl.GetError())
	}

	s, err := video.Wrap(surf)
	if err != nil {
		return nil, err
	}

	if invertAlpha {
		if err := invert(s); err != nil {
			s.Free()
			return nil, err
		}
	}

	return s, nil
}

func invert(s *video.Surface) error {
	f := s.Format()
	if f.Amask == 0 {
		return nil
	}

	w, h := s.Size()
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			p, err := s.Pixel(x, y)
			if err != nil {
				return err
			}
			r, g, b, a := video.GetRGBA(p, f)
			if err := s.SetPixel(x, y, video.MapRGBA(f, r, g, b, 255-a)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Load an image from a file. The format is detected from the file.
func Load(filename string) (*video.Surface, error) {
	s, err := surface(img.Load(filename))
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "imageload", "loaded %s", filename)
	return s, nil
}

// LoadRW loads an image from the RWops. The format is detected from the
// data. The RWops is not closed.
func LoadRW(src *rwops.RWops) (*video.Surface, error) {
	if !src.Opened() {
		return nil, sdlerr.Logicf(NoSource, "LoadRW")
	}
	return surface(img.LoadRW(src.SDL(), false))
}

// LoadTypedRW loads an image from the RWops. The type is a hint for formats
// that can not be detected, such as TGA. The RWops is not closed.
func LoadTypedRW(src *rwops.RWops, typ string) (*video.Surface, error) {
	if !src.Opened() {
		return nil, sdlerr.Logicf(NoSource, "LoadTypedRW")
	}
	return surface(img.LoadTypedRW(src.SDL(), false, typ))
}

// LoadFormatRW loads an image in the given format from the RWops.
func LoadFormatRW(src *rwops.RWops, format Format) (*video.Surface, error) {
	if !src.Opened() {
		return nil, sdlerr.Logicf(NoSource, "LoadFormatRW")
	}
	f, ok := funcs[format]
	if !ok {
		return nil, sdlerr.Errorf(UnknownFormat, format)
	}
	return surface(f.load(src.SDL()))
}

// Is returns true if the data in the RWops is in the format. The position of
// the RWops is not changed.
func Is(src *rwops.RWops, format Format) bool {
	if !src.Opened() {
		return false
	}
	f, ok := funcs[format]
	if !ok || f.is == nil {
		return false
	}
	return f.is(src.SDL())
}

// Detect returns the format of the data in the RWops.
func Detect(src *rwops.RWops) (Format, error) {
	for _, f := range Formats {
		if Is(src, f) {
			return f, nil
		}
	}
	return "", sdlerr.Errorf(UnknownFormat, "not detected")
}

// ReadXPMFromArray creates a surface from an XPM image held in memory.
func ReadXPMFromArray(xpm string) (*video.Surface, error) {
	return surface(img.ReadXPMFromArray(xpm))
}
