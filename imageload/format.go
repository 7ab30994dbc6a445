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
	"strings"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Format is an image format supported by SDL_image. The value of each format
// is the type string used by LoadTypedRW().
type Format string

// List of valid Format values.
const (
	BMP  Format = "BMP"
	PNM  Format = "PNM"
	XPM  Format = "XPM"
	XCF  Format = "XCF"
	PCX  Format = "PCX"
	GIF  Format = "GIF"
	JPG  Format = "JPG"
	TIF  Format = "TIF"
	PNG  Format = "PNG"
	TGA  Format = "TGA"
	LBM  Format = "LBM"
	WEBP Format = "WEBP"
)

// Formats lists every Format in the order they are tested by Detect().
var Formats = []Format{BMP, PNM, XPM, XCF, PCX, GIF, JPG, TIF, PNG, LBM, WEBP, TGA}

// ParseFormat returns the Format named by the string, ignoring case. Common
// file extensions are also accepted.
func ParseFormat(s string) (Format, error) {
	s = strings.ToUpper(strings.TrimPrefix(s, "."))
	switch s {
	case "JPEG":
		return JPG, nil
	case "TIFF":
		return TIF, nil
	case "PBM", "PGM", "PPM":
		return PNM, nil
	case "ILBM":
		return LBM, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", sdlerr.Errorf(UnknownFormat, s)
}

// the functions that load and test each format
type formatFuncs struct {
	load func(*sdl.RWops) (*sdl.Surface, error)
	is   func(*sdl.RWops) bool
}

// TGA data can not be recognised so it has no test function
var funcs = map[Format]formatFuncs{
	BMP:  {load: img.LoadBMPRW, is: img.IsBMP},
	PNM:  {load: img.LoadPNMRW, is: img.IsPNM},
	XPM:  {load: img.LoadXPMRW, is: img.IsXPM},
	XCF:  {load: img.LoadXCFRW, is: img.IsXCF},
	PCX:  {load: img.LoadPCXRW, is: img.IsPCX},
	GIF:  {load: img.LoadGIFRW, is: img.IsGIF},
	JPG:  {load: img.LoadJPGRW, is: img.IsJPG},
	TIF:  {load: img.LoadTIFRW, is: img.IsTIF},
	PNG:  {load: img.LoadPNGRW, is: img.IsPNG},
	TGA:  {load: img.LoadTGARW},
	LBM:  {load: img.LoadLBMRW, is: img.IsLBM},
	WEBP: {load: img.LoadWEBPRW, is: img.IsWEBP},
}
