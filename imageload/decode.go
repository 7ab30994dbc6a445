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
	"bufio"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/video"
)

// Go image package format names and the equivalent Format
var goFormats = map[string]Format{
	"bmp":  BMP,
	"gif":  GIF,
	"jpeg": JPG,
	"png":  PNG,
	"tiff": TIF,
	"webp": WEBP,
}

func formatOf(name string) (Format, error) {
	f, ok := goFormats[name]
	if !ok {
		return "", sdlerr.Errorf(UnknownFormat, name)
	}
	return f, nil
}

// Decode an image without using SDL_image.
func Decode(r io.Reader) (image.Image, Format, error) {
	m, name, err := image.Decode(r)
	if err != nil {
		return nil, "", sdlerr.Errorf(LoadError, err)
	}
	f, err := formatOf(name)
	if err != nil {
		return nil, "", err
	}
	return m, f, nil
}

// DecodeSurface decodes an image without using SDL_image and converts it to
// a 32 bit surface.
func DecodeSurface(r io.Reader) (*video.Surface, Format, error) {
	m, f, err := Decode(r)
	if err != nil {
		return nil, "", err
	}
	s, err := video.FromImage(m)
	if err != nil {
		return nil, "", err
	}
	return s, f, nil
}

// the most data that Sniff() will look at
const sniffSize = 64 * 1024

// Sniff returns the format of the image data and its size without decoding
// the whole image. The reader is wrapped in a bufio.Reader which is returned
// so that the data can still be read in full.
func Sniff(r io.Reader) (Format, image.Point, *bufio.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	// DecodeConfig reads from a peeking reader so that nothing is consumed
	cfg, name, err := image.DecodeConfig(&peeker{br: br})
	if err != nil {
		return "", image.Point{}, br, sdlerr.Errorf(LoadError, err)
	}
	f, err := formatOf(name)
	if err != nil {
		return "", image.Point{}, br, err
	}
	return f, image.Pt(cfg.Width, cfg.Height), br, nil
}

// peeker reads from a bufio.Reader without advancing it
type peeker struct {
	br  *bufio.Reader
	pos int
}

func (p *peeker) Read(b []byte) (int, error) {
	n := p.pos + len(b)
	peek, err := p.br.Peek(n)
	c := copy(b, peek[min(p.pos, len(peek)):])
	p.pos += c
	if c == 0 && err != nil {
		return 0, err
	}
	return c, nil
}
