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


package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/sdl4go/digest"
	"github.com/jetsetilly/sdl4go/event"
	"github.com/jetsetilly/sdl4go/font"
	"github.com/jetsetilly/sdl4go/imageload"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/mouse"
	"github.com/jetsetilly/sdl4go/paths"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/jetsetilly/sdl4go/wm"
	"github.com/veandco/go-sdl2/sdl"
)

var crosshair = []string{
	"16 16 3 1",
	"X c #000000",
	". c #ffffff",
	"  c None",
	"       X        ",
	"       X        ",
	"       X        ",
	"       X        ",
	"       X        ",
	"       .        ",
	"                ",
	"XXXXX.   .XXXXX ",
	"                ",
	"       .        ",
	"       X        ",
	"       X        ",
	"       X        ",
	"       X        ",
	"       X        ",
	"                ",
	"7,7",
}

type videoScene struct {
	width, height int32
	bpp           int32
	flags         uint32

	scr *video.Screen

	// optional layers drawn over the background
	picture *video.Surface
	text    *video.Surface
}

func videoMode(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	width := md.AddInt("width", 640, "width of window")
	height := md.AddInt("height", 480, "height of window")
	bpp := md.AddInt("bpp", 0, "bits per pixel (0 is the desktop depth)")
	fullscreen := md.AddBool("fullscreen", false, "open a fullscreen screen")
	resizable := md.AddBool("resizable", true, "allow the window to be resized")
	picture := md.AddString("image", "", "image file to show")
	fontFile := md.AddString("font", "", "TrueType font file for the text")
	fontSize := md.AddInt("size", 24, "point size of the font")
	text := md.AddString("text", "sdl4go", "text to render with the font")
	gamma := md.AddFloat64("gamma", 1.0, "display gamma")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noMoreArgs(md); err != nil {
		return err
	}

	q := event.NewQueue()
	quit, err := start(cfg, system.Video, q)
	if err != nil {
		return err
	}
	defer quit()

	sc := &videoScene{
		width:  int32(*width),
		height: int32(*height),
		bpp:    int32(*bpp),
		flags:  video.SWSurface,
	}
	if *fullscreen {
		sc.flags |= video.Fullscreen
	}
	if *resizable {
		sc.flags |= video.Resizable
	}

	if err := sc.open(); err != nil {
		return err
	}
	defer video.CloseScreen()

	wm.SetCaption("sdl4go video", "video")

	if *picture != "" {
		sc.picture, err = loadPicture(*picture)
		if err != nil {
			return err
		}
		defer sc.picture.Free()
	}

	if *fontFile != "" {
		sc.text, err = renderText(*fontFile, *fontSize, *text)
		if err != nil {
			return err
		}
		defer sc.text.Free()
	}

	cur, err := mouse.FromImage(crosshair)
	if err != nil {
		return err
	}
	defer cur.Free()
	if err := cur.Set(); err != nil {
		return err
	}

	if *gamma != 1.0 {
		g := float32(*gamma)
		if err := sc.scr.SetGamma(g, g, g); err != nil {
			logger.Log(logger.Allow, "sdl4go", err)
		}
	}

	if err := sc.draw(); err != nil {
		return err
	}

	return run(q, &videoHandler{sc: sc, cursor: true}, 0, nil)
}

func (sc *videoScene) open() error {
	depth, err := video.VideoModeOK(sc.width, sc.height, sc.bpp, sc.flags)
	if err != nil {
		return err
	}
	if depth == 0 {
		logger.Logf(logger.Allow, "sdl4go", "%dx%d not available. trying anyway", sc.width, sc.height)
	}

	sc.scr, err = video.SetVideoMode(sc.width, sc.height, sc.bpp, sc.flags)
	return err
}

// draw the background and the layers and then update the screen
func (sc *videoScene) draw() error {
	w, h := sc.scr.Size()

	// vertical colour bars
	bars := []video.Color{
		{R: 192, G: 192, B: 192}, {R: 192, G: 192}, {G: 192, B: 192}, {G: 192},
		{R: 192, B: 192}, {R: 192}, {B: 192}, {},
	}
	bw := w / int32(len(bars))
	for i, c := range bars {
		r := video.Rect{X: int32(i) * bw, Y: 0, W: bw, H: h}
		if err := sc.scr.FillRect(&r, sc.scr.MapRGB(c.R, c.G, c.B)); err != nil {
			return err
		}
	}

	if sc.picture != nil {
		pw, ph := sc.picture.Size()
		dst := video.Rect{X: (w - pw) / 2, Y: (h - ph) / 2}
		if err := sc.scr.Blit(sc.picture, nil, &dst); err != nil {
			return err
		}
	}

	if sc.text != nil {
		tw, th := sc.text.Size()
		dst := video.Rect{X: (w - tw) / 2, Y: h - th - 8}
		if err := sc.scr.Blit(sc.text, nil, &dst); err != nil {
			return err
		}
	}

	return sc.scr.Flip()
}

// loadPicture tries SDL_image first and then the Go decoders
func loadPicture(filename string) (*video.Surface, error) {
	if err := imageload.Init(imageload.InitPNG | imageload.InitJPG); err != nil {
		logger.Log(logger.Allow, "sdl4go", err)
	} else {
		defer imageload.Quit()
	}

	s, err := imageload.Load(filename)
	if err == nil {
		return s, nil
	}
	logger.Log(logger.Allow, "sdl4go", err)

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, format, err := imageload.DecodeSurface(f)
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "sdl4go", "decoded %s as %s", filename, format)

	return s, nil
}

func renderText(filename string, size int, text string) (*video.Surface, error) {
	if err := font.Init(); err != nil {
		return nil, err
	}
	defer font.Quit()

	f, err := font.Open(filename, size)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Render(text, font.Blended, video.Color{R: 255, G: 255, B: 255, A: 255}, video.Color{})
}

type videoHandler struct {
	quitter
	sc *videoScene

	cursor bool
}

func (h *videoHandler) KeyPressed(key event.Keysym) bool {
	if h.quitter.KeyPressed(key) {
		return true
	}

	switch key.Sym {
	case sdl.K_f:
		if err := video.ToggleFullScreen(); err != nil {
			logger.Log(logger.Allow, "sdl4go", err)
		}
	case sdl.K_c:
		h.cursor = !h.cursor
		toggle := 0
		if h.cursor {
			toggle = 1
		}
		if _, err := mouse.ShowCursor(toggle); err != nil {
			logger.Log(logger.Allow, "sdl4go", err)
		}
	case sdl.K_d:
		dig := digest.NewVideo()
		if err := dig.Frame(&h.sc.scr.Surface); err != nil {
			logger.Log(logger.Allow, "sdl4go", err)
		} else {
			fmt.Printf("digest: %s\n", dig.Hash())
		}
	case sdl.K_s:
		fn := paths.UniqueFilename("screenshot", "", "bmp")
		if err := h.sc.scr.SaveBMP(fn); err != nil {
			logger.Log(logger.Allow, "sdl4go", err)
		} else {
			logger.Logf(logger.Allow, "sdl4go", "saved %s", fn)
		}
	default:
		return false
	}

	return true
}

func (h *videoHandler) MouseButtonPressed(button uint8, x, y int32) bool {
	scr := h.sc.scr
	r := video.Rect{X: x - 2, Y: y - 2, W: 5, H: 5}
	if err := scr.FillRect(&r, scr.MapRGB(255, 255, 255)); err != nil {
		logger.Log(logger.Allow, "sdl4go", err)
		return true
	}
	if err := scr.UpdateRect(r.X, r.Y, r.W, r.H); err != nil {
		logger.Log(logger.Allow, "sdl4go", err)
	}
	return true
}

func (h *videoHandler) VideoResize(w, ht int32) bool {
	h.sc.width = w
	h.sc.height = ht
	if err := h.sc.open(); err != nil {
		logger.Log(logger.Allow, "sdl4go", err)
		return true
	}
	if err := h.sc.draw(); err != nil {
		logger.Log(logger.Allow, "sdl4go", err)
	}
	return true
}

func (h *videoHandler) VideoExpose() bool {
	if err := h.sc.scr.Flip(); err != nil {
		logger.Log(logger.Allow, "sdl4go", err)
	}
	return true
}
