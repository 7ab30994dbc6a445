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

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/sdl4go/event"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/modalflag"
	"github.com/jetsetilly/sdl4go/system"
	"github.com/jetsetilly/sdl4go/timer"
	"github.com/jetsetilly/sdl4go/video"
	"github.com/jetsetilly/sdl4go/wm"
)

func glMode(md *modalflag.Modes, cfg *system.Config) error {
	md.NewMode()
	width := md.AddInt("width", 640, "width of window")
	height := md.AddInt("height", 480, "height of window")
	vsync := md.AddBool("vsync", true, "synchronise buffer swaps with the display")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noMoreArgs(md); err != nil {
		return err
	}

	q := event.NewQueue()
	quit, err := start(cfg, system.Video|system.Timer, q)
	if err != nil {
		return err
	}
	defer quit()

	attrs := []struct {
		attr  video.GLAttr
		value int
	}{
		{video.GLRedSize, 5},
		{video.GLGreenSize, 5},
		{video.GLBlueSize, 5},
		{video.GLDepthSize, 16},
		{video.GLDoubleBuffer, 1},
	}
	for _, a := range attrs {
		if err := video.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}

	w := int32(*width)
	h := int32(*height)
	if _, err := video.SetVideoMode(w, h, 0, video.OpenGL|video.Resizable); err != nil {
		return err
	}
	defer video.CloseScreen()
	wm.SetCaption("sdl4go gl", "gl")

	for _, a := range attrs {
		v, err := video.GLGetAttribute(a.attr)
		if err != nil {
			return err
		}
		if v != a.value {
			logger.Logf(logger.Allow, "sdl4go", "GL attribute %d: requested %d, got %d", a.attr, a.value, v)
		}
	}

	if *vsync {
		if err := video.GLSetSwapInterval(1); err != nil {
			logger.Log(logger.Allow, "sdl4go", err)
		}
	}

	fmt.Printf("%s %s\n", gl.GoStr(gl.GetString(gl.VENDOR)), gl.GoStr(gl.GetString(gl.RENDERER)))

	sc := &glScene{start: timer.Ticks()}
	sc.viewport(w, h)

	return run(q, &glHandler{sc: sc}, framePeriod, sc.draw)
}

type glScene struct {
	start  uint32
	frames int
}

func (sc *glScene) viewport(w, h int32) {
	gl.Viewport(0, 0, w, h)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	aspect := float64(w) / float64(h)
	gl.Ortho(-aspect, aspect, -1, 1, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
}

// draw a rotating triangle. the angle is taken from the tick count so the
// speed does not depend on the frame rate
func (sc *glScene) draw() error {
	angle := float32(timer.Ticks()-sc.start) / 10.0

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.LoadIdentity()
	gl.Rotatef(angle, 0, 0, 1)

	gl.Begin(gl.TRIANGLES)
	gl.Color3f(1, 0, 0)
	gl.Vertex2f(0, 0.8)
	gl.Color3f(0, 1, 0)
	gl.Vertex2f(-0.7, -0.4)
	gl.Color3f(0, 0, 1)
	gl.Vertex2f(0.7, -0.4)
	gl.End()

	sc.frames++

	return video.GLSwapBuffers()
}

type glHandler struct {
	quitter
	sc *glScene
}

func (h *glHandler) VideoResize(w, ht int32) bool {
	if _, err := video.SetVideoMode(w, ht, 0, video.OpenGL|video.Resizable); err != nil {
		logger.Log(logger.Allow, "sdl4go", err)
		return true
	}
	h.sc.viewport(w, ht)
	return true
}

func (h *glHandler) Quit() bool {
	secs := float32(timer.Ticks()-h.sc.start) / 1000
	if secs > 0 {
		fmt.Printf("%d frames in %.1f seconds (%.1f fps)\n", h.sc.frames, secs, float32(h.sc.frames)/secs)
	}
	return h.quitter.Quit()
}
