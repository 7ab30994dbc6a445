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
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// Screen is the display surface created by SetVideoMode(). There is only ever
// one screen. Drawing to the screen is done through the embedded Surface,
// which is not owned by the Screen and so is never freed by Surface.Free().
//
// The screen must only be used from the goroutine that called
// SetVideoMode(), which should have called runtime.LockOSThread().
type Screen struct {
	Surface

	window *sdl.Window
	glctx  sdl.GLContext

	// the shadow surface is used when the requested depth differs from the
	// depth of the window, and for OpenGL screens which have no window surface
	shadow *Surface

	// the flags and depth requested in SetVideoMode()
	flags uint32
	bpp   int32
}

// the screen created by the most recent call to SetVideoMode()
var current *Screen

// icon set with SetIcon() before the screen exists
var pendingIcon *sdl.Surface

var windowHooks []func(*sdl.Window)

// OnWindowCreated adds a function to be called whenever SetVideoMode()
// creates a new window.
func OnWindowCreated(f func(*sdl.Window)) {
	windowHooks = append(windowHooks, f)
}

// CurrentWindow returns the window of the current screen. Returns nil if
// there is no screen.
func CurrentWindow() *sdl.Window {
	if current == nil {
		return nil
	}
	return current.window
}

// GetVideoSurface returns the current screen. Returns nil if SetVideoMode()
// has not been called.
func GetVideoSurface() *Screen {
	return current
}

// translate SDL 1.2 video flags to SDL2 window flags
func windowFlags(flags uint32) uint32 {
	wf := uint32(sdl.WINDOW_SHOWN)
	if flags&Fullscreen == Fullscreen {
		wf |= sdl.WINDOW_FULLSCREEN
	}
	if flags&OpenGL == OpenGL {
		wf |= sdl.WINDOW_OPENGL
	}
	if flags&Resizable == Resizable {
		wf |= sdl.WINDOW_RESIZABLE
	}
	if flags&NoFrame == NoFrame {
		wf |= sdl.WINDOW_BORDERLESS
	}
	return wf
}

// desktopDepth returns the bits per pixel of the desktop. defaults to 32 if
// the desktop mode cannot be found
func desktopDepth() int32 {
	mode, err := sdl.GetDesktopDisplayMode(0)
	if err != nil {
		return 32
	}
	if bpp := bitsPerPixel(mode.Format); bpp > 0 {
		return bpp
	}
	return 32
}

// SetVideoMode sets up the screen with the given size, depth and flags. A
// depth of zero means the depth of the desktop. The window of an existing
// screen is reused if possible, otherwise it is replaced.
func SetVideoMode(w, h, bpp int32, flags uint32) (*Screen, error) {
	if bpp == 0 {
		bpp = desktopDepth()
	}

	scr := current
	if scr != nil && (scr.flags&OpenGL) != (flags&OpenGL) {
		scr.Close()
		scr = nil
	}

	if scr == nil {
		window, err := sdl.CreateWindow("", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, windowFlags(flags))
		if err != nil {
			return nil, sdlerr.Errorf(SDLError, "SetVideoMode", err)
		}
		scr = &Screen{
			window: window,
		}

		if pendingIcon != nil {
			window.SetIcon(pendingIcon)
			pendingIcon.Free()
			pendingIcon = nil
		}

		for _, f := range windowHooks {
			f(window)
		}

		logger.Logf(logger.Allow, "video", "created window (%dx%d)", w, h)
	} else {
		scr.window.SetSize(w, h)
		fs := uint32(0)
		if flags&Fullscreen == Fullscreen {
			fs = sdl.WINDOW_FULLSCREEN
		}
		if err := scr.window.SetFullscreen(fs); err != nil {
			return nil, sdlerr.Errorf(SDLError, "SetVideoMode", err)
		}
		scr.window.SetResizable(flags&Resizable == Resizable)
		scr.window.SetBordered(flags&NoFrame != NoFrame)
	}

	scr.flags = flags
	current = scr

	if err := scr.attach(w, h, bpp); err != nil {
		scr.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "video", "video mode %dx%dx%d (flags %#08x)", w, h, bpp, flags)

	return scr, nil
}

// attach the embedded surface to the window surface or to a shadow surface
func (scr *Screen) attach(w, h, bpp int32) error {
	scr.bpp = bpp

	if scr.shadow != nil {
		scr.shadow.Free()
		scr.shadow = nil
	}

	if scr.flags&OpenGL == OpenGL {
		if scr.glctx == nil {
			ctx, err := scr.window.GLCreateContext()
			if err != nil {
				return sdlerr.Errorf(SDLError, "SetVideoMode", err)
			}
			scr.glctx = ctx

			if err := gl.Init(); err != nil {
				return sdlerr.Errorf(SDLError, "SetVideoMode", err)
			}
			logger.Logf(logger.Allow, "video", "OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
		}

		// there is no window surface for an OpenGL window. the embedded surface
		// is still usable but nothing drawn to it will be shown
		shadow, err := NewSurface(w, h, bpp, SWSurface)
		if err != nil {
			return err
		}
		scr.shadow = shadow
		scr.Surface = *borrow(shadow.surf)
		scr.Surface.flags = scr.flags
		return nil
	}

	ws, err := scr.window.GetSurface()
	if err != nil {
		return sdlerr.Errorf(SDLError, "SetVideoMode", err)
	}

	if int32(ws.Format.BitsPerPixel) != bpp && scr.flags&AnyFormat != AnyFormat {
		shadow, err := NewSurface(ws.W, ws.H, bpp, SWSurface)
		if err != nil {
			return err
		}
		scr.shadow = shadow
		scr.Surface = *borrow(shadow.surf)
		logger.Logf(logger.Allow, "video", "using %dbit shadow surface for %dbit window", bpp, ws.Format.BitsPerPixel)
	} else {
		scr.Surface = *borrow(ws)
	}
	scr.Surface.flags = scr.flags

	return nil
}

// Window returns the SDL window of the screen.
func (scr *Screen) Window() *sdl.Window {
	return scr.window
}

// Flags returns the flags used to create the screen.
func (scr *Screen) Flags() uint32 {
	return scr.flags
}

// copy the shadow surface to the window surface. does nothing if there is no
// shadow surface
func (scr *Screen) copyShadow(rects []Rect) error {
	if scr.shadow == nil || scr.flags&OpenGL == OpenGL {
		return nil
	}

	ws, err := scr.window.GetSurface()
	if err != nil {
		return sdlerr.Errorf(SDLError, "Flip", err)
	}

	if rects == nil {
		if err := scr.shadow.surf.Blit(nil, ws, nil); err != nil {
			return sdlerr.Errorf(SDLError, "Flip", err)
		}
		return nil
	}

	for _, r := range rects {
		sr := r.SDL()
		dr := r.SDL()
		if err := scr.shadow.surf.Blit(&sr, ws, &dr); err != nil {
			return sdlerr.Errorf(SDLError, "UpdateRects", err)
		}
	}

	return nil
}

// Flip shows the contents of the screen surface. For OpenGL screens this
// swaps the GL buffers.
func (scr *Screen) Flip() error {
	if scr.window == nil {
		return sdlerr.Logicf(NoScreen, "Flip")
	}

	if scr.flags&OpenGL == OpenGL {
		scr.window.GLSwap()
		return nil
	}

	if err := scr.copyShadow(nil); err != nil {
		return err
	}

	if err := scr.window.UpdateSurface(); err != nil {
		return sdlerr.Errorf(SDLError, "Flip", err)
	}
	return nil
}

// UpdateRect makes sure the area of the screen is shown. If all values are
// zero the entire screen is updated.
func (scr *Screen) UpdateRect(x, y, w, h int32) error {
	if x == 0 && y == 0 && w == 0 && h == 0 {
		return scr.Flip()
	}
	return scr.UpdateRects([]Rect{{X: x, Y: y, W: w, H: h}})
}

// UpdateRects makes sure the list of areas is shown.
func (scr *Screen) UpdateRects(rects []Rect) error {
	if scr.window == nil {
		return sdlerr.Logicf(NoScreen, "UpdateRects")
	}
	if len(rects) == 0 {
		return nil
	}

	if err := scr.copyShadow(rects); err != nil {
		return err
	}

	sr := make([]sdl.Rect, 0, len(rects))
	for _, r := range rects {
		sr = append(sr, r.SDL())
	}

	if err := scr.window.UpdateSurfaceRects(sr); err != nil {
		return sdlerr.Errorf(SDLError, "UpdateRects", err)
	}
	return nil
}

// ToggleFullScreen switches the current screen between windowed and
// fullscreen modes.
func ToggleFullScreen() error {
	scr := current
	if scr == nil || scr.window == nil {
		return sdlerr.Logicf(NoScreen, "ToggleFullScreen")
	}

	fs := uint32(0)
	if scr.window.GetFlags()&sdl.WINDOW_FULLSCREEN == 0 {
		fs = sdl.WINDOW_FULLSCREEN
	}

	if err := scr.window.SetFullscreen(fs); err != nil {
		return sdlerr.Errorf(SDLError, "ToggleFullScreen", err)
	}
	scr.flags ^= Fullscreen

	w, h := scr.window.GetSize()
	return scr.attach(w, h, scr.bpp)
}

// Close destroys the screen and its window. It is safe to call Close() more
// than once.
func (scr *Screen) Close() {
	if scr.shadow != nil {
		scr.shadow.Free()
		scr.shadow = nil
	}

	// the embedded surface is borrowed so this only detaches it
	scr.Surface.Free()

	if scr.glctx != nil {
		sdl.GLDeleteContext(scr.glctx)
		scr.glctx = nil
	}

	if scr.window != nil {
		scr.window.Destroy()
		scr.window = nil
		logger.Log(logger.Allow, "video", "window destroyed")
	}

	if current == scr {
		current = nil
	}
}

// CloseScreen closes the current screen if there is one.
func CloseScreen() {
	if current != nil {
		current.Close()
	}
}
