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
	"unsafe"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// GLAttr is an OpenGL context attribute.
type GLAttr = sdl.GLattr

// List of valid GLAttr values.
const (
	GLRedSize            GLAttr = sdl.GL_RED_SIZE
	GLGreenSize          GLAttr = sdl.GL_GREEN_SIZE
	GLBlueSize           GLAttr = sdl.GL_BLUE_SIZE
	GLAlphaSize          GLAttr = sdl.GL_ALPHA_SIZE
	GLBufferSize         GLAttr = sdl.GL_BUFFER_SIZE
	GLDoubleBuffer       GLAttr = sdl.GL_DOUBLEBUFFER
	GLDepthSize          GLAttr = sdl.GL_DEPTH_SIZE
	GLStencilSize        GLAttr = sdl.GL_STENCIL_SIZE
	GLAccumRedSize       GLAttr = sdl.GL_ACCUM_RED_SIZE
	GLAccumGreenSize     GLAttr = sdl.GL_ACCUM_GREEN_SIZE
	GLAccumBlueSize      GLAttr = sdl.GL_ACCUM_BLUE_SIZE
	GLAccumAlphaSize     GLAttr = sdl.GL_ACCUM_ALPHA_SIZE
	GLStereo             GLAttr = sdl.GL_STEREO
	GLMultiSampleBuffers GLAttr = sdl.GL_MULTISAMPLEBUFFERS
	GLMultiSampleSamples GLAttr = sdl.GL_MULTISAMPLESAMPLES
	GLAcceleratedVisual  GLAttr = sdl.GL_ACCELERATED_VISUAL
)

// GLLoadLibrary loads an OpenGL library. An empty path loads the default
// library. Must be called before SetVideoMode().
func GLLoadLibrary(path string) error {
	if current != nil {
		return sdlerr.Logicf(ScreenExists, "GLLoadLibrary")
	}
	if err := sdl.GLLoadLibrary(path); err != nil {
		return sdlerr.Errorf(SDLError, "GLLoadLibrary", err)
	}
	return nil
}

// GLGetProcAddress returns the address of an OpenGL function. Returns nil if
// the function does not exist.
func GLGetProcAddress(proc string) unsafe.Pointer {
	return sdl.GLGetProcAddress(proc)
}

// GLSetAttribute sets an attribute for the OpenGL context that will be
// created by SetVideoMode(). Must be called before SetVideoMode().
func GLSetAttribute(attr GLAttr, value int) error {
	if current != nil {
		return sdlerr.Logicf(ScreenExists, "GLSetAttribute")
	}
	if err := sdl.GLSetAttribute(attr, value); err != nil {
		return sdlerr.Errorf(SDLError, "GLSetAttribute", err)
	}
	return nil
}

// GLGetAttribute returns the value of an attribute of the current OpenGL
// context. Must be called after SetVideoMode().
func GLGetAttribute(attr GLAttr) (int, error) {
	if current == nil {
		return 0, sdlerr.Logicf(NoScreen, "GLGetAttribute")
	}
	v, err := sdl.GLGetAttribute(attr)
	if err != nil {
		return 0, sdlerr.Errorf(SDLError, "GLGetAttribute", err)
	}
	return v, nil
}

// GLSwapBuffers swaps the OpenGL buffers of the screen.
func GLSwapBuffers() error {
	if current == nil || current.glctx == nil {
		return sdlerr.Logicf(NoScreen, "GLSwapBuffers")
	}
	current.window.GLSwap()
	return nil
}

// GLSetSwapInterval sets the swap interval of the current OpenGL context.
// Zero for immediate updates and one for updates synchronised with the
// vertical retrace.
func GLSetSwapInterval(interval int) error {
	if current == nil || current.glctx == nil {
		return sdlerr.Logicf(NoScreen, "GLSetSwapInterval")
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		return sdlerr.Errorf(SDLError, "GLSetSwapInterval", err)
	}
	return nil
}
