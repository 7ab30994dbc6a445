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

package system

import (
	"unsafe"

	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// Error patterns for shared objects.
const (
	ObjectError   = "system: load object: %s: %s"
	FunctionError = "system: load function: %s: %s"
	NotLoaded     = "system: %s: object is not loaded"
)

// Object is a shared object loaded with LoadObject().
type Object struct {
	handle unsafe.Pointer
	path   string
}

// LoadObject loads a shared object.
func LoadObject(path string) (*Object, error) {
	h := sdl.LoadObject(path)
	if h == nil {
		return nil, sdlerr.Errorf(ObjectError, path, GetError())
	}
	logger.Logf(logger.Allow, "system", "loaded object %s", path)
	return &Object{handle: h, path: path}, nil
}

// Loaded returns true if the object is loaded.
func (obj *Object) Loaded() bool {
	return obj != nil && obj.handle != nil
}

// Path returns the path the object was loaded from.
func (obj *Object) Path() string {
	return obj.path
}

// LoadFunction returns the address of the named function in the object.
func LoadFunction(obj *Object, name string) (unsafe.Pointer, error) {
	if !obj.Loaded() {
		return nil, sdlerr.Logicf(NotLoaded, "LoadFunction")
	}
	f := sdl.LoadFunction(obj.handle, name)
	if f == nil {
		return nil, sdlerr.Errorf(FunctionError, name, GetError())
	}
	return f, nil
}

// UnloadObject unloads the object. It is a logic error to unload an object
// that is not loaded.
func UnloadObject(obj *Object) error {
	if !obj.Loaded() {
		return sdlerr.Logicf(NotLoaded, "UnloadObject")
	}
	sdl.UnloadObject(obj.handle)
	obj.handle = nil
	logger.Logf(logger.Allow, "system", "unloaded object %s", obj.path)
	return nil
}
