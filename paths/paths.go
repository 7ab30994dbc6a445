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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the base path for all resources when found in the current directory
const localResourcePath = ".sdl4go"

// the name of the directory in the user's config directory
const configResourcePath = "sdl4go"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The subPth
// directory is created if it does not exist. The file need not exist.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	var pth string

	if _, err := os.Stat(localResourcePath); err == nil {
		pth = filepath.Join(localResourcePath, subPth)
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cnf, configResourcePath, subPth)
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS.ext
//
// If name is empty the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// The ext argument should not include the leading dot.
func UniqueFilename(prepend string, name string, ext string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	var fn string
	if c := strings.TrimSpace(name); len(c) > 0 {
		fn = fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}

	return fn
}
