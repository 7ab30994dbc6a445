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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/sdl4go/paths"
	"github.com/jetsetilly/sdl4go/test"
)

func TestResourcePath(t *testing.T) {
	// the local resource directory is preferred when it exists
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".sdl4go", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".sdl4go", "foo", "bar", "baz"))

	// sub-directory has been created
	_, err = os.Stat(filepath.Join(".sdl4go", "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".sdl4go", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".sdl4go")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "video", "bmp")
	test.ExpectSuccess(t, regexp.MustCompile(`^screenshot_video_\d{8}_\d{6}\.bmp$`).MatchString(fn))

	fn = paths.UniqueFilename("capture", " ", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^capture_\d{8}_\d{6}$`).MatchString(fn))
}
