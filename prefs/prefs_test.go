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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sdl4go/prefs"
	"github.com/jetsetilly/sdl4go/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sdl4go_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestMaxStringLength(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("abcdefgh"))
	v.SetMaxLen(4)
	test.ExpectEquality(t, v.String(), "abcd")
	test.ExpectSuccess(t, v.Set("123456"))
	test.ExpectEquality(t, v.String(), "1234")
	v.SetMaxLen(0)
	test.ExpectSuccess(t, v.Set("123456"))
	test.ExpectEquality(t, v.String(), "123456")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("gamma", &v))
	test.ExpectEquality(t, v.String(), "0.000")

	test.ExpectSuccess(t, v.Set(1.25))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "gamma :: 1.250\n")

	test.ExpectSuccess(t, v.Set(" 2.5"))
	test.ExpectEquality(t, v.Get().(float64), 2.5)
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.Get().(float64), 3.0)

	test.ExpectFailure(t, v.Set("x"))
	test.ExpectFailure(t, v.Set(true))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(float64), 0.0)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// the pre hook prevents the value being updated
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("driver", &s))

	// file doesn't exist so it will be created with the current values
	test.ExpectSuccess(t, v.Set(25))
	test.DemandSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "driver :: \nnumber :: 25\n")

	test.ExpectSuccess(t, s.Set("dummy"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
	test.ExpectEquality(t, s.String(), "")

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 25)
	test.ExpectEquality(t, s.String(), "dummy")

	// command line values override the file
	prefs.PushCommandLineStack("number::50; unused::true")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 50)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::true")
}

func TestBadKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a :: b", &v))
	test.ExpectFailure(t, dsk.Add("a;b", &v))
	test.ExpectSuccess(t, dsk.Add("a", &v))
	test.ExpectFailure(t, dsk.Add("a", &v))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestInvalidFile(t *testing.T) {
	fn := getTmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load(false))
}
