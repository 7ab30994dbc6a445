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

package sdlerr_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/jetsetilly/sdl4go/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := sdlerr.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := sdlerr.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	// duplicates deeper in the chain are also dropped
	g := sdlerr.Errorf("video: %v", sdlerr.Logicf("video: %v", sdlerr.Errorf("surface: %s", "not initialised")))
	test.ExpectEquality(t, g.Error(), "video: surface: not initialised")
}

func TestIs(t *testing.T) {
	e := sdlerr.Errorf(testError, "foo")
	test.ExpectSuccess(t, sdlerr.Is(e, testError))
	test.ExpectSuccess(t, sdlerr.Has(e, testError))
	test.ExpectSuccess(t, sdlerr.IsAny(e))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, sdlerr.Has(e, testErrorB))

	f := sdlerr.Errorf(testErrorB, e)
	test.ExpectFailure(t, sdlerr.Is(f, testError))
	test.ExpectSuccess(t, sdlerr.Is(f, testErrorB))
	test.ExpectSuccess(t, sdlerr.Has(f, testError))
	test.ExpectSuccess(t, sdlerr.Has(f, testErrorB))

	// plain errors are never matched
	p := errors.New("plain error")
	test.ExpectFailure(t, sdlerr.IsAny(p))
	test.ExpectFailure(t, sdlerr.Is(p, "plain error"))
	test.ExpectFailure(t, sdlerr.Has(nil, testError))

	// errors.Is() can see through the chain
	test.ExpectSuccess(t, errors.Is(sdlerr.Errorf("wrapped: %v", p), p))
}

func TestKinds(t *testing.T) {
	r := sdlerr.Errorf(testError, "foo")
	l := sdlerr.Logicf(testError, "foo")

	test.ExpectSuccess(t, sdlerr.IsRuntime(r))
	test.ExpectFailure(t, sdlerr.IsLogic(r))
	test.ExpectSuccess(t, sdlerr.IsLogic(l))
	test.ExpectFailure(t, sdlerr.IsRuntime(l))

	// the kind of the outermost error decides
	test.ExpectSuccess(t, sdlerr.IsRuntime(sdlerr.Errorf(testErrorB, l)))
	test.ExpectSuccess(t, sdlerr.IsLogic(sdlerr.Logicf(testErrorB, r)))

	// plain errors are runtime errors. nil is neither
	test.ExpectSuccess(t, sdlerr.IsRuntime(errors.New("plain")))
	test.ExpectEquality(t, sdlerr.KindOf(errors.New("plain")), sdlerr.Runtime)
	test.ExpectFailure(t, sdlerr.IsRuntime(nil))
	test.ExpectFailure(t, sdlerr.IsLogic(nil))
}
