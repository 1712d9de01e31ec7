// This file is part of Beanboard.
//
// Beanboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Beanboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Beanboard.  If not, see <https://www.gnu.org/licenses/>.

package beans_test

import (
	"testing"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/test"
)

func TestValid(t *testing.T) {
	for _, b := range beans.All() {
		test.ExpectSuccess(t, b.Valid())
	}
	test.ExpectFailure(t, beans.Index(-1).Valid())
	test.ExpectFailure(t, beans.Index(beans.Count).Valid())
}

func TestMustValid(t *testing.T) {
	panicked := func(b beans.Index) (p bool) {
		defer func() {
			p = recover() != nil
		}()
		beans.MustValid(b)
		return false
	}

	test.ExpectFailure(t, panicked(0))
	test.ExpectFailure(t, panicked(3))
	test.ExpectSuccess(t, panicked(4))
	test.ExpectSuccess(t, panicked(-1))
}

func TestFromNumber(t *testing.T) {
	b, err := beans.FromNumber(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, beans.Index(0))

	b, err = beans.FromNumber(4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, beans.Index(3))

	_, err = beans.FromNumber(0)
	test.ExpectFailure(t, err)
	_, err = beans.FromNumber(5)
	test.ExpectFailure(t, err)
}

func TestSequence(t *testing.T) {
	a := beans.Sequence{3, 2, 1, 0}
	test.ExpectSuccess(t, a.Equal(beans.Sequence{3, 2, 1, 0}))
	test.ExpectFailure(t, a.Equal(beans.Sequence{3, 2, 1}))
	test.ExpectFailure(t, a.Equal(beans.Sequence{3, 2, 0, 1}))
	test.ExpectEquality(t, a.String(), "[4 3 2 1]")

	var empty beans.Sequence
	test.ExpectSuccess(t, empty.Equal(beans.Sequence{}))
	test.ExpectEquality(t, empty.String(), "[]")
}

func TestState(t *testing.T) {
	var s beans.State
	test.ExpectEquality(t, s, beans.AllOff())
	test.ExpectEquality(t, len(s.Unlit()), beans.Count)

	s.Set(2, true)
	test.ExpectSuccess(t, s.IsLit(2))
	test.ExpectSlice(t, s.Lit(), []beans.Index{2})
	test.ExpectSlice(t, s.Unlit(), []beans.Index{0, 1, 3})
	test.ExpectEquality(t, s.String(), "--*-")

	test.ExpectEquality(t, beans.AllOn().String(), "****")
}

func TestPalette(t *testing.T) {
	test.ExpectEquality(t, beans.Canonical.Colour(0), beans.Red)
	test.ExpectEquality(t, beans.Canonical.Colour(3), beans.Yellow)
	test.ExpectEquality(t, beans.Canonical.Colour(3).String(), "255 255 0")

	m := beans.Mono(beans.Red)
	for _, b := range beans.All() {
		test.ExpectEquality(t, m.Colour(b), beans.Red)
	}
}
