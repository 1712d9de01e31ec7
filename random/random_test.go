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

package random_test

import (
	"testing"

	"github.com/beanboard/beanboard/random"
	"github.com/beanboard/beanboard/test"
)

func TestSameSeed(t *testing.T) {
	a := random.NewRandom(100)
	b := random.NewRandom(100)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestReseed(t *testing.T) {
	a := random.NewRandom(32)
	first := make([]int, 16)
	for i := range first {
		first[i] = a.Intn(4)
	}

	a.Reseed(32)
	for i := range first {
		test.ExpectEquality(t, a.Intn(4), first[i])
	}
	test.ExpectEquality(t, a.Seed(), int64(32))
}

func TestRange(t *testing.T) {
	a := random.NewRandom(7)
	for range 1000 {
		v := a.Range(10, 20)
		test.ExpectSuccess(t, v >= 10 && v < 20)
	}
}

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom(0)
	test.ExpectInequality(t, a.Seed(), int64(0))
}
