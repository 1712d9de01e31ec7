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

package random

import (
	"math/rand"
	"time"
)

// Random is a seedable random number generator. It is not safe for
// concurrent use but the game runs in a single goroutine.
type Random struct {
	seed int64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero will be replaced with a seed taken from the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed value used to initialise the generator.
func (r *Random) Seed() int64 {
	return r.seed
}

// Reseed restarts the generator with a new seed. A seed of zero will be
// replaced with a seed taken from the current time.
func (r *Random) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.seed = seed
	r.rnd = rand.New(rand.NewSource(seed))
}

// Intn returns a uniform value in the range [0, n).
func (r *Random) Intn(n int) int {
	return r.rnd.Intn(n)
}

// Range returns a uniform value in the range [lo, hi).
func (r *Random) Range(lo, hi int) int {
	return lo + r.rnd.Intn(hi-lo)
}

// Perm returns a pseudo-random permutation of the integers [0, n).
func (r *Random) Perm(n int) []int {
	return r.rnd.Perm(n)
}
