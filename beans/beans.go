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

package beans

import (
	"fmt"
	"strings"
)

// Count is the number of beans on the board.
const Count = 4

// Index identifies a single bean. Indexes are zero based. Where a bean is
// shown to the player (or entered in a cheats file) it is numbered from one.
type Index int

// Valid returns true if the index refers to a bean on the board.
func (b Index) Valid() bool {
	return b >= 0 && b < Count
}

func (b Index) String() string {
	return fmt.Sprintf("bean %d", int(b)+1)
}

// MustValid panics if the index is not valid. Indexes are never taken from
// user input without being checked so an invalid index always indicates a
// bug.
func MustValid(b Index) {
	if b < 0 || b >= Count {
		panic(fmt.Sprintf("beans: index out of range: %d", int(b)))
	}
}

// All returns every bean index in order.
func All() []Index {
	return []Index{0, 1, 2, 3}
}

// FromNumber converts the one based numbering used by people to an Index.
func FromNumber(n int) (Index, error) {
	b := Index(n - 1)
	if !b.Valid() {
		return 0, fmt.Errorf("beans: no bean numbered %d", n)
	}
	return b, nil
}

// Sequence is an ordered list of bean indexes.
type Sequence []Index

// Equal returns true if both sequences have the same length and the same
// beans in the same order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Numbers returns the sequence using the one based numbering.
func (s Sequence) Numbers() []int {
	n := make([]int, len(s))
	for i, b := range s {
		n[i] = int(b) + 1
	}
	return n
}

func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range s.Numbers() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", n)
	}
	b.WriteByte(']')
	return b.String()
}
