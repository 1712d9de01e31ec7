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

// State records which beans are lit. The zero value is all beans unlit.
type State [Count]bool

// AllOn returns a state with every bean lit.
func AllOn() State {
	return State{true, true, true, true}
}

// AllOff returns a state with every bean unlit.
func AllOff() State {
	return State{}
}

// Set whether a bean is lit. Panics if the index is invalid.
func (s *State) Set(b Index, lit bool) {
	MustValid(b)
	s[b] = lit
}

// IsLit returns true if the bean is lit. Panics if the index is invalid.
func (s State) IsLit(b Index) bool {
	MustValid(b)
	return s[b]
}

// Lit returns the indexes of the beans that are lit, in order.
func (s State) Lit() []Index {
	return s.filter(true)
}

// Unlit returns the indexes of the beans that are not lit, in order.
func (s State) Unlit() []Index {
	return s.filter(false)
}

func (s State) filter(lit bool) []Index {
	var r []Index
	for i, v := range s {
		if v == lit {
			r = append(r, Index(i))
		}
	}
	return r
}

func (s State) String() string {
	b := []byte("----")
	for i, v := range s {
		if v {
			b[i] = '*'
		}
	}
	return string(b)
}
