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

import "fmt"

// Colour of a light as it is sent to the light strip.
type Colour struct {
	R, G, B uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// List of named colours.
var (
	Off    = Colour{}
	Red    = Colour{R: 255}
	Green  = Colour{G: 255}
	Blue   = Colour{B: 255}
	Yellow = Colour{R: 255, G: 255}
	White  = Colour{R: 255, G: 255, B: 255}
)

// Palette assigns a colour to each bean.
type Palette [Count]Colour

// Canonical is the normal colour of each bean.
var Canonical = Palette{Red, Green, Blue, Yellow}

// Mono returns a palette with every bean the same colour.
func Mono(c Colour) Palette {
	var p Palette
	for i := range p {
		p[i] = c
	}
	return p
}

// Colour returns the colour for the bean. Panics if the index is invalid.
func (p Palette) Colour(b Index) Colour {
	MustValid(b)
	return p[b]
}
