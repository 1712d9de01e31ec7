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

// Package beans defines the basic vocabulary of the board: the index of a
// bean (a button and light pair), the colour of a light and the on/off state
// of all the lights.
//
// The board has exactly Count beans. An Index outside of the range [0, Count)
// is a programming error and MustValid() will panic if it sees one.
package beans
