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

// Package pollclock implements the cooperative wait used by every phase of
// the game. Waits are divided into short ticks and the buttons are sampled
// after every tick, so that a wait can be abandoned the moment a button is
// pressed.
//
// There is no real concurrency in the game. The only things that happen
// independently of the game loop are the playing of a sound clip and the
// player pressing buttons. PollClock is where the game loop decides, every
// tick, whether to let a clip finish or to cut it short.
//
// Time is supplied by a Clock. The RealClock uses the system time. Tests use
// a manual clock that only advances when Sleep() is called.
package pollclock
