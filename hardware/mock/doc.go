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

// Package mock provides implementations of the hardware interfaces for use in
// tests. Everything is driven by a manual Clock, so a test runs as quickly
// as the CPU allows and the outcome is the same every time.
//
// Presses are queued on the Buttons type and each press starts the first time
// the buttons are sampled after it has reached the head of the queue. This
// means that presses made while the game is not listening, during the
// playback of a sequence for example, are not lost.
package mock
