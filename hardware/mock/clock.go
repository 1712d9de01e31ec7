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

package mock

import (
	"sync"
	"time"
)

// Epoch is the time at which a new Clock starts.
var Epoch = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// Clock is a manual clock. Time only passes when Sleep() or Advance() is
// called.
type Clock struct {
	crit sync.Mutex
	now  time.Time
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock() *Clock {
	return &Clock{now: Epoch}
}

// Now implements the pollclock.Clock interface.
func (clk *Clock) Now() time.Time {
	clk.crit.Lock()
	defer clk.crit.Unlock()
	return clk.now
}

// Sleep implements the pollclock.Clock interface.
func (clk *Clock) Sleep(d time.Duration) {
	clk.Advance(d)
}

// Advance the clock by the duration.
func (clk *Clock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	clk.crit.Lock()
	defer clk.crit.Unlock()
	clk.now = clk.now.Add(d)
}

// Elapsed returns the time since the clock started.
func (clk *Clock) Elapsed() time.Duration {
	return clk.Now().Sub(Epoch)
}
