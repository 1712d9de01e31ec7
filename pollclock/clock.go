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

package pollclock

import "time"

// Clock is a source of time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock uses the system time.
type RealClock struct{}

// Now implements the Clock interface.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep implements the Clock interface.
func (RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
