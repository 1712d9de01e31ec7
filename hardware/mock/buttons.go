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
	"time"

	"github.com/beanboard/beanboard/beans"
)

// DefaultHold is the time a queued press is held for, if not specified.
const DefaultHold = 20 * time.Millisecond

type press struct {
	bean beans.Index
	hold time.Duration

	// the gap between the release of the previous press and the start of
	// this one
	gap time.Duration
}

// Buttons is a scripted implementation of the hardware.Buttons interface.
type Buttons struct {
	clk *Clock

	queue []press

	// the press that is currently held
	active    bool
	bean      beans.Index
	releaseAt time.Time
	lastEnd   time.Time

	// buttons that are held until Release() is called
	held [beans.Count]bool

	// number of times IsPressed() has been called
	Samples int
}

// NewButtons is the preferred method of initialisation for the Buttons type.
func NewButtons(clk *Clock) *Buttons {
	return &Buttons{
		clk:     clk,
		lastEnd: clk.Now(),
	}
}

// Press queues a press of each bean, each held for DefaultHold.
func (btn *Buttons) Press(bs ...beans.Index) {
	for _, b := range bs {
		btn.PressFor(b, DefaultHold, 0)
	}
}

// PressFor queues a press of a bean held for the duration. The press will not
// start until the gap has elapsed since the end of the previous press.
func (btn *Buttons) PressFor(b beans.Index, hold time.Duration, gap time.Duration) {
	beans.MustValid(b)
	btn.queue = append(btn.queue, press{bean: b, hold: hold, gap: gap})
}

// Hold the button until Release() is called.
func (btn *Buttons) Hold(b beans.Index) {
	btn.held[b] = true
}

// Release a button held with Hold().
func (btn *Buttons) Release(b beans.Index) {
	btn.held[b] = false
}

// Pending returns the number of queued presses that have not started.
func (btn *Buttons) Pending() int {
	return len(btn.queue)
}

// Busy returns true if there is a press in progress or waiting to start.
func (btn *Buttons) Busy() bool {
	btn.update()
	return btn.active || len(btn.queue) > 0
}

func (btn *Buttons) update() {
	now := btn.clk.Now()

	if btn.active && !now.Before(btn.releaseAt) {
		btn.active = false
		btn.lastEnd = btn.releaseAt
	}

	if !btn.active && len(btn.queue) > 0 {
		p := btn.queue[0]
		if !now.Before(btn.lastEnd.Add(p.gap)) {
			btn.queue = btn.queue[1:]
			btn.active = true
			btn.bean = p.bean
			btn.releaseAt = now.Add(p.hold)
		}
	}
}

// IsPressed implements the hardware.Buttons interface.
func (btn *Buttons) IsPressed(b beans.Index) bool {
	beans.MustValid(b)
	btn.Samples++
	if btn.held[b] {
		return true
	}
	btn.update()
	return btn.active && btn.bean == b
}
