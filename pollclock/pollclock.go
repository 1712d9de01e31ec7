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

import (
	"time"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/hardware/audio"
)

// Tick is the interval between button samples.
const Tick = time.Millisecond

// Buttons reports the state of the buttons.
type Buttons interface {
	IsPressed(b beans.Index) bool
}

// Playback reports and controls the playing of a clip.
type Playback interface {
	IsPlaying(h audio.Handle) bool
	Stop(h audio.Handle)
}

// PollClock waits for time to pass or for a button to be pressed.
type PollClock struct {
	clk     Clock
	buttons Buttons
	audio   Playback
}

// NewPollClock is the preferred method of initialisation for the PollClock
// type.
func NewPollClock(clk Clock, buttons Buttons, audio Playback) *PollClock {
	return &PollClock{
		clk:     clk,
		buttons: buttons,
		audio:   audio,
	}
}

// Now returns the current time according to the clock.
func (pc *PollClock) Now() time.Time {
	return pc.clk.Now()
}

// Sample the buttons once, in bean order. Returns the first bean that is
// pressed.
func (pc *PollClock) Sample() (beans.Index, bool) {
	for _, b := range beans.All() {
		if pc.buttons.IsPressed(b) {
			return b, true
		}
	}
	return 0, false
}

// tick sleeps for one tick or until the deadline, whichever is sooner.
func (pc *PollClock) tick(deadline time.Time) {
	d := deadline.Sub(pc.clk.Now())
	if d > Tick {
		d = Tick
	}
	pc.clk.Sleep(d)
}

// WaitUpTo waits for the duration or until a button is pressed. Returns the
// pressed bean and true if the wait was interrupted.
//
// A duration of zero or less returns immediately without sampling the
// buttons.
func (pc *PollClock) WaitUpTo(d time.Duration) (beans.Index, bool) {
	if d <= 0 {
		return 0, false
	}

	deadline := pc.clk.Now().Add(d)
	for {
		pc.tick(deadline)
		if b, ok := pc.Sample(); ok {
			return b, true
		}
		if !pc.clk.Now().Before(deadline) {
			return 0, false
		}
	}
}

// WaitUntil is like WaitUpTo() except that it waits until the deadline.
func (pc *PollClock) WaitUntil(deadline time.Time) (beans.Index, bool) {
	return pc.WaitUpTo(deadline.Sub(pc.clk.Now()))
}

// Wait for the duration. Buttons are ignored.
func (pc *PollClock) Wait(d time.Duration) {
	if d <= 0 {
		return
	}
	pc.clk.Sleep(d)
}

// WaitForRelease blocks until the bean is no longer pressed.
func (pc *PollClock) WaitForRelease(b beans.Index) {
	beans.MustValid(b)
	for pc.buttons.IsPressed(b) {
		pc.clk.Sleep(Tick)
	}
}

// WaitWhilePlaying waits until the clip has finished playing. If
// interruptible is true then a button press will stop the clip and the
// pressed bean is returned along with the value true.
func (pc *PollClock) WaitWhilePlaying(h audio.Handle, interruptible bool) (beans.Index, bool) {
	for pc.audio.IsPlaying(h) {
		pc.clk.Sleep(Tick)
		if interruptible {
			if b, ok := pc.Sample(); ok {
				pc.audio.Stop(h)
				return b, true
			}
		}
	}
	return 0, false
}
