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

package pollclock_test

import (
	"testing"
	"time"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/hardware/mock"
	"github.com/beanboard/beanboard/test"
)

func TestZeroWait(t *testing.T) {
	brd := mock.NewBoard()
	brd.Buttons.Hold(2)

	b, ok := brd.Poll.WaitUpTo(0)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, b, beans.Index(0))
	test.ExpectEquality(t, brd.Clock.Elapsed(), time.Duration(0))

	// the buttons were not sampled
	test.ExpectEquality(t, brd.Buttons.Samples, 0)

	_, ok = brd.Poll.WaitUpTo(-time.Second)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, brd.Buttons.Samples, 0)
}

func TestUninterruptedWait(t *testing.T) {
	brd := mock.NewBoard()

	_, ok := brd.Poll.WaitUpTo(500 * time.Millisecond)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, brd.Clock.Elapsed(), 500*time.Millisecond)

	// every bean sampled after every tick
	test.ExpectEquality(t, brd.Buttons.Samples, 500*beans.Count)
}

func TestInterruptedWait(t *testing.T) {
	brd := mock.NewBoard()
	brd.Buttons.PressFor(3, 50*time.Millisecond, 200*time.Millisecond)

	b, ok := brd.Poll.WaitUpTo(time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, beans.Index(3))
	test.ExpectEquality(t, brd.Clock.Elapsed(), 200*time.Millisecond)

	brd.Poll.WaitForRelease(b)
	test.ExpectEquality(t, brd.Clock.Elapsed(), 250*time.Millisecond)
	test.ExpectFailure(t, brd.Gateway.IsPressed(3))
}

func TestSampleOrder(t *testing.T) {
	brd := mock.NewBoard()
	brd.Buttons.Hold(3)
	brd.Buttons.Hold(1)

	b, ok := brd.Poll.WaitUpTo(time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, beans.Index(1))
	test.ExpectEquality(t, brd.Clock.Elapsed(), time.Millisecond)
}

func TestWaitIgnoresButtons(t *testing.T) {
	brd := mock.NewBoard()
	brd.Buttons.Hold(0)

	brd.Poll.Wait(100 * time.Millisecond)
	test.ExpectEquality(t, brd.Clock.Elapsed(), 100*time.Millisecond)
	test.ExpectEquality(t, brd.Buttons.Samples, 0)
}

func TestWaitUntil(t *testing.T) {
	brd := mock.NewBoard()
	deadline := brd.Clock.Now().Add(75 * time.Millisecond)

	_, ok := brd.Poll.WaitUntil(deadline)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, brd.Clock.Now(), deadline)

	// deadline has passed
	_, ok = brd.Poll.WaitUntil(deadline)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, brd.Clock.Now(), deadline)
}

func TestWaitWhilePlaying(t *testing.T) {
	brd := mock.NewBoard()
	brd.Audio.Durations["clip"] = 300 * time.Millisecond

	// not interruptible
	brd.Buttons.Hold(0)
	h := brd.Gateway.Play("clip")
	_, ok := brd.Poll.WaitWhilePlaying(h, false)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, brd.Clock.Elapsed(), 300*time.Millisecond)
	test.ExpectEquality(t, brd.Audio.Stopped, 0)
	brd.Buttons.Release(0)

	// interruptible
	brd.Buttons.PressFor(2, mock.DefaultHold, 0)
	h = brd.Gateway.Play("clip")
	b, ok := brd.Poll.WaitWhilePlaying(h, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, beans.Index(2))
	test.ExpectEquality(t, brd.Clock.Elapsed(), 301*time.Millisecond)
	test.ExpectEquality(t, brd.Audio.Stopped, 1)
	test.ExpectFailure(t, brd.Gateway.IsPlaying(h))
}
