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

package modifiers_test

import (
	"os/exec"
	"testing"
	"time"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/hardware/mock"
	"github.com/beanboard/beanboard/modifiers"
	"github.com/beanboard/beanboard/test"
)

var banks = audio.Banks{
	Normal: audio.Bank{"a", "b", "c", "d"},
	Dog:    audio.Dog,
}

func newModifiers(t *testing.T) *modifiers.Modifiers {
	t.Helper()
	env, err := mock.NewEnvironment(t.TempDir(), 1)
	test.DemandSuccess(t, err)
	return modifiers.NewModifiers(env, banks)
}

func TestDefaults(t *testing.T) {
	m := newModifiers(t)
	test.ExpectEquality(t, m.ModeName(), modifiers.NoMode)
	test.ExpectEquality(t, m.Timeout, 10*time.Second)
	test.ExpectEquality(t, m.Bank, banks.Normal)
	test.ExpectEquality(t, m.Palette, beans.Canonical)
	test.ExpectSuccess(t, m.Shrink == nil)
}

func TestDogMode(t *testing.T) {
	m := newModifiers(t)
	m.Apply(modifiers.DogMode)
	test.ExpectEquality(t, m.ModeName(), modifiers.DogMode)
	test.ExpectEquality(t, m.Bank, audio.Dog)

	test.ExpectSuccess(t, m.Reset())
	test.ExpectEquality(t, m.Bank, banks.Normal)
	test.ExpectEquality(t, m.ModeName(), modifiers.NoMode)
}

func TestRedAlert(t *testing.T) {
	m := newModifiers(t)
	m.Apply(modifiers.RedAlert)
	test.ExpectEquality(t, m.Palette, beans.Mono(beans.Red))
}

func TestSpeedrunShrink(t *testing.T) {
	m := newModifiers(t)
	m.Apply(modifiers.Speedrun)
	test.ExpectEquality(t, m.Timeout, 2*time.Second)

	m.Correct()
	test.ExpectEquality(t, m.Timeout, 1900*time.Millisecond)

	for range 100 {
		m.Correct()
	}
	test.ExpectEquality(t, m.Timeout, 400*time.Millisecond)

	test.ExpectSuccess(t, m.Reset())
	test.ExpectEquality(t, m.Timeout, 10*time.Second)

	// no shrink without the modifier
	m.Correct()
	test.ExpectEquality(t, m.Timeout, 10*time.Second)
}

func TestSpeedrunBelowFloor(t *testing.T) {
	env, err := mock.NewEnvironment(t.TempDir(), 1)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Prefs.SpeedrunTimeout.Set("300ms"))

	m := modifiers.NewModifiers(env, banks)
	m.Apply(modifiers.Speedrun)
	test.ExpectEquality(t, m.Timeout, 300*time.Millisecond)

	// the floor stops the timeout shrinking but never raises it
	m.Correct()
	test.ExpectEquality(t, m.Timeout, 300*time.Millisecond)
}

func TestUnknownMode(t *testing.T) {
	m := newModifiers(t)
	m.Apply("hokey_cokey")
	test.ExpectEquality(t, m.ModeName(), "hokey_cokey")
	test.ExpectFailure(t, modifiers.Known("hokey_cokey"))
	test.ExpectEquality(t, m.Bank, banks.Normal)
}

func TestAnnouncement(t *testing.T) {
	m := newModifiers(t)
	w := &test.Writer{}
	m.Out = w
	m.Apply(modifiers.PrintALine)
	test.ExpectSuccess(t, w.Compare("CHEAT MODE UNLOCKED: PRINT A LINE! YOU'RE SUCH A HACKER!!\n"))
}

func TestSideshowStoppedOnReset(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep command not available")
	}

	env, err := mock.NewEnvironment(t.TempDir(), 1)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Prefs.VideoCommand.Set("sleep 60"))

	m := modifiers.NewModifiers(env, banks)
	m.Apply(modifiers.PartyMode)

	video := m.Processes()[0]
	test.ExpectSuccess(t, video.Running())

	// reset is unconditional
	test.ExpectSuccess(t, m.Reset())
	test.ExpectFailure(t, video.Running())

	test.ExpectSuccess(t, m.Close())
}
