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

package session_test

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/cheats"
	"github.com/beanboard/beanboard/curated"
	"github.com/beanboard/beanboard/environment"
	"github.com/beanboard/beanboard/hardware"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/hardware/mock"
	"github.com/beanboard/beanboard/hiscore"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/modifiers"
	"github.com/beanboard/beanboard/rounds"
	"github.com/beanboard/beanboard/session"
	"github.com/beanboard/beanboard/test"
)

var banks = audio.Banks{
	Normal: audio.Bank{"a", "b", "c", "d"},
	Dog:    audio.Dog,
}

type board struct {
	env   *environment.Environment
	brd   *mock.Board
	store hiscore.Store
}

func newBoard(t *testing.T, seed int64) *board {
	t.Helper()
	dir := t.TempDir()
	env, err := mock.NewEnvironment(dir, seed)
	test.DemandSuccess(t, err)
	return &board{
		env:   env,
		brd:   mock.NewBoard(),
		store: hiscore.NewFile(logger.Allow, filepath.Join(dir, "hiscore")),
	}
}

func (b *board) controller(store hiscore.Store) *session.Controller {
	return session.NewController(b.env, b.brd.Gateway, b.brd.Poll, banks, cheats.DefaultRegistry(), store)
}

// end the attract animation and then enter the password. the password is
// given as bean numbers
func (b *board) enter(password ...int) {
	b.brd.Buttons.PressFor(0, mock.DefaultHold, time.Second)
	for _, n := range password {
		bn, _ := beans.FromNumber(n)
		b.brd.Buttons.PressFor(bn, mock.DefaultHold, 50*time.Millisecond)
	}
}

func TestCycleNoMode(t *testing.T) {
	b := newBoard(t, 1)
	c := b.controller(b.store)

	var after int
	c.AfterCycle = func() {
		after++
	}

	b.enter()
	test.DemandSuccess(t, c.Cycle())

	test.ExpectEquality(t, c.Cycles(), 1)
	test.ExpectEquality(t, after, 1)
	test.ExpectEquality(t, c.Last().Mode, modifiers.NoMode)
	test.ExpectEquality(t, c.Last().Reason, rounds.Timeout)
	test.ExpectEquality(t, c.Last().Score, 0)
	test.ExpectFailure(t, slices.Contains(b.brd.Audio.Played, audio.Chime))
	test.ExpectSuccess(t, b.brd.Lights.AllOff())

	r, err := b.store.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 1)
}

func TestCycleDogMode(t *testing.T) {
	b := newBoard(t, 2)
	c := b.controller(b.store)

	b.enter(1, 2, 3, 4)
	test.DemandSuccess(t, c.Cycle())

	test.ExpectEquality(t, c.Last().Mode, modifiers.DogMode)
	test.ExpectSuccess(t, slices.Contains(b.brd.Audio.Played, audio.Chime))
	test.ExpectEquality(t, c.Modifiers().Bank, audio.Dog)

	// the first clip after the chime is from the dog bank
	i := slices.Index(b.brd.Audio.Played, audio.Chime)
	test.DemandSuccess(t, i+1 < len(b.brd.Audio.Played))
	test.ExpectSuccess(t, slices.Contains(audio.Dog[:], b.brd.Audio.Played[i+1]))

	// the next cycle starts with the default modifiers
	b.brd.Audio.Played = nil
	b.enter()
	test.DemandSuccess(t, c.Cycle())
	test.ExpectEquality(t, c.Cycles(), 2)
	test.ExpectEquality(t, c.Last().Mode, modifiers.NoMode)
	test.ExpectEquality(t, c.Modifiers().Bank, banks.Normal)
	test.ExpectSuccess(t, slices.Contains(banks.Normal[:], b.brd.Audio.Played[0]))

	r, err := b.store.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 2)
	test.ExpectEquality(t, r.ModePlays[modifiers.DogMode], 1)
	test.ExpectEquality(t, r.ModePlays[modifiers.NoMode], 1)
}

func TestCycleUnknownPassword(t *testing.T) {
	b := newBoard(t, 3)
	c := b.controller(nil)

	b.enter(2, 2, 2, 2)
	test.DemandSuccess(t, c.Cycle())
	test.ExpectEquality(t, c.Last().Mode, modifiers.NoMode)
	test.ExpectFailure(t, slices.Contains(b.brd.Audio.Played, audio.Chime))
}

func TestSideshowStoppedNextCycle(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep command not available")
	}

	b := newBoard(t, 4)
	test.DemandSuccess(t, b.env.Prefs.VideoCommand.Set("sleep 60"))
	c := b.controller(nil)
	defer c.Close()

	b.enter(1, 3, 2, 4)
	test.DemandSuccess(t, c.Cycle())
	test.ExpectEquality(t, c.Last().Mode, modifiers.PartyMode)

	video := c.Modifiers().Processes()[0]
	test.ExpectSuccess(t, video.Running())

	// no cheat in the next cycle. the video is stopped anyway
	b.enter()
	test.DemandSuccess(t, c.Cycle())
	test.ExpectFailure(t, video.Running())
}

// cancels the context when a game is recorded
type cancelStore struct {
	hiscore.Store
	cancel context.CancelFunc
}

func (s cancelStore) Record(mode string, score int) (hiscore.Record, error) {
	defer s.cancel()
	return s.Store.Record(mode, score)
}

func TestRun(t *testing.T) {
	b := newBoard(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	c := b.controller(cancelStore{Store: b.store, cancel: cancel})

	b.enter()
	test.ExpectSuccess(t, c.Run(ctx))
	test.ExpectEquality(t, c.Cycles(), 1)

	// cancelled before anything happens
	n := len(b.brd.Lights.Commands)
	test.ExpectSuccess(t, c.Run(ctx))
	test.ExpectEquality(t, len(b.brd.Lights.Commands), n)
}

func TestRunTransportFault(t *testing.T) {
	b := newBoard(t, 6)
	c := b.controller(nil)
	b.brd.Lights.Fail = errors.New("link down")

	err := c.Run(context.Background())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.TransportFault))
}

func TestDump(t *testing.T) {
	b := newBoard(t, 7)
	c := b.controller(nil)

	b.enter()
	test.DemandSuccess(t, c.Cycle())

	s := c.Snapshot()
	test.ExpectEquality(t, s.Cycles, 1)
	test.ExpectEquality(t, s.Mode, modifiers.NoMode)
	test.ExpectEquality(t, s.Timeout, 10*time.Second)

	var w bytes.Buffer
	c.Dump(&w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
