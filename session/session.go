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

// Package session joins the phases of the game into the loop that runs the
// board. Each cycle of the loop clears the board, shows the attract
// animation, captures a cheat sequence and then plays a game until it is
// lost.
//
// The controller owns the Modifiers. They are reset at the top of every
// cycle, which also stops any side show started by the previous cycle, and
// are changed only when a cheat mode is unlocked.
package session

import (
	"context"
	"io"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/beanboard/beanboard/attract"
	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/cheats"
	"github.com/beanboard/beanboard/environment"
	"github.com/beanboard/beanboard/hardware"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/hiscore"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/modifiers"
	"github.com/beanboard/beanboard/pollclock"
	"github.com/beanboard/beanboard/rounds"
)

// Controller runs the game loop.
type Controller struct {
	env *environment.Environment
	gw  *hardware.Gateway

	mods    *modifiers.Modifiers
	attract *attract.Engine
	cheats  *cheats.Recognizer
	rounds  *rounds.Engine

	cycles int
	last   rounds.Result

	// called at the end of every cycle that completes without error
	AfterCycle func()
}

// NewController is the preferred method of initialisation for the Controller
// type. The store can be nil, in which case scores are not recorded.
func NewController(env *environment.Environment, gw *hardware.Gateway, poll *pollclock.PollClock,
	banks audio.Banks, registry *cheats.Registry, store hiscore.Store) *Controller {
	return &Controller{
		env:     env,
		gw:      gw,
		mods:    modifiers.NewModifiers(env, banks),
		attract: attract.NewEngine(env, gw, poll),
		cheats:  cheats.NewRecognizer(env, gw, poll, registry),
		rounds:  rounds.NewEngine(env, gw, poll, store),
	}
}

// Modifiers returns the modifiers owned by the controller.
func (c *Controller) Modifiers() *modifiers.Modifiers {
	return c.mods
}

// Cycles returns the number of cycles that have completed.
func (c *Controller) Cycles() int {
	return c.cycles
}

// Last returns the result of the most recent game.
func (c *Controller) Last() rounds.Result {
	return c.last
}

// Run cycles until the context is cancelled or until there is an error.
// Cancellation is noticed between the phases of a cycle and is not an error.
func (c *Controller) Run(ctx context.Context) error {
	logger.Log(c.env, "session", "started")
	defer logger.Log(c.env, "session", "ended")

	for {
		if err := c.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

// Cycle runs one cycle of the game loop. It returns when the game has been
// lost.
func (c *Controller) Cycle() error {
	return c.cycle(context.Background())
}

func (c *Controller) cycle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.gw.ClearAll(); err != nil {
		return err
	}

	// side shows must stop however the previous cycle ended. an error
	// stopping them is not fatal
	if err := c.mods.Reset(); err != nil {
		logger.Log(c.env, "session", err)
	}

	b, err := c.attract.Run()
	if err != nil {
		return err
	}
	logger.Logf(c.env, "session", "attract ended by %s", b)

	if err := ctx.Err(); err != nil {
		return err
	}

	seq, err := c.cheats.Capture()
	if err != nil {
		return err
	}

	if mode, ok := c.cheats.Resolve(seq); ok {
		c.mods.Apply(mode)
		if err := c.cheats.Celebrate(c.mods); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := c.rounds.Play(c.mods)
	if err != nil {
		return err
	}

	c.last = res
	c.cycles++
	logger.Logf(c.env, "session", "cycle %d: %s scored %d (%s)", c.cycles, res.Mode, res.Score, res.Reason)

	if c.AfterCycle != nil {
		c.AfterCycle()
	}

	return nil
}

// Close stops any side show and turns off the lights.
func (c *Controller) Close() error {
	err := c.mods.Close()
	if e := c.gw.ClearAll(); e != nil {
		return e
	}
	return err
}

// Snapshot of the controller state.
type Snapshot struct {
	Cycles   int
	Mode     string
	Timeout  time.Duration
	Palette  beans.Palette
	Bank     audio.Bank
	Sequence beans.Sequence
	Last     rounds.Result
}

// Snapshot returns the current state of the controller.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Cycles:   c.cycles,
		Mode:     c.mods.ModeName(),
		Timeout:  c.mods.Timeout,
		Palette:  c.mods.Palette,
		Bank:     c.mods.Bank,
		Sequence: c.rounds.Sequence(),
		Last:     c.last,
	}
}

// Dump writes a graph of the controller state, in the graphviz dot
// language, to the writer.
func (c *Controller) Dump(w io.Writer) {
	s := c.Snapshot()
	memviz.Map(w, &s)
}
