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

// Package attract implements the idle animation shown while the board waits
// for a player. The animation is made up of routines that are played in a
// random order until a button is pressed.
//
// Every routine waits with the PollClock and so every routine can be
// interrupted at any point. When a routine is interrupted the lights are
// cleared and the pressed bean is returned to the caller.
package attract

import (
	"time"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/environment"
	"github.com/beanboard/beanboard/hardware"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/pollclock"
)

// a routine returns true and the pressed bean if it was interrupted
type routine struct {
	name string
	run  func() (beans.Index, bool, error)
}

// Engine plays the attract animation.
type Engine struct {
	env  *environment.Environment
	gw   *hardware.Gateway
	poll *pollclock.PollClock

	palette beans.Palette
	state   beans.State

	routines []routine
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(env *environment.Environment, gw *hardware.Gateway, poll *pollclock.PollClock) *Engine {
	e := &Engine{
		env:     env,
		gw:      gw,
		poll:    poll,
		palette: beans.Canonical,
	}

	e.routines = []routine{
		{name: "twinkle", run: e.twinkle},
		{name: "cascade", run: e.cascade},
		{name: "chase", run: e.chase},
	}

	return e
}

// Routines returns the names of the routines in the engine.
func (e *Engine) Routines() []string {
	n := make([]string, len(e.routines))
	for i, r := range e.routines {
		n[i] = r.name
	}
	return n
}

// State returns the lights as the engine believes them to be.
func (e *Engine) State() beans.State {
	return e.state
}

// the on time of a single step of a routine
func (e *Engine) step() time.Duration {
	return e.env.Prefs.AttractStep.Value()
}

// Run the animation until a button is pressed. Returns the pressed bean. All
// lights are off when Run() returns.
func (e *Engine) Run() (beans.Index, error) {
	logger.Log(e.env, "attract", "started")

	if err := e.clear(); err != nil {
		return 0, err
	}

	for {
		b, interrupted, err := e.pass()
		if err != nil {
			return 0, err
		}
		if interrupted {
			logger.Logf(e.env, "attract", "interrupted by %s", b)
			return b, nil
		}
	}
}

// Show plays the routines for a fixed number of passes. Returns true if the
// show was interrupted by a button press. All lights are off when Show()
// returns.
func (e *Engine) Show(passes int) (bool, error) {
	if err := e.clear(); err != nil {
		return false, err
	}

	for range passes {
		b, interrupted, err := e.pass()
		if err != nil {
			return false, err
		}
		if interrupted {
			logger.Logf(e.env, "attract", "show interrupted by %s", b)
			return true, nil
		}
	}

	return false, e.clear()
}

// pass plays every routine once in a random order. The lights are cleared if
// a routine is interrupted.
func (e *Engine) pass() (beans.Index, bool, error) {
	order := e.env.Random.Perm(len(e.routines))
	for _, i := range order {
		r := e.routines[i]
		logger.Logf(e.env, "attract", "playing %s", r.name)

		b, interrupted, err := r.run()
		if err != nil {
			return 0, false, err
		}
		if interrupted {
			return b, true, e.clear()
		}
	}
	return 0, false, nil
}

func (e *Engine) set(b beans.Index, on bool) error {
	c := beans.Off
	if on {
		c = e.palette.Colour(b)
	}
	if err := e.gw.SetLight(b, c); err != nil {
		return err
	}
	e.state.Set(b, on)
	return nil
}

func (e *Engine) clear() error {
	if err := e.gw.ClearAll(); err != nil {
		return err
	}
	e.state = beans.AllOff()
	return nil
}

// pick chooses a random bean from the list
func (e *Engine) pick(bs []beans.Index) beans.Index {
	return bs[e.env.Random.Intn(len(bs))]
}

// twinkle flashes random beans one at a time
func (e *Engine) twinkle() (beans.Index, bool, error) {
	n := e.env.Random.Range(10, 20)
	for range n {
		b := beans.Index(e.env.Random.Intn(beans.Count))
		if err := e.set(b, true); err != nil {
			return 0, false, err
		}
		if p, ok := e.poll.WaitUpTo(e.step()); ok {
			return p, true, nil
		}
		if err := e.set(b, false); err != nil {
			return 0, false, err
		}
	}
	return 0, false, e.clear()
}

// cascade turns on every bean one at a time in a random order and then turns
// them off in the same way
func (e *Engine) cascade() (beans.Index, bool, error) {
	n := e.env.Random.Range(2, 5)
	for range n {
		if err := e.clear(); err != nil {
			return 0, false, err
		}

		for unlit := e.state.Unlit(); len(unlit) > 0; unlit = e.state.Unlit() {
			if err := e.set(e.pick(unlit), true); err != nil {
				return 0, false, err
			}
			if p, ok := e.poll.WaitUpTo(e.step()); ok {
				return p, true, nil
			}
		}

		for lit := e.state.Lit(); len(lit) > 0; lit = e.state.Lit() {
			if err := e.set(e.pick(lit), false); err != nil {
				return 0, false, err
			}
			if p, ok := e.poll.WaitUpTo(e.step()); ok {
				return p, true, nil
			}
		}
	}
	return 0, false, nil
}

// the order of beans in one lap of the chase
var lap = []beans.Index{0, 1, 2, 3, 2, 1}

// chase runs a single light back and forth along the beans
func (e *Engine) chase() (beans.Index, bool, error) {
	step := e.step() * 3 / 10
	n := e.env.Random.Range(2, 5)
	for range n {
		for _, b := range lap {
			if err := e.set(b, true); err != nil {
				return 0, false, err
			}
			if p, ok := e.poll.WaitUpTo(step); ok {
				return p, true, nil
			}
			if err := e.set(b, false); err != nil {
				return 0, false, err
			}
		}
	}
	return 0, false, nil
}
