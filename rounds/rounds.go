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

// Package rounds implements the memory game itself. The board plays a
// sequence of beans and the player must repeat it. Every time the player
// repeats the sequence correctly it is extended by one bean and played
// again. The game ends when the player presses the wrong bean or does not
// press a bean in time.
//
// The game moves through three states. In the Say state the sequence is
// played back and button presses are ignored. In the Ask state the player's
// presses are compared with the sequence. The Lost state plays the game over
// cue and records the score.
package rounds

import (
	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/environment"
	"github.com/beanboard/beanboard/hardware"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/hiscore"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/modifiers"
	"github.com/beanboard/beanboard/pollclock"
)

// State of the game.
type State int

// List of valid State values.
const (
	Say State = iota
	Ask
	Lost
)

func (s State) String() string {
	switch s {
	case Say:
		return "say"
	case Ask:
		return "ask"
	case Lost:
		return "lost"
	}
	return "unknown state"
}

// Reason the game was lost.
type Reason int

// List of valid Reason values.
const (
	Timeout Reason = iota
	Wrong
)

func (r Reason) String() string {
	switch r {
	case Timeout:
		return "timeout"
	case Wrong:
		return "wrong"
	}
	return "unknown reason"
}

// Result of a game.
type Result struct {
	// name of the mode the score was recorded under
	Mode string

	Score  int
	Reason Reason

	// the number of rounds started, including the round that was lost
	Rounds int

	// the sequence as it was when the game was lost
	Sequence beans.Sequence
}

// Engine runs games until they are lost.
type Engine struct {
	env   *environment.Environment
	gw    *hardware.Gateway
	poll  *pollclock.PollClock
	store hiscore.Store

	state State
	seq   beans.Sequence
}

// NewEngine is the preferred method of initialisation for the Engine type. A
// nil store means scores are not recorded.
func NewEngine(env *environment.Environment, gw *hardware.Gateway, poll *pollclock.PollClock, store hiscore.Store) *Engine {
	return &Engine{
		env:   env,
		gw:    gw,
		poll:  poll,
		store: store,
	}
}

// State returns the current state of the game.
func (e *Engine) State() State {
	return e.state
}

// Sequence returns a copy of the current sequence.
func (e *Engine) Sequence() beans.Sequence {
	s := make(beans.Sequence, len(e.seq))
	copy(s, e.seq)
	return s
}

// Play a game with the modifiers. Play returns when the game is lost. An
// error is returned only if the lights could not be set.
//
// The timeout of the modifiers will be changed if the modifiers include a
// shrink rule.
func (e *Engine) Play(mods *modifiers.Modifiers) (Result, error) {
	e.seq = e.seq[:0]

	var rounds int

	for {
		rounds++

		e.state = Say
		if err := e.say(mods); err != nil {
			return Result{}, err
		}

		e.state = Ask
		won, reason, err := e.ask(mods)
		if err != nil {
			return Result{}, err
		}

		if !won {
			e.state = Lost
			return e.lost(mods, reason, rounds)
		}

		logger.Logf(e.env, "rounds", "round %d won", rounds)
		e.poll.Wait(e.env.Prefs.RoundPause.Value())
	}
}

// light the bean and play its clip. the light is left on
func (e *Engine) show(mods *modifiers.Modifiers, b beans.Index) (audio.Handle, error) {
	if err := e.gw.SetLight(b, mods.Palette.Colour(b)); err != nil {
		return audio.NoHandle, err
	}
	return e.gw.Play(mods.Bank.Clip(b)), nil
}

func (e *Engine) say(mods *modifiers.Modifiers) error {
	e.seq = append(e.seq, beans.Index(e.env.Random.Intn(beans.Count)))
	logger.Logf(e.env, "rounds", "say %s", e.seq)

	for _, b := range e.seq {
		h, err := e.show(mods, b)
		if err != nil {
			return err
		}
		e.poll.WaitWhilePlaying(h, false)
		if err := e.gw.SetLight(b, beans.Off); err != nil {
			return err
		}
		e.poll.Wait(e.env.Prefs.Beat.Value())
	}

	return nil
}

// returns true if the whole sequence was repeated. if the sequence was not
// repeated the reason is returned
func (e *Engine) ask(mods *modifiers.Modifiers) (bool, Reason, error) {
	deadline := e.poll.Now().Add(mods.Timeout)

	for cursor := 0; cursor < len(e.seq); {
		b, ok := e.poll.WaitUntil(deadline)
		if !ok {
			logger.Logf(e.env, "rounds", "timeout at %d of %d", cursor+1, len(e.seq))
			return false, Timeout, nil
		}

		if b != e.seq[cursor] {
			logger.Logf(e.env, "rounds", "wrong answer at %d of %d: %s instead of %s", cursor+1, len(e.seq), b, e.seq[cursor])
			return false, Wrong, nil
		}

		h, err := e.show(mods, b)
		if err != nil {
			return false, Timeout, err
		}
		e.poll.WaitForRelease(b)

		// a press while the clip is playing cuts the clip short. the press
		// is still held and is seen by the next call to WaitUntil()
		e.poll.WaitWhilePlaying(h, true)

		if err := e.gw.SetLight(b, beans.Off); err != nil {
			return false, Timeout, err
		}

		cursor++
		mods.Correct()
		deadline = e.poll.Now().Add(mods.Timeout)
	}

	return true, Timeout, nil
}

func (e *Engine) lost(mods *modifiers.Modifiers, reason Reason, rounds int) (Result, error) {
	res := Result{
		Mode:     mods.ModeName(),
		Score:    len(e.seq) - 1,
		Reason:   reason,
		Rounds:   rounds,
		Sequence: e.Sequence(),
	}

	logger.Logf(e.env, "rounds", "lost (%s) with score %d", res.Reason, res.Score)

	// the game over cue is the same whatever the palette
	if err := e.gw.SetAll(beans.Red); err != nil {
		return res, err
	}
	h := e.gw.Play(audio.GameOver)
	e.poll.WaitWhilePlaying(h, false)
	if err := e.gw.ClearAll(); err != nil {
		return res, err
	}

	if e.store != nil {
		r, err := e.store.Record(res.Mode, res.Score)
		if err != nil {
			logger.Log(e.env, "rounds", err)
		} else {
			logger.Logf(e.env, "rounds", "%d games played, high score %d", r.TotalGames, r.HighScore)
		}
	}

	e.seq = e.seq[:0]

	return res, nil
}
