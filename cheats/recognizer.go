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

// Package cheats captures and recognises the secret button sequences that
// unlock cheat modes.
//
// The sequence is captured in a short window after the attract animation
// ends. The press that ended the attract animation is still held when the
// window opens and is not part of the sequence.
package cheats

import (
	"time"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/environment"
	"github.com/beanboard/beanboard/hardware"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/modifiers"
	"github.com/beanboard/beanboard/pollclock"
)

// the celebration flashes
const (
	celebrationFlashes = 3
	celebrationStep    = 120 * time.Millisecond
)

// Recognizer captures sequences and resolves them against a Registry.
type Recognizer struct {
	env      *environment.Environment
	gw       *hardware.Gateway
	poll     *pollclock.PollClock
	registry *Registry
}

// NewRecognizer is the preferred method of initialisation for the Recognizer
// type.
func NewRecognizer(env *environment.Environment, gw *hardware.Gateway, poll *pollclock.PollClock, registry *Registry) *Recognizer {
	return &Recognizer{
		env:      env,
		gw:       gw,
		poll:     poll,
		registry: registry,
	}
}

// Registry returns the registry used by the recognizer.
func (r *Recognizer) Registry() *Registry {
	return r.registry
}

// Capture the sequence of presses made while the capture window is open. All
// beans are lit while the window is open and cleared when it closes. The first
// press is discarded. Each press is counted once, when it starts, and the
// next press is not looked for until the button has been released.
func (r *Recognizer) Capture() (beans.Sequence, error) {
	if err := r.gw.SetPalette(beans.Canonical); err != nil {
		return nil, err
	}

	deadline := r.poll.Now().Add(r.env.Prefs.CheatWindow.Value())
	logger.Logf(r.env, "cheats", "capture window open for %s", r.env.Prefs.CheatWindow.Value())

	seq := beans.Sequence{}
	first := true

	for {
		b, ok := r.poll.WaitUntil(deadline)
		if !ok {
			break
		}
		if first {
			first = false
		} else {
			seq = append(seq, b)
		}
		r.poll.WaitForRelease(b)
	}

	logger.Logf(r.env, "cheats", "captured %s", seq)

	if err := r.gw.ClearAll(); err != nil {
		return nil, err
	}

	return seq, nil
}

// Resolve the sequence to a mode name. Returns false if the sequence is not
// the password for any mode.
func (r *Recognizer) Resolve(seq beans.Sequence) (string, bool) {
	mode, ok := r.registry.Resolve(seq)
	if ok {
		logger.Logf(r.env, "cheats", "%s unlocked", mode)
	}
	return mode, ok
}

// Celebrate the unlocking of a mode by flashing the lights and playing the
// chime. The lights flash in the palette of the modifiers. Buttons are
// ignored and Celebrate() returns once the chime has finished.
func (r *Recognizer) Celebrate(mods *modifiers.Modifiers) error {
	h := r.gw.Play(audio.Chime)

	for range celebrationFlashes {
		if err := r.gw.SetPalette(mods.Palette); err != nil {
			return err
		}
		r.poll.Wait(celebrationStep)
		if err := r.gw.ClearAll(); err != nil {
			return err
		}
		r.poll.Wait(celebrationStep)
	}

	r.poll.WaitWhilePlaying(h, false)

	return nil
}
