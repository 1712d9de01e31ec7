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

// Package modifiers holds the rules of a game that can be changed by a cheat
// mode. The Modifiers are reset to the defaults at the start of every cycle
// of the session and are changed only by Apply().
package modifiers

import (
	"fmt"
	"io"
	"time"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/environment"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/sideshow"
)

// List of cheat modes.
const (
	PrintALine = "print_a_line"
	DogMode    = "dog_mode"
	Speedrun   = "speedrun"
	PartyMode  = "party_mode"
	RedAlert   = "red_alert"
)

// NoMode is the name used for scores recorded without a cheat mode.
const NoMode = "none"

// announcements printed when a mode is applied
var announcements = map[string]string{
	PrintALine: "CHEAT MODE UNLOCKED: PRINT A LINE! YOU'RE SUCH A HACKER!!",
	DogMode:    "DOG MODE UNLOCKED!! DOGS ROOL CATS DROOL!",
	Speedrun:   "SPEEDRUN MODE UNLOCKED! GOTTA GO FAST!",
	PartyMode:  "PARTY MODE UNLOCKED! LIGHTS, CAMERA, BEANS!",
	RedAlert:   "RED ALERT! ALL BEANS TO BATTLE STATIONS!",
}

// Known returns true if the mode has modifiers.
func Known(mode string) bool {
	_, ok := announcements[mode]
	return ok
}

// Shrink describes how the timeout is reduced after every correct input.
type Shrink struct {
	Decrement time.Duration
	Floor     time.Duration
}

// Modifiers for a single game.
type Modifiers struct {
	env   *environment.Environment
	banks audio.Banks

	// announcements are written to Out. if Out is nil announcements are
	// only logged
	Out io.Writer

	// the name of the applied mode. empty if no mode has been applied
	Mode string

	// time allowed for each input
	Timeout time.Duration

	// if Shrink is nil the timeout never changes
	Shrink *Shrink

	Bank    audio.Bank
	Palette beans.Palette

	video *sideshow.Process
	timer *sideshow.Process
}

// NewModifiers is the preferred method of initialisation for the Modifiers
// type. The returned value is reset to the defaults.
func NewModifiers(env *environment.Environment, banks audio.Banks) *Modifiers {
	m := &Modifiers{
		env:   env,
		banks: banks,
		video: sideshow.NewProcess(env, "video", env.Prefs.VideoCommand.String()),
		timer: sideshow.NewProcess(env, "timer", env.Prefs.TimerCommand.String()),
	}
	_ = m.Reset()
	return m
}

// Reset the modifiers to their defaults. Any side show process is stopped,
// whether or not a mode had been applied.
func (m *Modifiers) Reset() error {
	var err error
	for _, p := range m.Processes() {
		if e := p.Stop(); e != nil {
			logger.Log(m.env, "modifiers", e)
			if err == nil {
				err = e
			}
		}
	}

	m.Mode = ""
	m.Timeout = m.env.Prefs.Timeout.Value()
	m.Shrink = nil
	m.Bank = m.banks.Normal
	m.Palette = beans.Canonical

	return err
}

// Processes returns the side show processes.
func (m *Modifiers) Processes() []*sideshow.Process {
	return []*sideshow.Process{m.video, m.timer}
}

// ModeName returns the name of the applied mode or NoMode.
func (m *Modifiers) ModeName() string {
	if m.Mode == "" {
		return NoMode
	}
	return m.Mode
}

// Apply the modifiers for a mode. Modes that are not known are accepted but
// change nothing. A side show that fails to start is logged but is not an
// error.
func (m *Modifiers) Apply(mode string) {
	m.Mode = mode

	if a, ok := announcements[mode]; ok {
		logger.Log(m.env, "modifiers", a)
		if m.Out != nil {
			fmt.Fprintln(m.Out, a)
		}
	} else {
		logger.Logf(m.env, "modifiers", "%s has no modifiers", mode)
	}

	switch mode {
	case DogMode:
		m.Bank = m.banks.Dog
	case Speedrun:
		m.Timeout = m.env.Prefs.SpeedrunTimeout.Value()
		m.Shrink = &Shrink{
			Decrement: m.env.Prefs.SpeedrunDecrement.Value(),
			Floor:     m.env.Prefs.SpeedrunFloor.Value(),
		}
		m.start(m.timer)
	case PartyMode:
		m.start(m.video)
	case RedAlert:
		m.Palette = beans.Mono(beans.Red)
	}
}

func (m *Modifiers) start(p *sideshow.Process) {
	if err := p.Start(); err != nil {
		logger.Log(m.env, "modifiers", err)
	}
}

// Correct is called after every correct input. The timeout is reduced if the
// modifiers have a shrink rule. A timeout already at or below the floor of the
// rule is left alone.
func (m *Modifiers) Correct() {
	if m.Shrink == nil || m.Timeout <= m.Shrink.Floor {
		return
	}
	m.Timeout -= m.Shrink.Decrement
	if m.Timeout < m.Shrink.Floor {
		m.Timeout = m.Shrink.Floor
	}
}

// Close stops all side show processes.
func (m *Modifiers) Close() error {
	return m.Reset()
}
