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

// Package environment bundles the context shared by every part of a running
// game: the random number source, the preferences and a label that
// identifies the instance in log output.
package environment

import (
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/preferences"
	"github.com/beanboard/beanboard/random"
)

// Label is used to name the environment.
type Label string

// MainGame is the label of the environment driving the real board.
const MainGame Label = ""

// Environment is used to provide context for a game. Particularly useful
// when running the game against simulated hardware in tests alongside the
// real thing.
type Environment struct {
	Label Label

	// all randomisation required by the game should be retreived through
	// this structure
	Random *random.Random

	// the game preferences
	Prefs *preferences.Preferences

	// logging can be silenced for an environment. by default all
	// environments log
	Quiet bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// A nil prefs argument will cause a new Preferences instance to be created
// from the default preferences file. A seed of zero means the random source
// is seeded from the time.
func NewEnvironment(label Label, seed int64, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(seed),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// tests where the initial state must be the same for every run.
func (env *Environment) Normalise(seed int64) {
	env.Random.Reseed(seed)
	env.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return !env.Quiet
}

// IsMainGame returns true if the environment is driving the real board.
func (env *Environment) IsMainGame() bool {
	return env.Label == MainGame
}

var _ logger.Permission = (*Environment)(nil)
