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

package audio

import (
	"fmt"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/curated"
)

// Bank assigns a clip to each bean.
type Bank [beans.Count]ClipID

// Clip returns the clip for the bean. Panics if the index is invalid.
func (b Bank) Clip(bean beans.Index) ClipID {
	beans.MustValid(bean)
	return b[bean]
}

// List of clips with a fixed purpose.
const (
	// played, uninterrupted, when a game is lost
	GameOver ClipID = "buzzer_3.wav"

	// played when a cheat mode has been unlocked. the chime is synthesised
	Chime ClipID = "chime"
)

// the directory containing the clips for the normal bank. the first four
// clips, in name order, are used
const normalDir = "sounds"

// Dog is the bank of clips used by the dog_mode cheat.
var Dog = Bank{
	"espeak_sounds/normal/espeak_woof_p0_a200.wav",
	"espeak_sounds/normal/espeak_woof_p50_a200.wav",
	"espeak_sounds/normal/espeak_woof_p75_a200.wav",
	"espeak_sounds/normal/espeak_woof_p100_a200.wav",
}

// Banks contains all the banks of clips available to the game.
type Banks struct {
	Normal Bank
	Dog    Bank
}

// LoadBanks loads every clip used by the game into the library, including the
// synthesised chime. An error is returned if any clip is missing.
func LoadBanks(lib *Library) (Banks, error) {
	var b Banks

	ids, err := lib.List(normalDir)
	if err != nil {
		return b, curated.Errorf(MissingClip, normalDir)
	}
	if len(ids) < beans.Count {
		return b, curated.Errorf(MissingClip, fmt.Sprintf("%s: %d of %d clips present", normalDir, len(ids), beans.Count))
	}
	copy(b.Normal[:], ids)
	b.Dog = Dog

	if err := lib.Require(b.Normal[:]...); err != nil {
		return b, err
	}
	if err := lib.Require(b.Dog[:]...); err != nil {
		return b, err
	}
	if err := lib.Require(GameOver); err != nil {
		return b, err
	}

	c, err := Synthesise(Chime, ChimeFrequency, ChimeDuration)
	if err != nil {
		return b, err
	}
	lib.Add(c)

	return b, nil
}
