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

package mock

import (
	"fmt"
	"time"

	"github.com/beanboard/beanboard/hardware/audio"
)

// DefaultClipDuration is the duration of every clip unless otherwise
// specified.
const DefaultClipDuration = 100 * time.Millisecond

// Audio is an implementation of the hardware.Audio interface. Clips play for
// a fixed duration measured with the Clock.
type Audio struct {
	clk *Clock

	// duration of individual clips. clips not in the map play for
	// DefaultClipDuration
	Durations map[audio.ClipID]time.Duration

	// clips that return an error when played
	Missing map[audio.ClipID]bool

	// every clip that has been played, in order
	Played []audio.ClipID

	// number of times a clip was stopped before it had finished
	Stopped int

	current audio.Handle
	next    audio.Handle
	end     time.Time
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(clk *Clock) *Audio {
	return &Audio{
		clk:       clk,
		Durations: make(map[audio.ClipID]time.Duration),
		Missing:   make(map[audio.ClipID]bool),
	}
}

// Play implements the hardware.Audio interface.
func (aud *Audio) Play(id audio.ClipID) (audio.Handle, error) {
	if aud.Missing[id] {
		return audio.NoHandle, fmt.Errorf(audio.MissingClip, id)
	}

	d, ok := aud.Durations[id]
	if !ok {
		d = DefaultClipDuration
	}

	aud.Played = append(aud.Played, id)
	aud.next++
	aud.current = aud.next
	aud.end = aud.clk.Now().Add(d)

	return aud.current, nil
}

// IsPlaying implements the hardware.Audio interface.
func (aud *Audio) IsPlaying(h audio.Handle) bool {
	return h != audio.NoHandle && h == aud.current && aud.clk.Now().Before(aud.end)
}

// Stop implements the hardware.Audio interface.
func (aud *Audio) Stop(h audio.Handle) {
	if aud.IsPlaying(h) {
		aud.Stopped++
	}
	if h == aud.current {
		aud.current = audio.NoHandle
	}
}
