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
	"sync"
	"time"
)

// Clock is the source of time for the Silent player.
type Clock interface {
	Now() time.Time
}

// Silent pretends to play clips. A clip is playing for as long as it would
// have taken to play it on a real device. Used when audio is muted.
type Silent struct {
	lib *Library
	clk Clock

	crit    sync.Mutex
	current Handle
	next    Handle
	end     time.Time
}

// NewSilent is the preferred method of initialisation for the Silent type.
func NewSilent(lib *Library, clk Clock) *Silent {
	return &Silent{
		lib: lib,
		clk: clk,
	}
}

// Play implements the hardware.Audio interface.
func (aud *Silent) Play(id ClipID) (Handle, error) {
	c, ok := aud.lib.Clip(id)
	if !ok {
		return NoHandle, fmt.Errorf(MissingClip, id)
	}

	aud.crit.Lock()
	defer aud.crit.Unlock()

	aud.next++
	aud.current = aud.next
	aud.end = aud.clk.Now().Add(c.Duration())

	return aud.current, nil
}

// IsPlaying implements the hardware.Audio interface.
func (aud *Silent) IsPlaying(h Handle) bool {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	return h != NoHandle && h == aud.current && aud.clk.Now().Before(aud.end)
}

// Stop implements the hardware.Audio interface.
func (aud *Silent) Stop(h Handle) {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	if h == aud.current {
		aud.current = NoHandle
	}
}

// Close implements the io.Closer interface.
func (aud *Silent) Close() error {
	return nil
}
