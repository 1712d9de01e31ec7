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
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Beep plays clips through the beep speaker.
type Beep struct {
	lib    *Library
	rate   beep.SampleRate
	volume float64

	crit    sync.Mutex
	current *beepPlayback
	next    Handle
}

type beepPlayback struct {
	handle Handle

	// set by the speaker goroutine when the clip has finished
	done atomic.Bool
}

// NewBeep is the preferred method of initialisation for the Beep type. Volume
// is in the range 0.0 to 1.0.
func NewBeep(lib *Library, freq int, volume float64) (*Beep, error) {
	aud := &Beep{
		lib:    lib,
		rate:   beep.SampleRate(freq),
		volume: clampVolume(volume),
	}

	if err := speaker.Init(aud.rate, aud.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: beep: %w", err)
	}

	return aud, nil
}

// Play implements the hardware.Audio interface.
func (aud *Beep) Play(id ClipID) (Handle, error) {
	c, ok := aud.lib.Clip(id)
	if !ok {
		return NoHandle, fmt.Errorf(MissingClip, id)
	}

	aud.crit.Lock()
	defer aud.crit.Unlock()

	aud.stop()

	s := c.Streamer()
	if sr := beep.SampleRate(c.SampleRate); sr != aud.rate {
		s = beep.Resample(resampleQuality, sr, aud.rate, s)
	}
	s = withVolume(s, aud.volume)

	aud.next++
	p := &beepPlayback{handle: aud.next}
	aud.current = p

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		p.done.Store(true)
	})))

	return p.handle, nil
}

// IsPlaying implements the hardware.Audio interface.
func (aud *Beep) IsPlaying(h Handle) bool {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	return aud.current != nil && aud.current.handle == h && !aud.current.done.Load()
}

// Stop implements the hardware.Audio interface.
func (aud *Beep) Stop(h Handle) {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	if aud.current != nil && aud.current.handle == h {
		aud.stop()
	}
}

// stop the current playback. the critical section must be held
func (aud *Beep) stop() {
	if aud.current == nil {
		return
	}
	speaker.Clear()
	aud.current.done.Store(true)
	aud.current = nil
}

// Close the speaker.
func (aud *Beep) Close() error {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.stop()
	return nil
}
