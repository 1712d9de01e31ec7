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
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames in the SDL device buffer. the precise value is
// not critical
const sdlBufferLength = 1024

// SDL plays clips by queuing them on an SDL audio device.
type SDL struct {
	lib    *Library
	volume float64

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	crit    sync.Mutex
	current Handle
	next    Handle
	closed  bool

	// clip data converted to the format of the device
	cache map[ClipID][]byte
}

// NewSDL is the preferred method of initialisation for the SDL type. Volume
// is in the range 0.0 to 1.0.
func NewSDL(lib *Library, freq int, volume float64) (*SDL, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("audio: sdl: %w", err)
	}

	aud := &SDL{
		lib:    lib,
		volume: clampVolume(volume),
		cache:  make(map[ClipID][]byte),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(freq),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  sdlBufferLength,
	}

	var err error

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, fmt.Errorf("audio: sdl: %w", err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

func (aud *SDL) data(c *Clip) []byte {
	if d, ok := aud.cache[c.ID]; ok {
		return d
	}

	samples := c.Render(int(aud.spec.Freq), aud.volume)
	d := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := int16(math.Max(-1, math.Min(1, float64(s))) * math.MaxInt16)
		binary.LittleEndian.PutUint16(d[i*2:], uint16(v))
	}
	aud.cache[c.ID] = d

	return d
}

// Play implements the hardware.Audio interface.
func (aud *SDL) Play(id ClipID) (Handle, error) {
	c, ok := aud.lib.Clip(id)
	if !ok {
		return NoHandle, fmt.Errorf(MissingClip, id)
	}

	aud.crit.Lock()
	defer aud.crit.Unlock()

	sdl.ClearQueuedAudio(aud.id)
	if err := sdl.QueueAudio(aud.id, aud.data(c)); err != nil {
		aud.current = NoHandle
		return NoHandle, fmt.Errorf("audio: sdl: %w", err)
	}

	aud.next++
	aud.current = aud.next

	return aud.current, nil
}

// IsPlaying implements the hardware.Audio interface.
func (aud *SDL) IsPlaying(h Handle) bool {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	return h != NoHandle && h == aud.current && sdl.GetQueuedAudioSize(aud.id) > 0
}

// Stop implements the hardware.Audio interface.
func (aud *SDL) Stop(h Handle) {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	if h != NoHandle && h == aud.current {
		sdl.ClearQueuedAudio(aud.id)
		aud.current = NoHandle
	}
}

// Close the audio device. Calling Close() more than once is safe.
func (aud *SDL) Close() error {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	if aud.closed {
		return nil
	}
	aud.closed = true
	aud.current = NoHandle
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
