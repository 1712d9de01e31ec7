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

// Package wavwriter records the clips played during a game to a WAV file.
// Note that audio data is buffered in memory in its entirity, and written to
// disk when the game ends. It is therefore probably only suitable for testing
// purposes.
//
// Clips are recorded in full and in the order they are started, even if they
// were stopped early. Silence between clips is not recorded.
package wavwriter

import (
	"os"
	"sync"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/beanboard/beanboard/curated"
	"github.com/beanboard/beanboard/hardware"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/logger"
)

// SampleRate of the recording.
const SampleRate = 22050

// WavWriter implements the hardware.Audio interface. Clips are passed to
// another hardware.Audio implementation to be played.
type WavWriter struct {
	log      logger.Permission
	filename string
	lib      *audio.Library
	aud      hardware.Audio

	crit   sync.Mutex
	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(log logger.Permission, filename string, lib *audio.Library, aud hardware.Audio) *WavWriter {
	return &WavWriter{
		log:      log,
		filename: filename,
		lib:      lib,
		aud:      aud,
	}
}

// Play implements the hardware.Audio interface.
func (aw *WavWriter) Play(id audio.ClipID) (audio.Handle, error) {
	h, err := aw.aud.Play(id)
	if err != nil {
		return h, err
	}

	if c, ok := aw.lib.Clip(id); ok {
		aw.crit.Lock()
		for _, v := range c.Resampled(SampleRate) {
			aw.buffer = append(aw.buffer, int(v*32767))
		}
		aw.crit.Unlock()
	}

	return h, nil
}

// IsPlaying implements the hardware.Audio interface.
func (aw *WavWriter) IsPlaying(h audio.Handle) bool {
	return aw.aud.IsPlaying(h)
}

// Stop implements the hardware.Audio interface.
func (aw *WavWriter) Stop(h audio.Handle) {
	aw.aud.Stop(h)
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer)
}

// EndMixing writes the recording to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, 16, 1, 1)

	logger.Logf(aw.log, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	})
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
