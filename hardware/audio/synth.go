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
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// the sample rate of synthesised clips
const synthRate = beep.SampleRate(44100)

// the chime is a short tone
const (
	ChimeFrequency = 880.0
	ChimeDuration  = 400 * time.Millisecond
)

// Synthesise creates a sine tone clip of the frequency and duration. The tone
// fades out over its final quarter to avoid a click.
func Synthesise(id ClipID, freq float64, dur time.Duration) (*Clip, error) {
	tone, err := generators.SineTone(synthRate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: synthesise: %w", err)
	}

	n := synthRate.N(dur)
	stream := beep.Take(n, tone)

	c := &Clip{
		ID:         id,
		SampleRate: int(synthRate),
		Data:       make([]float32, 0, n),
	}

	buf := make([][2]float64, 512)
	for {
		m, ok := stream.Stream(buf)
		for _, s := range buf[:m] {
			c.Data = append(c.Data, float32(s[0]))
		}
		if !ok {
			break
		}
	}

	fade := len(c.Data) / 4
	for i := 0; i < fade; i++ {
		c.Data[len(c.Data)-1-i] *= float32(i) / float32(fade)
	}

	// volume reduced to half
	for i := range c.Data {
		c.Data[i] *= 0.5
	}

	return c, nil
}
