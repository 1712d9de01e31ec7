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
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// quality of the beep resampler. see beep.Resample()
const resampleQuality = 4

// clipStreamer streams mono clip data as stereo.
type clipStreamer struct {
	data []float32
	pos  int
}

func (s *clipStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	n := 0
	for n < len(samples) && s.pos < len(s.data) {
		v := float64(s.data[s.pos])
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *clipStreamer) Err() error {
	return nil
}

// Streamer returns a beep.Streamer of the clip data at the sample rate of the
// clip.
func (c *Clip) Streamer() beep.Streamer {
	return &clipStreamer{data: c.Data}
}

// Resampled returns the clip data at a different sample rate. The original
// data is returned if the rates are the same.
func (c *Clip) Resampled(rate int) []float32 {
	return c.Render(rate, 1.0)
}

// Render returns the clip data at a sample rate and volume. The original data
// is returned if neither needs to change.
func (c *Clip) Render(rate int, volume float64) []float32 {
	volume = clampVolume(volume)
	resample := rate > 0 && c.SampleRate > 0 && rate != c.SampleRate
	if len(c.Data) == 0 || (!resample && volume == 1.0) {
		return c.Data
	}

	s := c.Streamer()
	n := len(c.Data)
	if resample {
		s = beep.Resample(resampleQuality, beep.SampleRate(c.SampleRate), beep.SampleRate(rate), s)
		n = int(int64(n) * int64(rate) / int64(c.SampleRate))
	}
	s = withVolume(s, volume)

	out := make([]float32, 0, n+1)
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, v := range buf[:k] {
			out = append(out, float32(v[0]))
		}
		if !ok {
			break
		}
	}

	return out
}

// limit volume to the range 0.0 to 1.0
func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 1.0
	}
	return math.Max(0, math.Min(1, v))
}

// adjust the volume of a streamer. volume should be in the range 0.0 to 1.0
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume >= 1.0 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(volume),
		Silent:   volume <= 0,
	}
}
