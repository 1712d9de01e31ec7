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
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// ClipID identifies a clip in the Library.
type ClipID string

// Handle identifies a single playback of a clip. Handles are never reused.
type Handle int

// NoHandle is returned when a clip could not be played. It is never playing.
const NoHandle Handle = 0

// Clip is a decoded sound clip. Data is mono, normalised to the range -1.0 to
// 1.0. Stereo sources are reduced to their left channel.
type Clip struct {
	ID         ClipID
	SampleRate int
	Data       []float32
}

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(c.Data)) * time.Second / time.Duration(c.SampleRate)
}

func (c *Clip) String() string {
	return fmt.Sprintf("%s (%dHz, %.2fs)", c.ID, c.SampleRate, c.Duration().Seconds())
}

// Decode a clip from a WAV or MP3 stream. The type of data is decided by the
// extension of the name.
func Decode(id ClipID, r io.ReadSeeker) (*Clip, error) {
	switch strings.ToLower(filepath.Ext(string(id))) {
	case ".wav":
		return decodeWAV(id, r)
	case ".mp3":
		return decodeMP3(id, r)
	}
	return nil, fmt.Errorf("audio: unsupported clip type: %s", id)
}

func decodeWAV(id ClipID, r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, fmt.Errorf("audio: wav: not a valid wav file: %s", id)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans == 0 {
		return nil, fmt.Errorf("audio: wav: no channels: %s", id)
	}

	// integer samples are scaled by the bit depth of the file
	scale := float32(int64(1) << (dec.BitDepth - 1))

	c := &Clip{
		ID:         id,
		SampleRate: int(dec.SampleRate),
		Data:       make([]float32, 0, len(buf.Data)/chans),
	}
	for i := 0; i < len(buf.Data); i += chans {
		c.Data = append(c.Data, float32(buf.Data[i])/scale)
	}

	return c, nil
}

func decodeMP3(id ClipID, r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audio: mp3: %w", err)
	}

	c := &Clip{
		ID:         id,
		SampleRate: dec.SampleRate(),
	}

	// the decoded stream is always 16bit little endian with two channels. we
	// only want the left channel
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(binary.LittleEndian.Uint16(chunk[i:]))
			c.Data = append(c.Data, float32(v)/32768)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("audio: mp3: %w", err)
		}
	}

	return c, nil
}
