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

package hardware

import (
	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/curated"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/logger"
)

// Lights sets the colour of the lights. A colour of beans.Off turns a light
// off.
type Lights interface {
	SetLight(b beans.Index, c beans.Colour) error
	SetAll(c beans.Colour) error
}

// Buttons reports whether a button is currently pressed.
type Buttons interface {
	IsPressed(b beans.Index) bool
}

// Audio plays clips. Starting a new clip may stop any clip that is already
// playing.
type Audio interface {
	Play(id audio.ClipID) (audio.Handle, error)
	IsPlaying(h audio.Handle) bool
	Stop(h audio.Handle)
}

// TransportFault is the pattern for errors returned by the lights.
const TransportFault = "lights: %v"

// Gateway to the hardware of the board.
type Gateway struct {
	log     logger.Permission
	lights  Lights
	buttons Buttons
	audio   Audio
}

// NewGateway is the preferred method of initialisation for the Gateway type.
func NewGateway(log logger.Permission, lights Lights, buttons Buttons, aud Audio) *Gateway {
	return &Gateway{
		log:     log,
		lights:  lights,
		buttons: buttons,
		audio:   aud,
	}
}

// SetLight sets a single bean to the colour. Panics if the index is invalid.
func (g *Gateway) SetLight(b beans.Index, c beans.Colour) error {
	beans.MustValid(b)
	if err := g.lights.SetLight(b, c); err != nil {
		return curated.Errorf(TransportFault, err)
	}
	return nil
}

// SetAll sets every bean to the same colour.
func (g *Gateway) SetAll(c beans.Colour) error {
	if err := g.lights.SetAll(c); err != nil {
		return curated.Errorf(TransportFault, err)
	}
	return nil
}

// SetPalette sets every bean to its colour in the palette.
func (g *Gateway) SetPalette(p beans.Palette) error {
	for _, b := range beans.All() {
		if err := g.SetLight(b, p[b]); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll turns off every light.
func (g *Gateway) ClearAll() error {
	return g.SetAll(beans.Off)
}

// IsPressed returns true if the bean's button is pressed. Panics if the index
// is invalid.
func (g *Gateway) IsPressed(b beans.Index) bool {
	beans.MustValid(b)
	return g.buttons.IsPressed(b)
}

// Play starts the clip. If the clip can't be played the error is logged and
// audio.NoHandle is returned. NoHandle is never playing.
func (g *Gateway) Play(id audio.ClipID) audio.Handle {
	h, err := g.audio.Play(id)
	if err != nil {
		logger.Log(g.log, "audio", err)
		return audio.NoHandle
	}
	return h
}

// IsPlaying returns true if the clip started with the handle is still
// playing.
func (g *Gateway) IsPlaying(h audio.Handle) bool {
	if h == audio.NoHandle {
		return false
	}
	return g.audio.IsPlaying(h)
}

// Stop the clip started with the handle.
func (g *Gateway) Stop(h audio.Handle) {
	if h == audio.NoHandle {
		return
	}
	g.audio.Stop(h)
}
