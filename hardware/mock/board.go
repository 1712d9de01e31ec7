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
	"github.com/beanboard/beanboard/hardware"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/pollclock"
)

// Board collects together a complete set of mock hardware.
type Board struct {
	Clock   *Clock
	Lights  *Lights
	Buttons *Buttons
	Audio   *Audio

	Gateway *hardware.Gateway
	Poll    *pollclock.PollClock
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard() *Board {
	clk := NewClock()
	brd := &Board{
		Clock:   clk,
		Lights:  NewLights(),
		Buttons: NewButtons(clk),
		Audio:   NewAudio(clk),
	}
	brd.Gateway = hardware.NewGateway(logger.Allow, brd.Lights, brd.Buttons, brd.Audio)
	brd.Poll = pollclock.NewPollClock(clk, brd.Gateway, brd.Gateway)
	return brd
}
