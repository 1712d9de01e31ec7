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

	"github.com/beanboard/beanboard/beans"
)

// Command records a single call to the lights. A Bean value of -1 means all
// beans.
type Command struct {
	Bean   beans.Index
	Colour beans.Colour
}

// All is the value of Command.Bean when the command was for every bean.
const All beans.Index = -1

func (c Command) String() string {
	if c.Bean == All {
		return fmt.Sprintf("all %s", c.Colour)
	}
	return fmt.Sprintf("%d %s", c.Bean, c.Colour)
}

// Lights is a recording implementation of the hardware.Lights interface.
type Lights struct {
	State    [beans.Count]beans.Colour
	Commands []Command

	// if Fail is not nil then it is returned by every call and the state is
	// not changed
	Fail error
}

// NewLights is the preferred method of initialisation for the Lights type.
func NewLights() *Lights {
	return &Lights{}
}

// SetLight implements the hardware.Lights interface.
func (l *Lights) SetLight(b beans.Index, c beans.Colour) error {
	if l.Fail != nil {
		return l.Fail
	}
	l.State[b] = c
	l.Commands = append(l.Commands, Command{Bean: b, Colour: c})
	return nil
}

// SetAll implements the hardware.Lights interface.
func (l *Lights) SetAll(c beans.Colour) error {
	if l.Fail != nil {
		return l.Fail
	}
	for i := range l.State {
		l.State[i] = c
	}
	l.Commands = append(l.Commands, Command{Bean: All, Colour: c})
	return nil
}

// AllOff returns true if every light is off.
func (l *Lights) AllOff() bool {
	for _, c := range l.State {
		if c != beans.Off {
			return false
		}
	}
	return true
}

// Reset forgets the recorded commands. The state of the lights is not
// changed.
func (l *Lights) Reset() {
	l.Commands = l.Commands[:0]
}
