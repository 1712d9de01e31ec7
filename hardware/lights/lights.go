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

// Package lights drives the light strip controller. The controller accepts
// one command per line:
//
//	ON <bean> <R> <G> <B>
//
// Beans are numbered from one. Bean zero addresses every bean at once. No
// reply is sent by the controller.
package lights

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/term"

	"github.com/beanboard/beanboard/beans"
)

// AllBeans is the bean number that addresses every bean.
const AllBeans = 0

// Command returns the protocol line for the bean number and colour.
func Command(bean int, c beans.Colour) string {
	return fmt.Sprintf("ON %d %s\n", bean, c)
}

// Strip writes commands to an io.Writer.
type Strip struct {
	crit sync.Mutex
	w    io.Writer
}

// NewStrip is the preferred method of initialisation for the Strip type.
func NewStrip(w io.Writer) *Strip {
	return &Strip{w: w}
}

func (s *Strip) write(cmd string) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	_, err := io.WriteString(s.w, cmd)
	return err
}

// SetLight implements the hardware.Lights interface.
func (s *Strip) SetLight(b beans.Index, c beans.Colour) error {
	beans.MustValid(b)
	return s.write(Command(int(b)+1, c))
}

// SetAll implements the hardware.Lights interface.
func (s *Strip) SetAll(c beans.Colour) error {
	return s.write(Command(AllBeans, c))
}

// Serial is a Strip connected to a serial device.
type Serial struct {
	*Strip
	port *term.Term
}

// OpenSerial opens the serial device in raw mode at the baud rate.
func OpenSerial(name string, baud int) (*Serial, error) {
	port, err := term.Open(name, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("serial: %w", err)
	}
	return &Serial{
		Strip: NewStrip(port),
		port:  port,
	}, nil
}

// Close the serial device.
func (s *Serial) Close() error {
	return s.port.Close()
}
