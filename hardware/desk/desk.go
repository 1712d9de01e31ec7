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

// Package desk simulates the board in a terminal. The lights are drawn as
// coloured blocks and the buttons are operated with the keyboard: keys 1 to 4
// or a, s, d and f.
//
// Terminals report key presses but not key releases, so a button is
// considered pressed for a short time after its key was last seen. Holding a
// key down relies on the keyboard's auto-repeat to keep the button pressed.
//
// The Desk accepts the light strip protocol through its Write() function, so
// the same lights.Strip used with the real board can drive the simulation.
package desk

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/beanboard/beanboard/beans"
)

// DefaultHold is the time a button is pressed for after a key event.
const DefaultHold = 150 * time.Millisecond

// keys for each bean. there is more than one key for each bean
var keys = map[rune]beans.Index{
	'1': 0, '2': 1, '3': 2, '4': 3,
	'a': 0, 's': 1, 'd': 2, 'f': 3,
}

// Desk is a terminal simulation of the board. It implements the
// hardware.Buttons interface and the io.Writer interface.
type Desk struct {
	scr  tcell.Screen
	hold time.Duration

	// the source of time. time.Now() unless replaced for testing
	now func() time.Time

	crit    sync.Mutex
	colours [beans.Count]beans.Colour
	pressed [beans.Count]time.Time
	line    []byte
	status  string

	quit     chan struct{}
	quitOnce sync.Once
}

// NewDesk is the preferred method of initialisation for the Desk type. The
// screen must have been initialised.
func NewDesk(scr tcell.Screen, hold time.Duration) *Desk {
	return &Desk{
		scr:  scr,
		hold: hold,
		now:  time.Now,
		quit: make(chan struct{}),
	}
}

// Open a new Desk on the terminal.
func Open(hold time.Duration) (*Desk, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("desk: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("desk: %w", err)
	}
	scr.HideCursor()

	d := NewDesk(scr, hold)
	d.draw()

	return d, nil
}

// Close the desk and restore the terminal.
func (d *Desk) Close() error {
	d.scr.Fini()
	return nil
}

// Quit returns a channel that is closed when the user asks to quit.
func (d *Desk) Quit() <-chan struct{} {
	return d.quit
}

// Service processes terminal events until the user quits. It should be run
// in its own goroutine.
func (d *Desk) Service() {
	for {
		ev := d.scr.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.scr.Sync()
			d.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				d.quitOnce.Do(func() { close(d.quit) })
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					d.quitOnce.Do(func() { close(d.quit) })
					return
				}
				d.KeyPress(ev.Rune())
			}
		}
	}
}

// KeyPress presses the bean associated with the key. Returns false if the key
// is not associated with a bean.
func (d *Desk) KeyPress(r rune) bool {
	b, ok := keys[r]
	if !ok {
		return false
	}

	d.crit.Lock()
	d.pressed[b] = d.now()
	d.crit.Unlock()

	d.draw()

	return true
}

// IsPressed implements the hardware.Buttons interface.
func (d *Desk) IsPressed(b beans.Index) bool {
	beans.MustValid(b)
	d.crit.Lock()
	defer d.crit.Unlock()
	t := d.pressed[b]
	return !t.IsZero() && d.now().Sub(t) < d.hold
}

// Colour returns the current colour of the bean.
func (d *Desk) Colour(b beans.Index) beans.Colour {
	beans.MustValid(b)
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.colours[b]
}

// Write accepts light strip commands. Incomplete lines are held until the
// rest of the line arrives.
func (d *Desk) Write(p []byte) (int, error) {
	d.crit.Lock()

	d.line = append(d.line, p...)

	var err error

	i := bytes.LastIndexByte(d.line, '\n')
	if i >= 0 {
		s := bufio.NewScanner(bytes.NewReader(d.line[:i+1]))
		for s.Scan() {
			if e := d.command(s.Text()); e != nil && err == nil {
				err = e
			}
		}
		d.line = append(d.line[:0], d.line[i+1:]...)
	}

	d.crit.Unlock()

	d.draw()

	return len(p), err
}

// interpret a single command. critical section must be held
func (d *Desk) command(cmd string) error {
	f := strings.Fields(cmd)
	if len(f) != 5 || f[0] != "ON" {
		return fmt.Errorf("desk: unrecognised command: %q", cmd)
	}

	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(f[i+1])
		if err != nil {
			return fmt.Errorf("desk: %w", err)
		}
		v[i] = n
	}

	c := beans.Colour{R: uint8(v[1]), G: uint8(v[2]), B: uint8(v[3])}

	switch {
	case v[0] == 0:
		for i := range d.colours {
			d.colours[i] = c
		}
	case v[0] >= 1 && v[0] <= beans.Count:
		d.colours[v[0]-1] = c
	default:
		return fmt.Errorf("desk: no bean numbered %d", v[0])
	}

	d.status = cmd

	return nil
}

// dimensions of the beans on the screen
const (
	beanWidth  = 8
	beanHeight = 3
	beanGap    = 2
	originX    = 2
	originY    = 2
)

// BeanOrigin returns the screen position of the top left of the bean.
func BeanOrigin(b beans.Index) (int, int) {
	return originX + int(b)*(beanWidth+beanGap), originY
}

func (d *Desk) draw() {
	d.crit.Lock()
	colours := d.colours
	pressed := d.pressed
	status := d.status
	d.crit.Unlock()

	now := d.now()

	d.scr.Clear()

	d.text(originX, 0, tcell.StyleDefault, "beanboard desk: keys 1-4 or a s d f, q to quit")

	for _, b := range beans.All() {
		x, y := BeanOrigin(b)
		c := colours[b]
		st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		for dy := range beanHeight {
			for dx := range beanWidth {
				d.scr.SetContent(x+dx, y+dy, ' ', nil, st)
			}
		}

		label := fmt.Sprintf("  %d  ", b+1)
		lst := tcell.StyleDefault
		if !pressed[b].IsZero() && now.Sub(pressed[b]) < d.hold {
			lst = lst.Reverse(true)
		}
		d.text(x+1, y+beanHeight+1, lst, label)
	}

	d.text(originX, originY+beanHeight+3, tcell.StyleDefault.Dim(true), status)

	d.scr.Show()
}

func (d *Desk) text(x, y int, st tcell.Style, s string) {
	for i, r := range s {
		d.scr.SetContent(x+i, y, r, nil, st)
	}
}
