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

// Package buttons reads the state of the buttons from GPIO pins using the
// sysfs interface.
package buttons

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/logger"
)

// SysfsRoot is the location of the sysfs GPIO interface.
const SysfsRoot = "/sys/class/gpio"

// ParsePins converts a comma separated list of pin numbers to a list of
// integers. There must be one pin for every bean.
func ParsePins(s string) ([beans.Count]int, error) {
	var pins [beans.Count]int

	f := strings.Split(s, ",")
	if len(f) != beans.Count {
		return pins, fmt.Errorf("buttons: need %d pins, have %d", beans.Count, len(f))
	}

	for i := range f {
		p, err := strconv.Atoi(strings.TrimSpace(f[i]))
		if err != nil {
			return pins, fmt.Errorf("buttons: %w", err)
		}
		pins[i] = p
	}

	return pins, nil
}

type pin struct {
	number int
	fd     int

	// debouncing
	stable    bool
	candidate bool
	since     time.Time
}

// GPIO implements the hardware.Buttons interface.
type GPIO struct {
	log       logger.Permission
	root      string
	activeLow bool
	debounce  time.Duration

	crit sync.Mutex
	pins [beans.Count]pin
	buf  [1]byte
}

// NewGPIO is the preferred method of initialisation for the GPIO type. The
// root argument is the location of the sysfs GPIO interface, usually
// SysfsRoot. Pins that have not been exported are exported and set to input.
func NewGPIO(log logger.Permission, root string, pins [beans.Count]int, activeLow bool, debounce time.Duration) (*GPIO, error) {
	gp := &GPIO{
		log:       log,
		root:      root,
		activeLow: activeLow,
		debounce:  debounce,
	}

	for i, n := range pins {
		fd, err := gp.open(n)
		if err != nil {
			_ = gp.Close()
			return nil, err
		}
		gp.pins[i] = pin{number: n, fd: fd}
	}

	return gp, nil
}

func (gp *GPIO) open(n int) (int, error) {
	dir := filepath.Join(gp.root, fmt.Sprintf("gpio%d", n))

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := gp.writeFile(filepath.Join(gp.root, "export"), strconv.Itoa(n)); err != nil {
			return -1, fmt.Errorf("buttons: export pin %d: %w", n, err)
		}
	}

	if err := gp.writeFile(filepath.Join(dir, "direction"), "in"); err != nil {
		return -1, fmt.Errorf("buttons: pin %d: %w", n, err)
	}

	fd, err := unix.Open(filepath.Join(dir, "value"), unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, fmt.Errorf("buttons: pin %d: %w", n, err)
	}

	logger.Logf(gp.log, "buttons", "pin %d opened", n)

	return fd, nil
}

func (gp *GPIO) writeFile(pth string, v string) error {
	fd, err := unix.Open(pth, unix.O_WRONLY|unix.O_TRUNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	_, err = unix.Write(fd, []byte(v))
	return err
}

// read the raw value of the pin. returns true if the button is pressed
func (gp *GPIO) read(p *pin) (bool, error) {
	n, err := unix.Pread(p.fd, gp.buf[:], 0)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, fmt.Errorf("empty read")
	}
	high := gp.buf[0] == '1'
	return high != gp.activeLow, nil
}

// IsPressed implements the hardware.Buttons interface.
func (gp *GPIO) IsPressed(b beans.Index) bool {
	beans.MustValid(b)

	gp.crit.Lock()
	defer gp.crit.Unlock()

	p := &gp.pins[b]

	v, err := gp.read(p)
	if err != nil {
		logger.Logf(gp.log, "buttons", "pin %d: %v", p.number, err)
		return false
	}

	now := time.Now()
	if v != p.candidate {
		p.candidate = v
		p.since = now
	}
	if p.candidate != p.stable && now.Sub(p.since) >= gp.debounce {
		p.stable = p.candidate
	}

	return p.stable
}

// Close all pins.
func (gp *GPIO) Close() error {
	gp.crit.Lock()
	defer gp.crit.Unlock()
	for i := range gp.pins {
		if gp.pins[i].fd > 0 {
			_ = unix.Close(gp.pins[i].fd)
			gp.pins[i].fd = 0
		}
	}
	return nil
}
