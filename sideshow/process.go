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

// Package sideshow manages the external processes started by some cheat
// modes, such as a video playing in the background or a companion timer
// script. The processes are cosmetic and the game does not depend on them.
// A process that fails to start is logged and the game continues without it.
package sideshow

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/beanboard/beanboard/logger"
)

// Process is an external program that can be started and stopped. A Process
// can be started again after it has been stopped.
type Process struct {
	log  logger.Permission
	name string
	args []string

	crit sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// NewProcess is the preferred method of initialisation for the Process type.
// The command line is split into fields at spaces. An empty command line
// creates a Process that never runs.
func NewProcess(log logger.Permission, name string, cmdline string) *Process {
	return &Process{
		log:  log,
		name: name,
		args: strings.Fields(cmdline),
	}
}

func (p *Process) String() string {
	return p.name
}

// Configured returns true if the process has a command line.
func (p *Process) Configured() bool {
	return len(p.args) > 0
}

// Running returns true if the process has been started and has not yet
// exited.
func (p *Process) Running() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Start the process. A process that is already running is stopped first.
func (p *Process) Start() error {
	if err := p.Stop(); err != nil {
		return err
	}

	if !p.Configured() {
		logger.Logf(p.log, "sideshow", "%s: no command configured", p.name)
		return nil
	}

	p.crit.Lock()
	defer p.crit.Unlock()

	cmd := exec.Command(p.args[0], p.args[1:]...)

	// the process leads its own group so that Stop() can reach any children
	// of a wrapper script
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("sideshow: %s: %w", p.name, err)
	}

	p.cmd = cmd
	p.done = make(chan struct{})

	go func(done chan struct{}) {
		err := cmd.Wait()
		if err != nil {
			logger.Logf(p.log, "sideshow", "%s: %v", p.name, err)
		}
		close(done)
	}(p.done)

	logger.Logf(p.log, "sideshow", "%s: started (pid %d)", p.name, cmd.Process.Pid)

	return nil
}

// Stop the process, and any process it started, and wait for it to exit.
// Stopping a process that is not running is not an error.
func (p *Process) Stop() error {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.cmd == nil {
		return nil
	}

	defer func() {
		p.cmd = nil
		p.done = nil
	}()

	// the group is killed even if the leader has already exited
	err := unix.Kill(-p.cmd.Process.Pid, unix.SIGKILL)
	<-p.done

	if err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("sideshow: %s: %w", p.name, err)
	}

	logger.Logf(p.log, "sideshow", "%s: stopped", p.name)

	return nil
}
