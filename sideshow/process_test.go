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

package sideshow_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/sideshow"
	"github.com/beanboard/beanboard/test"
)

func TestUnconfigured(t *testing.T) {
	p := sideshow.NewProcess(logger.Allow, "video", "  ")
	test.ExpectFailure(t, p.Configured())
	test.ExpectSuccess(t, p.Start())
	test.ExpectFailure(t, p.Running())
	test.ExpectSuccess(t, p.Stop())
}

func TestStartStop(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep command not available")
	}

	p := sideshow.NewProcess(logger.Allow, "timer", "sleep 60")
	test.DemandSuccess(t, p.Start())
	test.ExpectSuccess(t, p.Running())

	// starting again replaces the process
	test.DemandSuccess(t, p.Start())
	test.ExpectSuccess(t, p.Running())

	test.ExpectSuccess(t, p.Stop())
	test.ExpectFailure(t, p.Running())

	// stopping twice is fine
	test.ExpectSuccess(t, p.Stop())
}

func TestProcessExits(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true command not available")
	}

	p := sideshow.NewProcess(logger.Allow, "quick", "true")
	test.DemandSuccess(t, p.Start())

	for i := 0; i < 100 && p.Running(); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	test.ExpectFailure(t, p.Running())
	test.ExpectSuccess(t, p.Stop())
}

func TestBadCommand(t *testing.T) {
	p := sideshow.NewProcess(logger.Allow, "video", "/nonexistent/video-player --loop")
	test.ExpectFailure(t, p.Start())
	test.ExpectFailure(t, p.Running())
}

// returns true if the process has exited. a process that has exited but has
// not been reaped by its new parent counts as exited
func exited(pid int) bool {
	data, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
	if err != nil {
		return true
	}

	// the state follows the command name, which is in brackets
	f := strings.Fields(string(data[strings.LastIndexByte(string(data), ')')+1:]))
	return len(f) > 0 && (f[0] == "Z" || f[0] == "X")
}

func TestStopWrapperScript(t *testing.T) {
	for _, c := range []string{"sh", "sleep"} {
		if _, err := exec.LookPath(c); err != nil {
			t.Skipf("%s command not available", c)
		}
	}
	if _, err := os.Stat("/proc/self/stat"); err != nil {
		t.Skip("no /proc filesystem")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "wrapper.sh")
	pidfile := filepath.Join(dir, "pid")
	test.DemandSuccess(t, os.WriteFile(script, []byte("sleep 60 &\necho $! > $1\nwait\n"), 0o755))

	p := sideshow.NewProcess(logger.Allow, "video", "sh "+script+" "+pidfile)
	test.DemandSuccess(t, p.Start())

	var pid int
	for i := 0; i < 500 && pid == 0; i++ {
		time.Sleep(10 * time.Millisecond)
		data, err := os.ReadFile(pidfile)
		if err == nil && strings.HasSuffix(string(data), "\n") {
			pid, _ = strconv.Atoi(strings.TrimSpace(string(data)))
		}
	}
	if pid == 0 {
		_ = p.Stop()
		t.Fatal("the script did not start its child")
	}
	test.ExpectFailure(t, exited(pid))

	test.ExpectSuccess(t, p.Stop())

	// the child of the script is stopped with the script
	for i := 0; i < 500 && !exited(pid); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	test.ExpectSuccess(t, exited(pid))
}
