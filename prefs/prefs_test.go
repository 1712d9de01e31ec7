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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/beanboard/beanboard/prefs"
	"github.com/beanboard/beanboard/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "beanboard_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectFailure(t, dsk.Add("test", &v))
	test.ExpectFailure(t, dsk.Add("bad :: key", &v))
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var i prefs.Int
	var f prefs.Float
	var d prefs.Duration
	test.ExpectSuccess(t, dsk.Add("serial.port", &s))
	test.ExpectSuccess(t, dsk.Add("serial.baud", &i))
	test.ExpectSuccess(t, dsk.Add("audio.volume", &f))
	test.ExpectSuccess(t, dsk.Add("game.timeout", &d))

	// a missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, s.Set("/dev/ttyUSB0"))
	test.ExpectSuccess(t, i.Set(115200))
	test.ExpectSuccess(t, f.Set(0.5))
	test.ExpectSuccess(t, d.Set("10s"))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "audio.volume :: 0.500\ngame.timeout :: 10s\nserial.baud :: 115200\nserial.port :: /dev/ttyUSB0\n")

	// new disk instance reading the same file
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s2 prefs.String
	var d2 prefs.Duration
	test.ExpectSuccess(t, dsk2.Add("serial.port", &s2))
	test.ExpectSuccess(t, dsk2.Add("game.timeout", &d2))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, s2.String(), "/dev/ttyUSB0")
	test.ExpectEquality(t, d2.Value(), 10*time.Second)

	u := dsk2.Unrecognised("audio.")
	test.ExpectEquality(t, len(u), 1)
	test.ExpectEquality(t, u["audio.volume"], "0.500")
	test.ExpectEquality(t, len(dsk2.Unrecognised("")), 2)

	// entries not added to dsk2 must survive a save
	test.DemandSuccess(t, dsk2.Save())
	cmpTmpFile(t, fn, "audio.volume :: 0.500\ngame.timeout :: 10s\nserial.baud :: 115200\nserial.port :: /dev/ttyUSB0\n")
}

func TestMalformed(t *testing.T) {
	fn := getTmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("no separator here\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load())
}

func TestHooks(t *testing.T) {
	var d prefs.Duration
	var called bool

	d.SetHookPre(func(v prefs.Value) error {
		if v.(time.Duration) > time.Minute {
			return fmt.Errorf("too long")
		}
		return nil
	})
	d.SetHookPost(func(v prefs.Value) error {
		called = true
		return nil
	})

	test.ExpectFailure(t, d.Set("2m"))
	test.ExpectFailure(t, called)
	test.ExpectSuccess(t, d.Set("30s"))
	test.ExpectSuccess(t, called)
	test.ExpectEquality(t, d.Value(), 30*time.Second)
	test.ExpectFailure(t, d.Set("-1s"))
}

func TestCommandLine(t *testing.T) {
	fn := getTmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("serial.port", &s))
	test.ExpectSuccess(t, s.Set("/dev/ttyUSB0"))

	prefs.SetCommandLine("serial.port::/dev/ttyACM0; unknown.key::1")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "/dev/ttyACM0")
	test.ExpectEquality(t, prefs.UnusedCommandLine(), "unknown.key::1")

	prefs.SetCommandLine("")
	test.ExpectEquality(t, prefs.UnusedCommandLine(), "")
}
