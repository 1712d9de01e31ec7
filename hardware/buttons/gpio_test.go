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

package buttons_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/hardware/buttons"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/test"
)

// creates a fake sysfs tree with all pins exported and set high
func sysfs(t *testing.T, pins [beans.Count]int) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range pins {
		dir := filepath.Join(root, "gpio"+itoa(p))
		test.DemandSuccess(t, os.MkdirAll(dir, 0o755))
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "direction"), []byte("out"), 0o644))
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "value"), []byte("1\n"), 0o644))
	}
	return root
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func setPin(t *testing.T, root string, pin int, v string) {
	t.Helper()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(root, "gpio"+itoa(pin), "value"), []byte(v+"\n"), 0o644))
}

func TestParsePins(t *testing.T) {
	pins, err := buttons.ParsePins("23, 22,17,27")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pins, [beans.Count]int{23, 22, 17, 27})

	_, err = buttons.ParsePins("23,22,17")
	test.ExpectFailure(t, err)
	_, err = buttons.ParsePins("23,22,17,x")
	test.ExpectFailure(t, err)
}

func TestActiveLow(t *testing.T) {
	pins := [beans.Count]int{23, 22, 17, 27}
	root := sysfs(t, pins)

	gp, err := buttons.NewGPIO(logger.Allow, root, pins, true, 0)
	test.DemandSuccess(t, err)
	defer gp.Close()

	// direction has been set
	d, err := os.ReadFile(filepath.Join(root, "gpio23", "direction"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "in")

	for _, b := range beans.All() {
		test.ExpectFailure(t, gp.IsPressed(b))
	}

	setPin(t, root, 17, "0")
	test.ExpectSuccess(t, gp.IsPressed(2))
	test.ExpectFailure(t, gp.IsPressed(1))

	setPin(t, root, 17, "1")
	test.ExpectFailure(t, gp.IsPressed(2))
}

func TestActiveHigh(t *testing.T) {
	pins := [beans.Count]int{5, 6, 7, 8}
	root := sysfs(t, pins)

	gp, err := buttons.NewGPIO(logger.Allow, root, pins, false, 0)
	test.DemandSuccess(t, err)
	defer gp.Close()

	for _, b := range beans.All() {
		test.ExpectSuccess(t, gp.IsPressed(b))
	}
}

func TestMissingPin(t *testing.T) {
	root := t.TempDir()
	_, err := buttons.NewGPIO(logger.Allow, root, [beans.Count]int{1, 2, 3, 4}, true, 0)
	test.ExpectFailure(t, err)
}
