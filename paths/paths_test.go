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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beanboard/beanboard/paths"
	"github.com/beanboard/beanboard/test"
)

func TestPaths(t *testing.T) {
	// ResourcePath() prefers a .beanboard directory in the current directory
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Mkdir(".beanboard", 0o700))

	pth, err := paths.ResourcePath("sounds/dog", "woof.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".beanboard", "sounds", "dog", "woof.wav"))

	// the directory part has been created
	_, err = os.Stat(filepath.Join(".beanboard", "sounds", "dog"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".beanboard", "preferences"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".beanboard")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "dot")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".dot"))
}
