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

// Package version reports the name and build information of the program.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Beanboard"

// set by the linker when building a release. for example:
//
//	go build -ldflags "-X github.com/beanboard/beanboard/version.number=v1.0.0"
var number string

// Version returns the version string and the vcs revision. The version is
// "unreleased" if the program was built from a repository without a release
// number and "local" if there is no build information at all.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "local", "no revision information"
	}

	var vcs bool
	var revision string
	var modified bool

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision
	case vcs:
		return "unreleased", revision
	}
	return "local", revision
}

// String returns a single line describing the program version.
func String() string {
	v, r := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
