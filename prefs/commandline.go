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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// preference values specified on the command line. these override values
// loaded from disk and are consumed the first time they are used.
var commandLine = struct {
	crit   sync.Mutex
	values map[string]string
}{
	values: make(map[string]string),
}

// SetCommandLine parses a string of preference values of the form:
//
//	key::value; key::value
//
// The values are applied by the next call to Disk.Load() for a Disk that
// contains the key. Any previously set command line values are forgotten.
func SetCommandLine(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	commandLine.values = make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		commandLine.values[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
}

// UnusedCommandLine returns the command line preferences that have not been
// consumed by a call to Disk.Load().
func UnusedCommandLine() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	keys := make([]string, 0, len(commandLine.values))
	for k := range commandLine.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, commandLine.values[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

func takeCommandLine(key string) (string, bool) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	v, ok := commandLine.values[key]
	if ok {
		delete(commandLine.values, key)
	}
	return v, ok
}
