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
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "*** do not edit this file while the game is running ***"

// separates key and value in the prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk. Preference values are
// added with Add() and are then loaded or saved as a group.
type Disk struct {
	crit sync.Mutex
	path string

	entries map[string]pref

	// entries in the prefs file that have not been added to the Disk. these
	// are preserved so that Save() does not lose them.
	unknown map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		unknown: make(map[string]string),
	}, nil
}

// Path returns the path of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if strings.Contains(key, keySep) || strings.TrimSpace(key) != key || key == "" {
		return fmt.Errorf("prefs: illegal key (%q)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}

	dsk.entries[key] = p
	return nil
}

// Load preference values from disk. A missing prefs file is not an error;
// values keep whatever they were set to before the call to Load().
//
// Any preference values set on the command line (see SetCommandLine()) are
// applied after the values in the file.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	f, err := os.Open(dsk.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("prefs: %w", err)
		}
	} else {
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if line == WarningBoilerPlate || strings.TrimSpace(line) == "" {
				continue
			}

			k, v, ok := strings.Cut(line, keySep)
			if !ok {
				return fmt.Errorf("prefs: malformed line in %s (%q)", dsk.path, line)
			}

			if p, ok := dsk.entries[k]; ok {
				if err := p.Set(v); err != nil {
					return fmt.Errorf("prefs: %s: %w", k, err)
				}
			} else {
				dsk.unknown[k] = v
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	for k, p := range dsk.entries {
		if v, ok := takeCommandLine(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// Save current preference values to disk. Values are written in key order.
func (dsk *Disk) Save() (rerr error) {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	lines := make(map[string]string, len(dsk.entries)+len(dsk.unknown))
	for k, v := range dsk.unknown {
		lines[k] = v
	}
	for k, p := range dsk.entries {
		lines[k] = p.String()
	}

	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("prefs: %w", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, lines[k])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Unrecognised returns a copy of the entries found by Load() that have not
// been added to the Disk. Only keys that start with the prefix are returned.
func (dsk *Disk) Unrecognised(prefix string) map[string]string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	u := make(map[string]string)
	for k, v := range dsk.unknown {
		if strings.HasPrefix(k, prefix) {
			u[k] = v
		}
	}
	return u
}
