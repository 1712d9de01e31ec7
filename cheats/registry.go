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

package cheats

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/modifiers"
)

// Registry maps the name of a cheat mode to its password. Passwords are
// unique. A sequence resolves to a mode only if it is exactly equal to the
// mode's password.
type Registry struct {
	passwords map[string]beans.Sequence
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		passwords: make(map[string]beans.Sequence),
	}
}

// the built in passwords, with beans numbered from one
var builtin = map[string][]int{
	modifiers.PrintALine: {1, 1, 1, 1},
	modifiers.DogMode:    {1, 2, 3, 4},
	modifiers.Speedrun:   {4, 4, 4, 4},
	modifiers.PartyMode:  {1, 3, 2, 4},
	modifiers.RedAlert:   {1, 1, 4, 4},
}

// DefaultRegistry returns a registry containing the built in cheat modes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.addNumbers(builtin); err != nil {
		panic(err)
	}
	return r
}

// Add a mode to the registry. If the mode already exists its password is
// replaced. The password must not be empty, must contain only valid beans and
// must not be the password of another mode.
func (r *Registry) Add(name string, password beans.Sequence) error {
	if name == "" {
		return fmt.Errorf("cheats: mode has no name")
	}
	if len(password) == 0 {
		return fmt.Errorf("cheats: %s: empty password", name)
	}
	for _, b := range password {
		if !b.Valid() {
			return fmt.Errorf("cheats: %s: invalid bean in password: %d", name, int(b))
		}
	}
	for n, p := range r.passwords {
		if n != name && p.Equal(password) {
			return fmt.Errorf("cheats: %s: password already used by %s", name, n)
		}
	}

	r.passwords[name] = append(beans.Sequence{}, password...)

	return nil
}

// add modes with passwords in one based numbering. modes are added in name
// order so that errors are reported consistently
func (r *Registry) addNumbers(modes map[string][]int) error {
	names := make([]string, 0, len(modes))
	for n := range modes {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		var pw beans.Sequence
		for _, v := range modes[n] {
			b, err := beans.FromNumber(v)
			if err != nil {
				return fmt.Errorf("cheats: %s: %w", n, err)
			}
			pw = append(pw, b)
		}
		if err := r.Add(n, pw); err != nil {
			return err
		}
	}

	return nil
}

// Resolve returns the name of the mode with the password. Returns false if
// no mode has the password.
func (r *Registry) Resolve(seq beans.Sequence) (string, bool) {
	if len(seq) == 0 {
		return "", false
	}
	for n, p := range r.passwords {
		if p.Equal(seq) {
			return n, true
		}
	}
	return "", false
}

// Password returns the password for the mode.
func (r *Registry) Password(name string) (beans.Sequence, bool) {
	p, ok := r.passwords[name]
	return p, ok
}

// Names returns the names of every mode in the registry, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.passwords))
	for n := range r.passwords {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of modes in the registry.
func (r *Registry) Len() int {
	return len(r.passwords)
}

// Load adds the modes in a YAML document to the registry. The document is a
// mapping of mode names to lists of bean numbers, starting from one:
//
//	dog_mode: [4, 3, 2, 1]
//	party_mode: [2, 2, 3, 3]
func (r *Registry) Load(data []byte) error {
	var modes map[string][]int
	if err := yaml.Unmarshal(data, &modes); err != nil {
		return fmt.Errorf("cheats: %w", err)
	}
	return r.addNumbers(modes)
}

// LoadFile adds the modes in a YAML file to the registry. See Load() for the
// format of the file.
func (r *Registry) LoadFile(pth string) error {
	data, err := os.ReadFile(pth)
	if err != nil {
		return fmt.Errorf("cheats: %w", err)
	}
	return r.Load(data)
}
