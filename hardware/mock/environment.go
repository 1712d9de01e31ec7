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

package mock

import (
	"path/filepath"

	"github.com/beanboard/beanboard/environment"
	"github.com/beanboard/beanboard/preferences"
)

// NewEnvironment creates an environment with default preferences stored in
// dir and a fixed random seed. Logging is allowed.
func NewEnvironment(dir string, seed int64) (*environment.Environment, error) {
	prefs, err := preferences.NewPreferences(filepath.Join(dir, preferences.DefaultPrefsFile))
	if err != nil {
		return nil, err
	}
	return environment.NewEnvironment("test", seed, prefs)
}
