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

package hiscore

import (
	"fmt"
	"time"

	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/paths"
)

// Store is the persistent storage for a Record.
type Store interface {
	// Load the record. A record that does not exist yet is created.
	Load() (Record, error)

	// Record the result of a game and return the updated record. If the
	// existing record can't be read it is replaced by a new record before
	// the result is added.
	Record(mode string, score int) (Record, error)

	// History returns the most recent games, most recent first. A store that
	// does not keep a history returns an empty list.
	History(limit int) ([]Game, error)

	Close() error
}

// List of storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// default filenames in the resource path
const (
	defaultFile   = "hiscore"
	defaultSQLite = "hiscore.db"
)

// Open the store for the backend. An empty path means the default file in the
// resource path.
func Open(log logger.Permission, backend string, pth string) (Store, error) {
	var err error

	switch backend {
	case BackendFile:
		if pth == "" {
			pth, err = paths.ResourcePath("", defaultFile)
			if err != nil {
				return nil, fmt.Errorf("hiscore: %w", err)
			}
		}
		return NewFile(log, pth), nil

	case BackendSQLite:
		if pth == "" {
			pth, err = paths.ResourcePath("", defaultSQLite)
			if err != nil {
				return nil, fmt.Errorf("hiscore: %w", err)
			}
		}
		s, err := OpenSQLite(log, pth)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("hiscore: unknown backend: %s", backend)
}

// the source of time for all stores. replaced for testing
var now = time.Now
