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

package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/beanboard/beanboard/curated"
)

// Library of decoded clips.
type Library struct {
	crit  sync.Mutex
	dir   string
	clips map[ClipID]*Clip
}

// NewLibrary is the preferred method of initialisation for the Library type.
// Clips are loaded relative to the dir argument.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:   dir,
		clips: make(map[ClipID]*Clip),
	}
}

// Dir returns the directory that clips are loaded from.
func (lib *Library) Dir() string {
	return lib.dir
}

// Add a clip to the library, replacing any clip with the same ID.
func (lib *Library) Add(c *Clip) {
	lib.crit.Lock()
	defer lib.crit.Unlock()
	lib.clips[c.ID] = c
}

// Clip returns the clip with the ID. Returns false if there is no such clip.
func (lib *Library) Clip(id ClipID) (*Clip, bool) {
	lib.crit.Lock()
	defer lib.crit.Unlock()
	c, ok := lib.clips[id]
	return c, ok
}

// Load the clip from disk. The ID is the path to the file relative to the
// library directory. Clips that have already been loaded are not loaded
// again.
func (lib *Library) Load(id ClipID) (*Clip, error) {
	if c, ok := lib.Clip(id); ok {
		return c, nil
	}

	f, err := os.Open(filepath.Join(lib.dir, filepath.FromSlash(string(id))))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(MissingClip, id)
		}
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	c, err := Decode(id, f)
	if err != nil {
		return nil, err
	}

	lib.Add(c)

	return c, nil
}

// MissingClip is the pattern for the error returned when a clip cannot be
// found.
const MissingClip = "audio: clip missing: %s"

// Require makes sure that all the clips are in the library. Clips that are
// not already loaded are loaded from disk.
func (lib *Library) Require(ids ...ClipID) error {
	for _, id := range ids {
		if _, err := lib.Load(id); err != nil {
			return err
		}
	}
	return nil
}

// List returns the IDs of the playable files in a subdirectory of the
// library directory, sorted by name.
func (lib *Library) List(subdir string) ([]ClipID, error) {
	entries, err := os.ReadDir(filepath.Join(lib.dir, subdir))
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	var ids []ClipID
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".wav", ".mp3":
			ids = append(ids, ClipID(filepath.ToSlash(filepath.Join(subdir, e.Name()))))
		}
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	return ids, nil
}
