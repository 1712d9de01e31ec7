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
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/beanboard/beanboard/curated"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/prefs"
)

// prefix of keys that record the number of plays in a mode
const modePrefix = "mode."

// File stores the record in a flat file of "key :: value" lines.
type File struct {
	log logger.Permission
	pth string

	// one read-modify-write at a time
	crit sync.Mutex
}

// NewFile is the preferred method of initialisation for the File type. The
// file is not created until the first call to Load() or Record().
func NewFile(log logger.Permission, pth string) *File {
	return &File{
		log: log,
		pth: pth,
	}
}

// the fixed values in the file
type fileValues struct {
	started  prefs.String
	total    prefs.Int
	high     prefs.Int
	highMode prefs.String
}

func (f *File) disk() (*prefs.Disk, *fileValues, error) {
	dsk, err := prefs.NewDisk(f.pth)
	if err != nil {
		return nil, nil, err
	}

	v := &fileValues{}
	for k, p := range map[string]interface {
		String() string
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
	}{
		"started":        &v.started,
		"games.total":    &v.total,
		"highscore":      &v.high,
		"highscore.mode": &v.highMode,
	} {
		if err := dsk.Add(k, p); err != nil {
			return nil, nil, err
		}
	}

	return dsk, v, nil
}

// read the file. returns false if the file does not exist
func (f *File) read() (Record, bool, error) {
	dsk, v, err := f.disk()
	if err != nil {
		return Record{}, false, curated.Errorf("hiscore: %v", err)
	}
	if err := dsk.Load(); err != nil {
		return Record{}, false, curated.Errorf("hiscore: %v", err)
	}

	if v.started.String() == "" {
		return Record{}, false, nil
	}

	started, err := time.Parse(time.RFC3339, v.started.String())
	if err != nil {
		return Record{}, false, curated.Errorf("hiscore: %v", err)
	}

	r := NewRecord(started)
	r.TotalGames = v.total.Get().(int)
	r.HighScore = v.high.Get().(int)
	r.HighScoreMode = v.highMode.String()

	for k, s := range dsk.Unrecognised(modePrefix) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Record{}, false, curated.Errorf("hiscore: %s: %v", k, err)
		}
		r.ModePlays[strings.TrimPrefix(k, modePrefix)] = n
	}

	return r, true, nil
}

func (f *File) write(r Record) error {
	dsk, v, err := f.disk()
	if err != nil {
		return curated.Errorf("hiscore: %v", err)
	}

	_ = v.started.Set(r.Started.Format(time.RFC3339))
	_ = v.total.Set(r.TotalGames)
	_ = v.high.Set(r.HighScore)
	_ = v.highMode.Set(r.HighScoreMode)

	plays := make([]prefs.Int, len(r.ModePlays))
	for i, m := range r.Modes() {
		_ = plays[i].Set(r.ModePlays[m])
		if err := dsk.Add(modePrefix+m, &plays[i]); err != nil {
			return curated.Errorf("hiscore: %v", err)
		}
	}

	if err := dsk.Save(); err != nil {
		return curated.Errorf("hiscore: %v", err)
	}

	return nil
}

// load the record, creating a new record if the file does not exist or can't
// be read. the critical section must be held
func (f *File) load() (Record, error) {
	r, ok, err := f.read()
	if err != nil {
		logger.Logf(f.log, "hiscore", "%v: starting new record", err)
	}
	if err != nil || !ok {
		r = NewRecord(now().Truncate(time.Second))
		if werr := f.write(r); werr != nil {
			return r, werr
		}
	}
	return r, err
}

// Load implements the Store interface.
func (f *File) Load() (Record, error) {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.load()
}

// Record implements the Store interface.
func (f *File) Record(mode string, score int) (Record, error) {
	f.crit.Lock()
	defer f.crit.Unlock()

	// the record is usable even if there was an error loading it
	r, err := f.load()

	if r.Add(mode, score) {
		logger.Logf(f.log, "hiscore", "new high score: %d (%s)", score, mode)
	}

	if werr := f.write(r); werr != nil {
		return r, werr
	}

	return r, err
}

// History implements the Store interface. The file does not keep a history.
func (f *File) History(limit int) ([]Game, error) {
	return nil, nil
}

// Close implements the Store interface.
func (f *File) Close() error {
	return nil
}

func (f *File) String() string {
	return fmt.Sprintf("file: %s", f.pth)
}
