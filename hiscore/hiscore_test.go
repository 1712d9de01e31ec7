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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/test"
)

// replaces the time source with a clock that advances one second every call
func fakeTime(t *testing.T) {
	t.Helper()
	tm := time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC)
	now = func() time.Time {
		tm = tm.Add(time.Second)
		return tm
	}
	t.Cleanup(func() {
		now = time.Now
	})
}

func TestRecordAdd(t *testing.T) {
	r := NewRecord(time.Time{})
	test.ExpectSuccess(t, r.Add("none", 2))
	test.ExpectFailure(t, r.Add("dog_mode", 1))
	test.ExpectFailure(t, r.Add("dog_mode", 2))
	test.ExpectSuccess(t, r.Add("speedrun", 5))

	test.ExpectEquality(t, r.TotalGames, 4)
	test.ExpectEquality(t, r.ModePlays["dog_mode"], 2)
	test.ExpectEquality(t, r.HighScore, 5)
	test.ExpectEquality(t, r.HighScoreMode, "speedrun")
	test.ExpectSlice(t, r.Modes(), []string{"dog_mode", "none", "speedrun"})

	// high score never decreases
	r.Add("none", 0)
	test.ExpectEquality(t, r.HighScore, 5)
}

// both stores must behave in the same way
func testStore(t *testing.T, s Store) {
	t.Helper()

	r, err := s.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 0)
	test.ExpectFailure(t, r.Started.IsZero())
	started := r.Started

	// loss at sequence length three
	r, err = s.Record("none", 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 1)
	test.ExpectEquality(t, r.HighScore, 2)
	test.ExpectEquality(t, r.ModePlays["none"], 1)

	r, err = s.Record("dog_mode", 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 2)
	test.ExpectEquality(t, r.HighScore, 2)
	test.ExpectEquality(t, r.HighScoreMode, "none")

	r, err = s.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 2)
	test.ExpectEquality(t, r.ModePlays["none"], 1)
	test.ExpectEquality(t, r.ModePlays["dog_mode"], 1)
	test.ExpectEquality(t, r.HighScore, 2)
	test.ExpectSuccess(t, r.Started.Equal(started))
}

func TestFile(t *testing.T) {
	fakeTime(t)
	pth := filepath.Join(t.TempDir(), "hiscore")
	s := NewFile(logger.Allow, pth)
	testStore(t, s)

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "games.total :: 2\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "mode.dog_mode :: 1\n"))

	h, err := s.History(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(h), 0)
}

func TestCorruptFile(t *testing.T) {
	fakeTime(t)
	pth := filepath.Join(t.TempDir(), "hiscore")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("this is not a score file\n"), 0o644))

	s := NewFile(logger.Allow, pth)

	// the error is reported but the game is recorded in a new record
	r, err := s.Record("none", 2)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, r.TotalGames, 1)
	test.ExpectEquality(t, r.HighScore, 2)

	r, err = s.Load()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 1)
}

func TestCorruptSQLite(t *testing.T) {
	fakeTime(t)
	pth := filepath.Join(t.TempDir(), "hiscore.db")
	test.DemandSuccess(t, os.WriteFile(pth, bytes.Repeat([]byte("this is not a score database\n"), 100), 0o644))

	s, err := Open(logger.Allow, BackendSQLite, pth)
	test.DemandSuccess(t, err)
	defer s.Close()

	r, err := s.Record("none", 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 1)
	test.ExpectEquality(t, r.HighScore, 2)

	r, err = s.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.TotalGames, 1)

	// the unreadable file is kept
	data, err := os.ReadFile(pth + corruptSuffix)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), "this is not a score database"))
}

func TestCorruptError(t *testing.T) {
	test.ExpectFailure(t, corrupt(nil))
	test.ExpectFailure(t, corrupt(errors.New("file is not a database")))
}

func TestSQLite(t *testing.T) {
	fakeTime(t)
	s, err := OpenSQLite(logger.Allow, filepath.Join(t.TempDir(), "hiscore.db"))
	test.DemandSuccess(t, err)
	defer s.Close()

	testStore(t, s)

	h, err := s.History(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(h), 2)
	test.ExpectEquality(t, h[0].Mode, "dog_mode")
	test.ExpectEquality(t, h[0].Score, 1)
	test.ExpectEquality(t, h[1].Mode, "none")
	test.ExpectInequality(t, h[0].ID, h[1].ID)

	h, err = s.History(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(h), 1)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(logger.Allow, BackendFile, filepath.Join(dir, "a"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.Close())

	s, err = Open(logger.Allow, BackendSQLite, filepath.Join(dir, "b.db"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.Close())

	_, err = Open(logger.Allow, "paper", "")
	test.DemandFailure(t, err)
}

func TestRecordString(t *testing.T) {
	r := NewRecord(time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC))
	r.Add("none", 3)
	s := r.String()
	test.ExpectSuccess(t, strings.Contains(s, "games played: 1\n"))
	test.ExpectSuccess(t, strings.Contains(s, "high score: 3 (none)\n"))
}
