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
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/beanboard/beanboard/curated"
	"github.com/beanboard/beanboard/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS record (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	started INTEGER NOT NULL,
	total INTEGER NOT NULL DEFAULT 0,
	high INTEGER NOT NULL DEFAULT 0,
	high_mode TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS mode_plays (
	mode TEXT PRIMARY KEY,
	plays INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	played INTEGER NOT NULL,
	mode TEXT NOT NULL,
	score INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS games_played ON games (played);
`

// SQLite stores the record and the history of every game in an SQLite
// database.
type SQLite struct {
	log logger.Permission
	pth string
	db  *sql.DB
}

// OpenSQLite opens the database, creating it if necessary. A database that
// is not readable is moved aside and a new record is started.
func OpenSQLite(log logger.Permission, pth string) (*SQLite, error) {
	s := &SQLite{
		log: log,
		pth: pth,
	}

	if err := s.open(); err != nil {
		if !corrupt(err) {
			return nil, curated.Errorf("hiscore: %v", err)
		}
		logger.Logf(log, "hiscore", "%v: starting new record", err)
		if err := s.reinitialise(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *SQLite) open() error {
	db, err := sql.Open("sqlite", s.pth)
	if err != nil {
		return err
	}

	// one connection is enough for one board
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// suffix added to the name of a database that could not be read
const corruptSuffix = ".corrupt"

// move the database aside and create a new one
func (s *SQLite) reinitialise() error {
	if s.db != nil {
		_ = s.db.Close()
		s.db = nil
	}

	if err := os.Rename(s.pth, s.pth+corruptSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf("hiscore: %v", err)
	}
	for _, ext := range []string{"-journal", "-wal", "-shm"} {
		_ = os.Remove(s.pth + ext)
	}

	if err := s.open(); err != nil {
		return curated.Errorf("hiscore: %v", err)
	}

	logger.Logf(s.log, "hiscore", "unreadable database moved to %s", s.pth+corruptSuffix)

	return nil
}

// returns true if the error means the database file can not be used
func corrupt(err error) bool {
	var e *sqlite.Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code() & 0xff {
	case sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB:
		return true
	}
	return false
}

func (s *SQLite) String() string {
	return fmt.Sprintf("sqlite: %s", s.pth)
}

type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// read the record, creating it if it does not exist
func (s *SQLite) read(q querier) (Record, error) {
	var started int64
	var r Record

	err := q.QueryRow(`SELECT started, total, high, high_mode FROM record WHERE id = 1`).Scan(&started, &r.TotalGames, &r.HighScore, &r.HighScoreMode)
	if errors.Is(err, sql.ErrNoRows) {
		r = NewRecord(now().Truncate(time.Second))
		if _, err := q.Exec(`INSERT INTO record (id, started) VALUES (1, ?)`, r.Started.Unix()); err != nil {
			return r, curated.Errorf("hiscore: %v", err)
		}
		return r, nil
	}
	if err != nil {
		return r, curated.Errorf("hiscore: %v", err)
	}

	r.Started = time.Unix(started, 0)
	r.ModePlays = make(map[string]int)

	rows, err := q.Query(`SELECT mode, plays FROM mode_plays`)
	if err != nil {
		return r, curated.Errorf("hiscore: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m string
		var n int
		if err := rows.Scan(&m, &n); err != nil {
			return r, curated.Errorf("hiscore: %v", err)
		}
		r.ModePlays[m] = n
	}
	if err := rows.Err(); err != nil {
		return r, curated.Errorf("hiscore: %v", err)
	}

	return r, nil
}

// Load implements the Store interface. A database that can't be read is
// reinitialised in the same way as for Record().
func (s *SQLite) Load() (Record, error) {
	if err := s.ready(); err != nil {
		return Record{}, err
	}

	r, err := s.read(s.db)
	if err == nil || !corrupt(err) {
		return r, err
	}

	logger.Logf(s.log, "hiscore", "%v: starting new record", err)
	if rerr := s.reinitialise(); rerr != nil {
		return r, rerr
	}

	r, rerr := s.read(s.db)
	if rerr != nil {
		return r, rerr
	}

	return r, err
}

// make sure the database is open. it will not be if an earlier
// reinitialisation failed
func (s *SQLite) ready() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return curated.Errorf("hiscore: %v", err)
	}
	return nil
}

// Record implements the Store interface. If the database can't be read it is
// reinitialised and the game is recorded in the new record. The error is still
// returned in that case.
func (s *SQLite) Record(mode string, score int) (Record, error) {
	r, err := s.record(mode, score)
	if err == nil || !corrupt(err) {
		return r, err
	}

	logger.Logf(s.log, "hiscore", "%v: starting new record", err)
	if rerr := s.reinitialise(); rerr != nil {
		return r, rerr
	}

	r, rerr := s.record(mode, score)
	if rerr != nil {
		return r, rerr
	}

	return r, err
}

func (s *SQLite) record(mode string, score int) (rec Record, rerr error) {
	if err := s.ready(); err != nil {
		return Record{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Record{}, curated.Errorf("hiscore: %v", err)
	}
	defer func() {
		if rerr != nil {
			_ = tx.Rollback()
		}
	}()

	r, err := s.read(tx)
	if err != nil {
		return r, err
	}

	if r.Add(mode, score) {
		logger.Logf(s.log, "hiscore", "new high score: %d (%s)", score, mode)
	}

	if _, err := tx.Exec(`UPDATE record SET total = ?, high = ?, high_mode = ? WHERE id = 1`,
		r.TotalGames, r.HighScore, r.HighScoreMode); err != nil {
		return r, curated.Errorf("hiscore: %v", err)
	}

	if _, err := tx.Exec(`INSERT INTO mode_plays (mode, plays) VALUES (?, 1)
		ON CONFLICT (mode) DO UPDATE SET plays = plays + 1`, mode); err != nil {
		return r, curated.Errorf("hiscore: %v", err)
	}

	if _, err := tx.Exec(`INSERT INTO games (id, played, mode, score) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), now().UnixNano(), mode, score); err != nil {
		return r, curated.Errorf("hiscore: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return r, curated.Errorf("hiscore: %v", err)
	}

	return r, nil
}

// History implements the Store interface.
func (s *SQLite) History(limit int) ([]Game, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT id, played, mode, score FROM games ORDER BY played DESC LIMIT ?`, limit)
	if err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var g Game
		var played int64
		if err := rows.Scan(&g.ID, &played, &g.Mode, &g.Score); err != nil {
			return nil, curated.Errorf("hiscore: %v", err)
		}
		g.Played = time.Unix(0, played)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}

	return games, nil
}

// Close implements the Store interface.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
