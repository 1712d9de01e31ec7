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

// Package hiscore keeps the record of games played on the board. The record
// is updated once for every game that ends and holds the total number of
// games, the number of games played in each cheat mode and the high score.
//
// The record can be stored in a flat file, in the same format as the
// preferences file, or in an SQLite database. The database additionally
// keeps the history of every game.
//
// A record that cannot be read is replaced by a new record. Losing the score
// history is preferable to stopping the game.
package hiscore

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Record of games played.
type Record struct {
	// the time the record was created
	Started time.Time

	TotalGames int

	// number of games played in each mode. games played without a cheat mode
	// are recorded under the name "none"
	ModePlays map[string]int

	HighScore     int
	HighScoreMode string
}

// NewRecord is the preferred method of initialisation for the Record type.
func NewRecord(started time.Time) Record {
	return Record{
		Started:   started,
		ModePlays: make(map[string]int),
	}
}

// Add the result of a single game to the record. Returns true if the score is
// a new high score. The high score never decreases.
func (r *Record) Add(mode string, score int) bool {
	if r.ModePlays == nil {
		r.ModePlays = make(map[string]int)
	}

	r.TotalGames++
	r.ModePlays[mode]++

	if score > r.HighScore {
		r.HighScore = score
		r.HighScoreMode = mode
		return true
	}

	return false
}

// Modes returns the names of every mode that has been played, sorted.
func (r Record) Modes() []string {
	m := make([]string, 0, len(r.ModePlays))
	for k := range r.ModePlays {
		m = append(m, k)
	}
	sort.Strings(m)
	return m
}

func (r Record) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "started: %s\n", r.Started.Format(time.RFC1123))
	fmt.Fprintf(&s, "games played: %d\n", r.TotalGames)
	for _, m := range r.Modes() {
		fmt.Fprintf(&s, "  %s: %d\n", m, r.ModePlays[m])
	}
	if r.HighScoreMode != "" {
		fmt.Fprintf(&s, "high score: %d (%s)\n", r.HighScore, r.HighScoreMode)
	} else {
		fmt.Fprintf(&s, "high score: %d\n", r.HighScore)
	}
	return s.String()
}

// Game is the result of a single game.
type Game struct {
	ID     string
	Played time.Time
	Mode   string
	Score  int
}

func (g Game) String() string {
	return fmt.Sprintf("%s %s %d", g.Played.Format(time.DateTime), g.Mode, g.Score)
}
