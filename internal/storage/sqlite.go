// Package storage provides SQLite-based persistence for named high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultMaxScores is the size of the scoreboard.
const DefaultMaxScores = 5

// MaxNameLen bounds stored player names, in runes.
const MaxNameLen = 16

// AnonymousName is stored when a player leaves the name blank.
const AnonymousName = "anonymous"

// ErrInvalidScore is returned when saving a negative score.
var ErrInvalidScore = errors.New("storage: score must not be negative")

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one scoreboard row.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC, id ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CleanName trims a player name, caps its length and substitutes
// AnonymousName for blanks.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLen {
		name = string(r[:MaxNameLen])
	}
	if name == "" {
		return AnonymousName
	}
	return name
}

// SaveScore records a named score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, name string, score int) (int64, error) {
	if score < 0 {
		return 0, ErrInvalidScore
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, name, score) VALUES (?, ?, ?)",
		gameID, CleanName(name), score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game, highest first.
// Equal scores keep the order they were set in.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultMaxScores
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, name, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score for a game, or 0 when none is recorded.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// Qualifies reports whether score would enter a top-limit scoreboard.
// Zero scores never qualify.
func (s *Store) Qualifies(gameID string, score, limit int) (bool, error) {
	if score <= 0 {
		return false, nil
	}
	top, err := s.TopScores(gameID, limit)
	if err != nil {
		return false, err
	}
	if len(top) < limit {
		return true, nil
	}
	return score > lo.MinBy(top, func(a, b ScoreEntry) bool { return a.Score < b.Score }).Score, nil
}

// Prune deletes every score for gameID outside the top keep entries.
// Returns the number of rows removed.
func (s *Store) Prune(gameID string, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	result, err := s.db.Exec(
		`DELETE FROM scores
		 WHERE game_id = ?
		   AND id NOT IN (
			SELECT id FROM scores
			WHERE game_id = ?
			ORDER BY score DESC, id ASC
			LIMIT ?
		   )`,
		gameID, gameID, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune scores: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned rows: %w", err)
	}
	return n, nil
}

// Record saves a score and trims the scoreboard to keep entries.
// Returns the entry's rank (1-based), or 0 if it did not make the board.
func (s *Store) Record(gameID, name string, score, keep int) (int, error) {
	id, err := s.SaveScore(gameID, name, score)
	if err != nil {
		return 0, err
	}
	if _, err := s.Prune(gameID, keep); err != nil {
		return 0, err
	}

	top, err := s.TopScores(gameID, keep)
	if err != nil {
		return 0, err
	}
	_, idx, found := lo.FindIndexOf(top, func(e ScoreEntry) bool { return e.ID == id })
	if !found {
		return 0, nil
	}
	return idx + 1, nil
}

// ClearScores removes all scores for a game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
