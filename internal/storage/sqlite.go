// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dice-baseball/internal/engine"
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// GameResult is one finished game.
type GameResult struct {
	ID        uuid.UUID
	AwayID    string
	AwayName  string
	HomeID    string
	HomeName  string
	AwayRuns  int
	HomeRuns  int
	Innings   int
	Seed      int64
	Ballpark  string
	Linescore engine.Linescore
	CreatedAt time.Time
}

// Winner returns the winning team ID, or "" for an unfinished tie.
func (r GameResult) Winner() string {
	switch {
	case r.AwayRuns > r.HomeRuns:
		return r.AwayID
	case r.HomeRuns > r.AwayRuns:
		return r.HomeID
	}
	return ""
}

// Record is a team's win/loss tally.
type Record struct {
	TeamID string
	Wins   int
	Losses int
}

// NewResult builds a result for a finished game with a fresh ID.
func NewResult(m *engine.Modern, s *engine.State, seed int64) GameResult {
	away, home := s.Score()
	ls := m.Linescore(s)
	return GameResult{
		ID:        uuid.New(),
		AwayID:    m.Away.ID,
		AwayName:  m.Away.FullName(),
		HomeID:    m.Home.ID,
		HomeName:  m.Home.FullName(),
		AwayRuns:  away,
		HomeRuns:  home,
		Innings:   ls.Innings,
		Seed:      seed,
		Ballpark:  m.Ballpark.Name,
		Linescore: ls,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			away_id TEXT NOT NULL,
			away_name TEXT NOT NULL,
			home_id TEXT NOT NULL,
			home_name TEXT NOT NULL,
			away_runs INTEGER NOT NULL DEFAULT 0,
			home_runs INTEGER NOT NULL DEFAULT 0,
			innings INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			ballpark TEXT NOT NULL DEFAULT '',
			linescore TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_away ON games(away_id);
		CREATE INDEX IF NOT EXISTS idx_games_home ON games(home_id);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
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

// SaveResult records a finished game. A zero ID is replaced by a new one.
// Returns the stored ID.
func (s *Store) SaveResult(r GameResult) (uuid.UUID, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	ls, err := json.Marshal(r.Linescore)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot encode linescore: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO games
		 (id, away_id, away_name, home_id, home_name, away_runs, home_runs, innings, seed, ballpark, linescore)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(),
		r.AwayID,
		r.AwayName,
		r.HomeID,
		r.HomeName,
		r.AwayRuns,
		r.HomeRuns,
		r.Innings,
		r.Seed,
		r.Ballpark,
		string(ls),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save game: %w", err)
	}
	return r.ID, nil
}

const selectGame = `SELECT id, away_id, away_name, home_id, home_name,
		        away_runs, home_runs, innings, seed, ballpark, linescore, created_at
		 FROM games`

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (GameResult, error) {
	var r GameResult
	var id, ls string
	var createdAt any
	if err := row.Scan(
		&id,
		&r.AwayID,
		&r.AwayName,
		&r.HomeID,
		&r.HomeName,
		&r.AwayRuns,
		&r.HomeRuns,
		&r.Innings,
		&r.Seed,
		&r.Ballpark,
		&ls,
		&createdAt,
	); err != nil {
		return r, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return r, fmt.Errorf("storage: bad game id %q: %w", id, err)
	}
	r.ID = parsed
	if err := json.Unmarshal([]byte(ls), &r.Linescore); err != nil {
		return r, fmt.Errorf("storage: cannot decode linescore: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ResultByID retrieves a game by ID. Returns nil if it does not exist.
func (s *Store) ResultByID(id uuid.UUID) (*GameResult, error) {
	r, err := scanResult(s.db.QueryRow(selectGame+" WHERE id = ?", id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return &r, nil
}

// RecentResults retrieves the most recent games, newest first.
func (s *Store) RecentResults(limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(selectGame+" ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
}

// TeamResults retrieves every game a team played, newest first.
func (s *Store) TeamResults(teamID string) ([]GameResult, error) {
	return s.queryResults(selectGame+" WHERE away_id = ? OR home_id = ? ORDER BY created_at DESC, rowid DESC", teamID, teamID)
}

func (s *Store) queryResults(query string, args ...any) ([]GameResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// TeamRecord returns a team's wins and losses.
func (s *Store) TeamRecord(teamID string) (Record, error) {
	rec := Record{TeamID: teamID}
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN (away_id = ? AND away_runs > home_runs) OR (home_id = ? AND home_runs > away_runs) THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN (away_id = ? AND away_runs < home_runs) OR (home_id = ? AND home_runs < away_runs) THEN 1 ELSE 0 END), 0)
		 FROM games
		 WHERE away_id = ? OR home_id = ?`,
		teamID, teamID, teamID, teamID, teamID, teamID,
	).Scan(&rec.Wins, &rec.Losses)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query record: %w", err)
	}
	return rec, nil
}

// ClearResults deletes every stored game.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}
