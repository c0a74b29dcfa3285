package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run sources.
const (
	SourcePlay = "play" // local terminal session
	SourceSSH  = "ssh"  // remote session via arcade serve
	SourceSim  = "sim"  // headless autopilot run
)

// RunRecord is the full summary of one finished run.
type RunRecord struct {
	ID            string // UUID, assigned by SaveRun when empty
	GameID        string
	Source        string
	Seed          int64
	Score         int
	Kills         int
	ShotsFired    int
	SpecialsFired int
	Ticks         uint64
	CreatedAt     time.Time
}

// Accuracy returns kills per projectile fired, or 0 when nothing was fired.
func (r RunRecord) Accuracy() float64 {
	shots := r.ShotsFired + r.SpecialsFired
	if shots == 0 {
		return 0
	}
	return float64(r.Kills) / float64(shots)
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Source == "" {
		r.Source = SourcePlay
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, game_id, source, seed, score, kills, shots_fired, specials_fired, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Source, r.Seed, r.Score, r.Kills, r.ShotsFired, r.SpecialsFired,
		int64(r.Ticks), //#nosec G115 -- tick counts fit in int64
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RunByID retrieves a run by its ID. Returns nil when it does not exist.
func (s *Store) RunByID(id string) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, source, seed, score, kills, shots_fired, specials_fired, ticks, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs for the given game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, source, seed, score, kills, shots_fired, specials_fired, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var r RunRecord
	var ticks int64
	var createdAt any
	err := sc.Scan(&r.ID, &r.GameID, &r.Source, &r.Seed, &r.Score, &r.Kills,
		&r.ShotsFired, &r.SpecialsFired, &ticks, &createdAt)
	if err != nil {
		return RunRecord{}, err
	}
	r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}
