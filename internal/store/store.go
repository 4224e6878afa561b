// Package store provides SQLite-backed persistence for the pet record,
// the notification ledger, and the item inventory.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"pipet/internal/pet"
)

// Store holds the database handle. All writes are single statements or
// transactions, so a reader never observes a partial record.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates the
// schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("open store: create dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One process, one writer.
	db.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SavePet upserts the single pet record. The one-statement upsert is
// atomic: a concurrent reader sees either the old or the new record.
func (s *Store) SavePet(rec pet.Record) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("save pet: store is nil")
	}
	query := `
	INSERT OR REPLACE INTO pet_stats
		(id, pet_id, name, fullness, happiness, energy, health,
		 discipline, cleanliness, care_mistakes, coins,
		 is_alive, birth_time, last_update, life_stage, state)
	VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.Exec(query,
		rec.ID, rec.Name,
		rec.Fullness, rec.Happiness, rec.Energy, rec.Health,
		rec.Discipline, rec.Cleanliness, rec.CareMistakes, rec.Coins,
		boolToInt(rec.IsAlive),
		timeToUnix(rec.BirthTime), timeToUnix(rec.LastUpdate),
		rec.LifeStage, rec.State,
	)
	if err != nil {
		return fmt.Errorf("save pet: %w", err)
	}
	return nil
}

// LoadPet returns the saved record, or (nil, nil) when none exists.
// Individual NULL columns fall back to the fresh-pet defaults instead of
// failing the load.
func (s *Store) LoadPet() (*pet.Record, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("load pet: store is nil")
	}
	query := `
	SELECT pet_id, name, fullness, happiness, energy, health,
	       discipline, cleanliness, care_mistakes, coins,
	       is_alive, birth_time, last_update, life_stage, state
	FROM pet_stats WHERE id = 1`

	var (
		petID, name, lifeStage, state       sql.NullString
		fullness, happiness, energy, health sql.NullFloat64
		discipline, cleanliness             sql.NullFloat64
		careMistakes, coins                 sql.NullInt64
		isAlive                             sql.NullInt64
		birthTime, lastUpdate               sql.NullFloat64
	)
	err := s.db.QueryRow(query).Scan(
		&petID, &name, &fullness, &happiness, &energy, &health,
		&discipline, &cleanliness, &careMistakes, &coins,
		&isAlive, &birthTime, &lastUpdate, &lifeStage, &state,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load pet: scan: %w", err)
	}

	defaults := pet.NewStats()
	rec := &pet.Record{
		ID:           petID.String,
		Name:         name.String,
		Fullness:     floatOr(fullness, defaults.Fullness),
		Happiness:    floatOr(happiness, defaults.Happiness),
		Energy:       floatOr(energy, defaults.Energy),
		Health:       floatOr(health, defaults.Health),
		Discipline:   floatOr(discipline, defaults.Discipline),
		Cleanliness:  floatOr(cleanliness, defaults.Cleanliness),
		CareMistakes: int(careMistakes.Int64),
		Coins:        int(coins.Int64),
		IsAlive:      !isAlive.Valid || isAlive.Int64 != 0,
		BirthTime:    unixToTime(birthTime),
		LastUpdate:   unixToTime(lastUpdate),
		LifeStage:    lifeStage.String,
		State:        state.String,
	}
	return rec, nil
}

// SaveNotified records the last notification time for a need.
func (s *Store) SaveNotified(need string, at time.Time) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("save notified: store is nil")
	}
	query := `INSERT OR REPLACE INTO notified_needs (need, last_notified) VALUES (?, ?)`
	if _, err := s.db.Exec(query, need, timeToUnix(at)); err != nil {
		return fmt.Errorf("save notified: %w", err)
	}
	return nil
}

// LoadLedger returns the persisted notification ledger.
func (s *Store) LoadLedger() (map[string]time.Time, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("load ledger: store is nil")
	}
	rows, err := s.db.Query(`SELECT need, last_notified FROM notified_needs`)
	if err != nil {
		return nil, fmt.Errorf("load ledger: query: %w", err)
	}
	defer rows.Close()

	ledger := map[string]time.Time{}
	for rows.Next() {
		var need string
		var at sql.NullFloat64
		if err := rows.Scan(&need, &at); err != nil {
			return nil, fmt.Errorf("load ledger: scan: %w", err)
		}
		ledger[need] = unixToTime(at)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load ledger: rows: %w", err)
	}
	return ledger, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timeToUnix(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}

// unixToTime reconstructs a timestamp from REAL unix seconds, rounded to
// whole milliseconds: float64 cannot hold nanoseconds at current epochs.
func unixToTime(v sql.NullFloat64) time.Time {
	if !v.Valid || v.Float64 == 0 {
		return time.Time{}
	}
	ms := int64(math.Round(v.Float64 * 1000))
	return time.Unix(0, ms*int64(time.Millisecond)).UTC()
}

func floatOr(v sql.NullFloat64, fallback float64) float64 {
	if v.Valid {
		return v.Float64
	}
	return fallback
}
