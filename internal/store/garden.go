package store

import (
	"database/sql"
	"fmt"
	"time"
)

// GardenPlotCount is the fixed number of beds in the garden.
const GardenPlotCount = 4

// Plot is one garden bed. An empty Plant string means nothing is
// growing there.
type Plot struct {
	ID        int
	Plant     string
	PlantedAt time.Time
	WateredAt time.Time
}

// GardenPlots returns all beds in plot order, creating empty rows on
// first use.
func (s *Store) GardenPlots() ([]Plot, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("garden plots: store is nil")
	}
	for i := 1; i <= GardenPlotCount; i++ {
		if _, err := s.db.Exec(
			`INSERT OR IGNORE INTO garden_plots (plot_id, plant, planted_at, watered_at) VALUES (?, '', 0, 0)`, i); err != nil {
			return nil, fmt.Errorf("garden plots: seed row %d: %w", i, err)
		}
	}

	rows, err := s.db.Query(`SELECT plot_id, plant, planted_at, watered_at FROM garden_plots ORDER BY plot_id`)
	if err != nil {
		return nil, fmt.Errorf("garden plots: query: %w", err)
	}
	defer rows.Close()

	var plots []Plot
	for rows.Next() {
		var p Plot
		var planted, watered sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Plant, &planted, &watered); err != nil {
			return nil, fmt.Errorf("garden plots: scan: %w", err)
		}
		p.PlantedAt = unixToTime(planted)
		p.WateredAt = unixToTime(watered)
		plots = append(plots, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("garden plots: rows: %w", err)
	}
	return plots, nil
}

// PlantSeed starts a plant in a bed. Planting over an occupied bed is
// an error; callers harvest or clear first.
func (s *Store) PlantSeed(plotID int, plant string, at time.Time) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("plant seed: store is nil")
	}
	result, err := s.db.Exec(
		`UPDATE garden_plots SET plant = ?, planted_at = ?, watered_at = ? WHERE plot_id = ? AND plant = ''`,
		plant, timeToUnix(at), timeToUnix(at), plotID)
	if err != nil {
		return fmt.Errorf("plant seed: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("plant seed: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plant seed: plot %d is occupied or missing", plotID)
	}
	return nil
}

// ClearPlot empties a bed after harvest.
func (s *Store) ClearPlot(plotID int) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("clear plot: store is nil")
	}
	if _, err := s.db.Exec(
		`UPDATE garden_plots SET plant = '', planted_at = 0, watered_at = 0 WHERE plot_id = ?`, plotID); err != nil {
		return fmt.Errorf("clear plot: %w", err)
	}
	return nil
}

// WaterPlot records a watering.
func (s *Store) WaterPlot(plotID int, at time.Time) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("water plot: store is nil")
	}
	if _, err := s.db.Exec(
		`UPDATE garden_plots SET watered_at = ? WHERE plot_id = ? AND plant != ''`, timeToUnix(at), plotID); err != nil {
		return fmt.Errorf("water plot: %w", err)
	}
	return nil
}
