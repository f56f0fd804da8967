package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maheshrc27/brandlab-api/internal/models"
)

// LookupRepository serves the small reference tables behind form dropdowns.
type LookupRepository interface {
	ListCountries(ctx context.Context) ([]*models.Country, error)
	ListChannels(ctx context.Context) ([]*models.Channel, error)
	ListObjectives(ctx context.Context) ([]*models.Objective, error)
}

type lookupRepository struct {
	db *sql.DB
}

func NewLookupRepository(db *sql.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) ListCountries(ctx context.Context) ([]*models.Country, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing countries: %w", err)
	}
	defer rows.Close()

	countries := []*models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning country: %w", err)
		}
		countries = append(countries, &c)
	}
	return countries, rows.Err()
}

func (r *lookupRepository) ListChannels(ctx context.Context) ([]*models.Channel, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label FROM channels ORDER BY label`)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	defer rows.Close()

	channels := []*models.Channel{}
	for rows.Next() {
		var c models.Channel
		if err := rows.Scan(&c.ID, &c.Label); err != nil {
			return nil, fmt.Errorf("scanning channel: %w", err)
		}
		channels = append(channels, &c)
	}
	return channels, rows.Err()
}

func (r *lookupRepository) ListObjectives(ctx context.Context) ([]*models.Objective, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label FROM objectives ORDER BY label`)
	if err != nil {
		return nil, fmt.Errorf("listing objectives: %w", err)
	}
	defer rows.Close()

	objectives := []*models.Objective{}
	for rows.Next() {
		var o models.Objective
		if err := rows.Scan(&o.ID, &o.Label); err != nil {
			return nil, fmt.Errorf("scanning objective: %w", err)
		}
		objectives = append(objectives, &o)
	}
	return objectives, rows.Err()
}
