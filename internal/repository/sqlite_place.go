package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mbaumgart/recap/internal/db"
	"github.com/mbaumgart/recap/internal/domain"
)

// SQLitePlaceRepo implements PlaceRepo using a SQLite database.
type SQLitePlaceRepo struct {
	db db.DBTX
}

// NewSQLitePlaceRepo creates a new SQLitePlaceRepo.
func NewSQLitePlaceRepo(dbtx db.DBTX) *SQLitePlaceRepo {
	return &SQLitePlaceRepo{db: dbtx}
}

func (r *SQLitePlaceRepo) CreateSaved(ctx context.Context, p *domain.SavedPlace) error {
	query := `INSERT INTO saved_places (id, label, category, lat, lon, radius_m, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Label, string(p.Category), p.Lat, p.Lon, p.RadiusM,
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting saved place: %w", err)
	}
	return nil
}

func (r *SQLitePlaceRepo) UpdateSaved(ctx context.Context, p *domain.SavedPlace) error {
	query := `UPDATE saved_places SET label = ?, category = ?, lat = ?, lon = ?, radius_m = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Label, string(p.Category), p.Lat, p.Lon, p.RadiusM,
		p.UpdatedAt.UTC().Format(time.RFC3339), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating saved place: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating saved place: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("saved place %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlaceRepo) ListSaved(ctx context.Context) ([]domain.SavedPlace, error) {
	query := `SELECT id, label, category, lat, lon, radius_m, created_at, updated_at
		FROM saved_places ORDER BY label`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing saved places: %w", err)
	}
	defer rows.Close()

	var places []domain.SavedPlace
	for rows.Next() {
		p, err := scanSavedPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, *p)
	}
	return places, rows.Err()
}

func (r *SQLitePlaceRepo) GetSaved(ctx context.Context, id string) (*domain.SavedPlace, error) {
	query := `SELECT id, label, category, lat, lon, radius_m, created_at, updated_at
		FROM saved_places WHERE id = ?`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("loading saved place: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, fmt.Errorf("saved place %s: %w", id, ErrNotFound)
	}
	return scanSavedPlace(rows)
}

func scanSavedPlace(rows *sql.Rows) (*domain.SavedPlace, error) {
	var p domain.SavedPlace
	var category, createdStr, updatedStr string
	if err := rows.Scan(&p.ID, &p.Label, &category, &p.Lat, &p.Lon, &p.RadiusM, &createdStr, &updatedStr); err != nil {
		return nil, fmt.Errorf("scanning saved place: %w", err)
	}
	p.Category = domain.PlaceCategory(category)
	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing saved place created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing saved place updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLitePlaceRepo) UpsertInferred(ctx context.Context, p *domain.InferredPlace) error {
	query := `INSERT INTO inferred_places (id, kind, label, category, lat, lon, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind, label = excluded.label, category = excluded.category,
			lat = excluded.lat, lon = excluded.lon, confidence = excluded.confidence`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, string(p.Kind), p.Label, string(p.Category), p.Lat, p.Lon, p.Confidence)
	if err != nil {
		return fmt.Errorf("upserting inferred place: %w", err)
	}
	return nil
}

func (r *SQLitePlaceRepo) ListInferred(ctx context.Context) ([]domain.InferredPlace, error) {
	query := `SELECT id, kind, label, category, lat, lon, confidence FROM inferred_places ORDER BY label`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing inferred places: %w", err)
	}
	defer rows.Close()

	var places []domain.InferredPlace
	for rows.Next() {
		var p domain.InferredPlace
		var kind, category string
		if err := rows.Scan(&p.ID, &kind, &p.Label, &category, &p.Lat, &p.Lon, &p.Confidence); err != nil {
			return nil, fmt.Errorf("scanning inferred place: %w", err)
		}
		p.Kind = domain.InferredKind(kind)
		p.Category = domain.PlaceCategory(category)
		places = append(places, p)
	}
	return places, rows.Err()
}

func (r *SQLitePlaceRepo) UpsertNearby(ctx context.Context, p *domain.PlaceAlternative) error {
	query := `INSERT INTO nearby_places (external_id, name, vicinity, types, lat, lon)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(external_id) DO UPDATE SET
			name = excluded.name, vicinity = excluded.vicinity, types = excluded.types,
			lat = excluded.lat, lon = excluded.lon`
	_, err := r.db.ExecContext(ctx, query,
		p.ExternalID, p.Name, p.Vicinity, strings.Join(p.Types, ","), p.Lat, p.Lon)
	if err != nil {
		return fmt.Errorf("upserting nearby place: %w", err)
	}
	return nil
}

func (r *SQLitePlaceRepo) ListNearby(ctx context.Context) ([]domain.PlaceAlternative, error) {
	query := `SELECT external_id, name, vicinity, types, lat, lon FROM nearby_places ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing nearby places: %w", err)
	}
	defer rows.Close()

	var places []domain.PlaceAlternative
	for rows.Next() {
		var p domain.PlaceAlternative
		var types string
		if err := rows.Scan(&p.ExternalID, &p.Name, &p.Vicinity, &types, &p.Lat, &p.Lon); err != nil {
			return nil, fmt.Errorf("scanning nearby place: %w", err)
		}
		if types != "" {
			p.Types = strings.Split(types, ",")
		}
		places = append(places, p)
	}
	return places, rows.Err()
}
