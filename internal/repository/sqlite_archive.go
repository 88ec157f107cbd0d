package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/db"
	"github.com/mbaumgart/recap/internal/domain"
)

const dayFormat = "2006-01-02"

// SQLiteArchiveRepo implements ArchiveRepo using a SQLite database.
type SQLiteArchiveRepo struct {
	db db.DBTX
}

// NewSQLiteArchiveRepo creates a new SQLiteArchiveRepo.
func NewSQLiteArchiveRepo(dbtx db.DBTX) *SQLiteArchiveRepo {
	return &SQLiteArchiveRepo{db: dbtx}
}

func (r *SQLiteArchiveRepo) SaveDay(ctx context.Context, day contract.DayResult) error {
	blocks, err := json.Marshal(day.Blocks)
	if err != nil {
		return fmt.Errorf("encoding blocks: %w", err)
	}
	events, err := json.Marshal(day.Events)
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}

	query := `INSERT INTO day_archive (day, blocks_json, events_json, built_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			blocks_json = excluded.blocks_json,
			events_json = excluded.events_json,
			built_at = excluded.built_at`
	_, err = r.db.ExecContext(ctx, query,
		day.Date.UTC().Format(dayFormat),
		string(blocks),
		string(events),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("archiving day: %w", err)
	}
	return nil
}

func (r *SQLiteArchiveRepo) GetDay(ctx context.Context, date time.Time) (*contract.DayResult, error) {
	query := `SELECT day, blocks_json, events_json FROM day_archive WHERE day = ?`
	rows, err := r.db.QueryContext(ctx, query, date.UTC().Format(dayFormat))
	if err != nil {
		return nil, fmt.Errorf("loading archived day: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, fmt.Errorf("archived day %s: %w", date.UTC().Format(dayFormat), ErrNotFound)
	}
	day, err := scanDay(rows.Scan)
	if err != nil {
		return nil, err
	}
	return day, rows.Err()
}

func (r *SQLiteArchiveRepo) ListRecent(ctx context.Context, before time.Time, days int) ([]contract.DayResult, error) {
	query := `SELECT day, blocks_json, events_json FROM day_archive
		WHERE day < ? AND day >= ?
		ORDER BY day DESC`
	rows, err := r.db.QueryContext(ctx, query,
		before.UTC().Format(dayFormat),
		before.AddDate(0, 0, -days).UTC().Format(dayFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("listing archived days: %w", err)
	}
	defer rows.Close()

	var results []contract.DayResult
	for rows.Next() {
		day, err := scanDay(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, *day)
	}
	return results, rows.Err()
}

// LastLabeledBlock returns the newest non-unknown block archived strictly
// before the given day, used to carry a place forward into an
// evidence-free morning.
func (r *SQLiteArchiveRepo) LastLabeledBlock(ctx context.Context, before time.Time) (*domain.LocationBlock, error) {
	days, err := r.ListRecent(ctx, before, 7)
	if err != nil {
		return nil, err
	}
	for _, day := range days {
		for i := len(day.Blocks) - 1; i >= 0; i-- {
			b := day.Blocks[i]
			if b.LocationLabel != domain.UnknownLabel && b.Type == domain.BlockStationary {
				return &b, nil
			}
		}
	}
	return nil, nil
}

func scanDay(scan func(dest ...any) error) (*contract.DayResult, error) {
	var dayStr, blocksJSON, eventsJSON string
	if err := scan(&dayStr, &blocksJSON, &eventsJSON); err != nil {
		return nil, fmt.Errorf("scanning archived day: %w", err)
	}
	date, err := time.Parse(dayFormat, dayStr)
	if err != nil {
		return nil, fmt.Errorf("parsing archived day: %w", err)
	}
	day := contract.DayResult{Date: date}
	if err := json.Unmarshal([]byte(blocksJSON), &day.Blocks); err != nil {
		return nil, fmt.Errorf("decoding archived blocks: %w", err)
	}
	if err := json.Unmarshal([]byte(eventsJSON), &day.Events); err != nil {
		return nil, fmt.Errorf("decoding archived events: %w", err)
	}
	return &day, nil
}
