package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mbaumgart/recap/internal/db"
	"github.com/mbaumgart/recap/internal/domain"
)

// SQLiteSummaryRepo implements SummaryRepo using a SQLite database.
type SQLiteSummaryRepo struct {
	db db.DBTX
}

// NewSQLiteSummaryRepo creates a new SQLiteSummaryRepo.
func NewSQLiteSummaryRepo(dbtx db.DBTX) *SQLiteSummaryRepo {
	return &SQLiteSummaryRepo{db: dbtx}
}

func (r *SQLiteSummaryRepo) Put(ctx context.Context, s *domain.HourlySummary) error {
	samples, err := json.Marshal(s.LocationSamples)
	if err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}
	sessions, err := json.Marshal(s.AppSessions)
	if err != nil {
		return fmt.Errorf("encoding app sessions: %w", err)
	}
	segments, err := json.Marshal(s.ActivitySegments)
	if err != nil {
		return fmt.Errorf("encoding activity segments: %w", err)
	}

	query := `INSERT INTO hourly_summaries
		(id, start_time, end_time, confidence, has_feedback, is_locked, samples_json, sessions_json, segments_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			has_feedback = excluded.has_feedback,
			is_locked = excluded.is_locked`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.StartTime.UTC().Format(time.RFC3339Nano),
		s.EndTime.UTC().Format(time.RFC3339Nano),
		s.Confidence,
		boolToInt(s.HasFeedback),
		boolToInt(s.IsLocked),
		string(samples),
		string(sessions),
		string(segments),
	)
	if err != nil {
		return fmt.Errorf("inserting hourly summary: %w", err)
	}
	return nil
}

func (r *SQLiteSummaryRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.HourlySummary, error) {
	query := `SELECT id, start_time, end_time, confidence, has_feedback, is_locked,
			samples_json, sessions_json, segments_json
		FROM hourly_summaries
		WHERE start_time >= ? AND start_time < ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339Nano), to.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("listing hourly summaries: %w", err)
	}
	defer rows.Close()

	var summaries []domain.HourlySummary
	for rows.Next() {
		var s domain.HourlySummary
		var startStr, endStr, samples, sessions, segments string
		var feedback, locked int
		if err := rows.Scan(&s.ID, &startStr, &endStr, &s.Confidence, &feedback, &locked,
			&samples, &sessions, &segments); err != nil {
			return nil, fmt.Errorf("scanning hourly summary: %w", err)
		}
		if s.StartTime, err = time.Parse(time.RFC3339Nano, startStr); err != nil {
			return nil, fmt.Errorf("parsing summary start: %w", err)
		}
		if s.EndTime, err = time.Parse(time.RFC3339Nano, endStr); err != nil {
			return nil, fmt.Errorf("parsing summary end: %w", err)
		}
		s.HasFeedback = feedback != 0
		s.IsLocked = locked != 0
		if err := json.Unmarshal([]byte(samples), &s.LocationSamples); err != nil {
			return nil, fmt.Errorf("decoding samples: %w", err)
		}
		if err := json.Unmarshal([]byte(sessions), &s.AppSessions); err != nil {
			return nil, fmt.Errorf("decoding app sessions: %w", err)
		}
		if err := json.Unmarshal([]byte(segments), &s.ActivitySegments); err != nil {
			return nil, fmt.Errorf("decoding activity segments: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
