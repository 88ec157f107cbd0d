package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mbaumgart/recap/internal/db"
	"github.com/mbaumgart/recap/internal/domain"
)

// SQLiteAuxEventRepo implements AuxEventRepo using a SQLite database.
type SQLiteAuxEventRepo struct {
	db db.DBTX
}

// NewSQLiteAuxEventRepo creates a new SQLiteAuxEventRepo.
func NewSQLiteAuxEventRepo(dbtx db.DBTX) *SQLiteAuxEventRepo {
	return &SQLiteAuxEventRepo{db: dbtx}
}

func (r *SQLiteAuxEventRepo) ListRange(ctx context.Context, from, to time.Time) (domain.AuxiliaryEvents, error) {
	var aux domain.AuxiliaryEvents
	fromStr := from.UTC().Format(time.RFC3339Nano)
	toStr := to.UTC().Format(time.RFC3339Nano)

	if err := r.listEmails(ctx, fromStr, toStr, &aux); err != nil {
		return domain.AuxiliaryEvents{}, err
	}
	if err := r.listChats(ctx, fromStr, toStr, &aux); err != nil {
		return domain.AuxiliaryEvents{}, err
	}
	if err := r.listMeetings(ctx, fromStr, toStr, &aux); err != nil {
		return domain.AuxiliaryEvents{}, err
	}
	if err := r.listCalls(ctx, fromStr, toStr, &aux); err != nil {
		return domain.AuxiliaryEvents{}, err
	}
	if err := r.listCalendar(ctx, fromStr, toStr, &aux); err != nil {
		return domain.AuxiliaryEvents{}, err
	}
	return aux, nil
}

func (r *SQLiteAuxEventRepo) listEmails(ctx context.Context, from, to string, aux *domain.AuxiliaryEvents) error {
	query := `SELECT id, subject, counterpart, start_time, end_time FROM emails
		WHERE start_time >= ? AND start_time < ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("listing emails: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e domain.EmailEvent
		var startStr, endStr string
		if err := rows.Scan(&e.ID, &e.Subject, &e.Counterpart, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning email: %w", err)
		}
		if e.StartTime, e.EndTime, err = parseRange(startStr, endStr); err != nil {
			return err
		}
		aux.Emails = append(aux.Emails, e)
	}
	return rows.Err()
}

func (r *SQLiteAuxEventRepo) listChats(ctx context.Context, from, to string, aux *domain.AuxiliaryEvents) error {
	query := `SELECT id, channel, title, snippet, start_time, end_time FROM chats
		WHERE start_time >= ? AND start_time < ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("listing chats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.ChatEvent
		var channel, startStr, endStr string
		if err := rows.Scan(&c.ID, &channel, &c.Title, &c.Snippet, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning chat: %w", err)
		}
		c.Channel = domain.ChatChannel(channel)
		if c.StartTime, c.EndTime, err = parseRange(startStr, endStr); err != nil {
			return err
		}
		aux.Chats = append(aux.Chats, c)
	}
	return rows.Err()
}

func (r *SQLiteAuxEventRepo) listMeetings(ctx context.Context, from, to string, aux *domain.AuxiliaryEvents) error {
	query := `SELECT id, title, attendees, start_time, end_time FROM meetings
		WHERE start_time >= ? AND start_time < ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("listing meetings: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m domain.MeetingEvent
		var startStr, endStr string
		if err := rows.Scan(&m.ID, &m.Title, &m.Attendees, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning meeting: %w", err)
		}
		if m.StartTime, m.EndTime, err = parseRange(startStr, endStr); err != nil {
			return err
		}
		aux.Meetings = append(aux.Meetings, m)
	}
	return rows.Err()
}

func (r *SQLiteAuxEventRepo) listCalls(ctx context.Context, from, to string, aux *domain.AuxiliaryEvents) error {
	query := `SELECT id, contact, incoming, start_time, end_time FROM calls
		WHERE start_time >= ? AND start_time < ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("listing calls: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.CallEvent
		var incoming int
		var startStr, endStr string
		if err := rows.Scan(&c.ID, &c.Contact, &incoming, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning call: %w", err)
		}
		c.Incoming = incoming != 0
		if c.StartTime, c.EndTime, err = parseRange(startStr, endStr); err != nil {
			return err
		}
		aux.Calls = append(aux.Calls, c)
	}
	return rows.Err()
}

func (r *SQLiteAuxEventRepo) listCalendar(ctx context.Context, from, to string, aux *domain.AuxiliaryEvents) error {
	query := `SELECT id, title, category, source, start_time, end_time FROM calendar_entries
		WHERE start_time >= ? AND start_time < ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("listing calendar entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e domain.CalendarEntry
		var source, startStr, endStr string
		if err := rows.Scan(&e.ID, &e.Title, &e.Category, &source, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning calendar entry: %w", err)
		}
		if e.StartTime, e.EndTime, err = parseRange(startStr, endStr); err != nil {
			return err
		}
		if source == "actual" {
			aux.Actual = append(aux.Actual, e)
		} else {
			aux.Planned = append(aux.Planned, e)
		}
	}
	return rows.Err()
}

func (r *SQLiteAuxEventRepo) PutEmail(ctx context.Context, e *domain.EmailEvent) error {
	query := `INSERT OR REPLACE INTO emails (id, subject, counterpart, start_time, end_time) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Subject, e.Counterpart,
		e.StartTime.UTC().Format(time.RFC3339Nano), e.EndTime.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting email: %w", err)
	}
	return nil
}

func (r *SQLiteAuxEventRepo) PutChat(ctx context.Context, c *domain.ChatEvent) error {
	query := `INSERT OR REPLACE INTO chats (id, channel, title, snippet, start_time, end_time) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, string(c.Channel), c.Title, c.Snippet,
		c.StartTime.UTC().Format(time.RFC3339Nano), c.EndTime.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting chat: %w", err)
	}
	return nil
}

func (r *SQLiteAuxEventRepo) PutMeeting(ctx context.Context, m *domain.MeetingEvent) error {
	query := `INSERT OR REPLACE INTO meetings (id, title, attendees, start_time, end_time) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Title, m.Attendees,
		m.StartTime.UTC().Format(time.RFC3339Nano), m.EndTime.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting meeting: %w", err)
	}
	return nil
}

func (r *SQLiteAuxEventRepo) PutCall(ctx context.Context, c *domain.CallEvent) error {
	query := `INSERT OR REPLACE INTO calls (id, contact, incoming, start_time, end_time) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Contact, boolToInt(c.Incoming),
		c.StartTime.UTC().Format(time.RFC3339Nano), c.EndTime.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting call: %w", err)
	}
	return nil
}

func (r *SQLiteAuxEventRepo) PutCalendarEntry(ctx context.Context, e *domain.CalendarEntry, actual bool) error {
	source := "planned"
	if actual {
		source = "actual"
	}
	query := `INSERT OR REPLACE INTO calendar_entries (id, title, category, source, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Title, e.Category, source,
		e.StartTime.UTC().Format(time.RFC3339Nano), e.EndTime.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting calendar entry: %w", err)
	}
	return nil
}

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339Nano, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing event start: %w", err)
	}
	end, err := time.Parse(time.RFC3339Nano, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing event end: %w", err)
	}
	return start, end, nil
}
