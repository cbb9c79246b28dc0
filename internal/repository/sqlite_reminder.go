package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fitremind/internal/db"
	"github.com/alexanderramin/fitremind/internal/domain"
)

// SQLiteReminderRepo implements ReminderRepo using a SQLite database.
type SQLiteReminderRepo struct {
	db db.DBTX
}

func NewSQLiteReminderRepo(conn db.DBTX) *SQLiteReminderRepo {
	return &SQLiteReminderRepo{db: conn}
}

const reminderColumns = `id, title, description, type, schedule, repeat, days, method, status, created_at, updated_at`

func (r *SQLiteReminderRepo) Create(ctx context.Context, rem *domain.Reminder) error {
	return r.insert(ctx, `INSERT INTO reminders (`+reminderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, rem)
}

// Upsert inserts rem or replaces the stored record with the same ID.
func (r *SQLiteReminderRepo) Upsert(ctx context.Context, rem *domain.Reminder) error {
	return r.insert(ctx, `INSERT INTO reminders (`+reminderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			type = excluded.type,
			schedule = excluded.schedule,
			repeat = excluded.repeat,
			days = excluded.days,
			method = excluded.method,
			status = excluded.status,
			updated_at = excluded.updated_at`, rem)
}

func (r *SQLiteReminderRepo) insert(ctx context.Context, query string, rem *domain.Reminder) error {
	days, err := encodeRaw(rem.Days)
	if err != nil {
		return fmt.Errorf("encoding days: %w", err)
	}
	method, err := encodeRaw(rem.Method)
	if err != nil {
		return fmt.Errorf("encoding method: %w", err)
	}
	_, err = r.db.ExecContext(ctx, query,
		rem.ID,
		rem.Title,
		rem.Description,
		rem.Type,
		rem.Schedule,
		string(rem.Repeat),
		days,
		method,
		string(rem.Status),
		rem.CreatedAt.UTC().Format(time.RFC3339),
		rem.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = ?`, id)
	return scanReminder(row)
}

// GetByPrefix resolves a reminder from a unique ID prefix, as shown by
// DisplayID. An ambiguous prefix is an error.
func (r *SQLiteReminderRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE id LIKE ? ESCAPE '\' ORDER BY id LIMIT 2`,
		escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("resolving reminder prefix: %w", err)
	}
	defer rows.Close()

	found, err := scanReminders(rows)
	if err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("reminder %q: %w", prefix, ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("reminder prefix %q is ambiguous", prefix)
	}
}

// List returns reminders ordered by schedule, optionally filtered by status.
// Pass an empty status to list all.
func (r *SQLiteReminderRepo) List(ctx context.Context, status domain.ReminderStatus) ([]*domain.Reminder, error) {
	var rows *sql.Rows
	var err error
	if status != "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+reminderColumns+` FROM reminders WHERE status = ? ORDER BY schedule, title, id`, string(status))
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+reminderColumns+` FROM reminders ORDER BY schedule, title, id`)
	}
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// ListAll returns every reminder by value, the shape the matchers consume.
func (r *SQLiteReminderRepo) ListAll(ctx context.Context) ([]domain.Reminder, error) {
	ptrs, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reminder, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out, nil
}

func (r *SQLiteReminderRepo) Update(ctx context.Context, rem *domain.Reminder) error {
	days, err := encodeRaw(rem.Days)
	if err != nil {
		return fmt.Errorf("encoding days: %w", err)
	}
	method, err := encodeRaw(rem.Method)
	if err != nil {
		return fmt.Errorf("encoding method: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET title = ?, description = ?, type = ?, schedule = ?, repeat = ?,
			days = ?, method = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		rem.Title,
		rem.Description,
		rem.Type,
		rem.Schedule,
		string(rem.Repeat),
		days,
		method,
		string(rem.Status),
		rem.UpdatedAt.UTC().Format(time.RFC3339),
		rem.ID,
	)
	if err != nil {
		return fmt.Errorf("updating reminder: %w", err)
	}
	return requireAffected(res, rem.ID)
}

func (r *SQLiteReminderRepo) SetStatus(ctx context.Context, id string, status domain.ReminderStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting reminder status: %w", err)
	}
	return requireAffected(res, id)
}

func (r *SQLiteReminderRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("reminder %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row *sql.Row) (*domain.Reminder, error) {
	rem, err := scanInto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reminder: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}
	return rem, nil
}

func scanReminders(rows *sql.Rows) ([]*domain.Reminder, error) {
	var out []*domain.Reminder
	for rows.Next() {
		rem, err := scanInto(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return out, nil
}

func scanInto(s rowScanner) (*domain.Reminder, error) {
	var rem domain.Reminder
	var repeat, status, days, method, createdAt, updatedAt string
	if err := s.Scan(
		&rem.ID,
		&rem.Title,
		&rem.Description,
		&rem.Type,
		&rem.Schedule,
		&repeat,
		&days,
		&method,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	rem.Repeat = domain.Repeat(repeat)
	rem.Status = domain.ReminderStatus(status)
	rem.Days = decodeRaw(days)
	rem.Method = decodeRaw(method)
	rem.CreatedAt = parseTime(createdAt)
	rem.UpdatedAt = parseTime(updatedAt)
	return &rem, nil
}
