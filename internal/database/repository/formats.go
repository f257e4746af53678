// Package repository implements sqlite-backed access to formats and
// meetings.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"briefdeck/internal/format"
)

// FormatRepo persists communication formats. List order follows insertion
// order: upserts keep the original row, so edits do not move a record.
type FormatRepo struct {
	db *sql.DB
}

func NewFormatRepo(db *sql.DB) *FormatRepo { return &FormatRepo{db: db} }

func (r *FormatRepo) Upsert(ctx context.Context, f format.CommunicationFormat) error {
	channels, err := json.Marshal(f.Channels)
	if err != nil {
		return fmt.Errorf("encode channels: %w", err)
	}
	recipients, err := json.Marshal(f.Recipients)
	if err != nil {
		return fmt.Errorf("encode recipients: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO formats(id, name, channels, recipients, message_style, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 channels=excluded.channels,
	 recipients=excluded.recipients,
	 message_style=excluded.message_style,
	 updated_at=excluded.updated_at;
	`, f.ID, f.Name, string(channels), string(recipients), f.MessageStyle, f.CreatedAt, f.UpdatedAt)
	return err
}

func (r *FormatRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM formats WHERE id = ?`, id)
	return err
}

func (r *FormatRepo) List(ctx context.Context) ([]format.CommunicationFormat, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, channels, recipients, message_style, created_at, updated_at
	FROM formats ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []format.CommunicationFormat
	for rows.Next() {
		var f format.CommunicationFormat
		var channels, recipients string
		if err := rows.Scan(&f.ID, &f.Name, &channels, &recipients, &f.MessageStyle, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(channels), &f.Channels); err != nil {
			return nil, fmt.Errorf("decode channels for %s: %w", f.ID, err)
		}
		if err := json.Unmarshal([]byte(recipients), &f.Recipients); err != nil {
			return nil, fmt.Errorf("decode recipients for %s: %w", f.ID, err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
