package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"briefdeck/internal/meeting"
)

// MeetingRepo persists meeting records.
type MeetingRepo struct {
	db *sql.DB
}

func NewMeetingRepo(db *sql.DB) *MeetingRepo { return &MeetingRepo{db: db} }

func (r *MeetingRepo) Upsert(ctx context.Context, m meeting.Meeting) error {
	topics, err := json.Marshal(m.Topics)
	if err != nil {
		return fmt.Errorf("encode topics: %w", err)
	}
	items, err := json.Marshal(m.ActionItems)
	if err != nil {
		return fmt.Errorf("encode action items: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO meetings(id, title, platform, started_at, summary, topics, action_items, send_status, sent_with)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 platform=excluded.platform,
	 started_at=excluded.started_at,
	 summary=excluded.summary,
	 topics=excluded.topics,
	 action_items=excluded.action_items,
	 send_status=excluded.send_status,
	 sent_with=excluded.sent_with;
	`, m.ID, m.Title, m.Platform, m.StartedAt, m.Summary, string(topics), string(items), m.SendStatus, m.SentWith)
	return err
}

func (r *MeetingRepo) List(ctx context.Context) ([]meeting.Meeting, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, platform, started_at, summary, topics, action_items, send_status, sent_with
	FROM meetings ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []meeting.Meeting
	for rows.Next() {
		var m meeting.Meeting
		var topics, items string
		if err := rows.Scan(&m.ID, &m.Title, &m.Platform, &m.StartedAt, &m.Summary, &topics, &items, &m.SendStatus, &m.SentWith); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(topics), &m.Topics); err != nil {
			return nil, fmt.Errorf("decode topics for %s: %w", m.ID, err)
		}
		if err := json.Unmarshal([]byte(items), &m.ActionItems); err != nil {
			return nil, fmt.Errorf("decode action items for %s: %w", m.ID, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SetSendStatus updates a meeting's distribution state and the format it
// was sent with.
func (r *MeetingRepo) SetSendStatus(ctx context.Context, id, status, formatID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE meetings SET send_status = ?, sent_with = ? WHERE id = ?`, status, formatID, id)
	return err
}

func (r *MeetingRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM meetings`).Scan(&n)
	return n, err
}

// SeedSamples inserts the sample meetings into an empty table. It is
// idempotent and safe to run on every startup.
func (r *MeetingRepo) SeedSamples(ctx context.Context) error {
	n, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, m := range meeting.SampleMeetings() {
		if err := r.Upsert(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
