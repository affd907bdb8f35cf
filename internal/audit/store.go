// Package audit provides PostgreSQL-backed storage for rejected chat
// messages. Each row captures who tried to send what, in which chat, and
// why the screener refused it, for moderator review and appeal handling.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// validReasons mirrors the CHECK constraint on the flagged_messages table.
var validReasons = map[string]bool{
	"social_media": true,
	"link":         true,
	"phone_digits": true,
	"phone_words":  true,
}

// Store manages flagged messages in PostgreSQL.
type Store struct {
	db *sql.DB
}

// FlaggedMessage is one rejected message as persisted for review.
type FlaggedMessage struct {
	ID        uuid.UUID
	SessionID string
	ChatID    string
	Reason    string
	Text      string
	CreatedAt time.Time
}

// NewStore creates a new audit store backed by the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create inserts a flagged message. The reason is validated against the
// allowed set before insertion; the row ID is generated here and returned
// via the passed struct.
func (s *Store) Create(ctx context.Context, fm *FlaggedMessage) error {
	if !validReasons[fm.Reason] {
		return fmt.Errorf("audit: invalid reason %q", fm.Reason)
	}
	if fm.ID == uuid.Nil {
		fm.ID = uuid.New()
	}

	const query = `
		INSERT INTO flagged_messages (id, session_id, chat_id, reason, message)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		fm.ID,
		fm.SessionID,
		fm.ChatID,
		fm.Reason,
		fm.Text,
	)
	if err != nil {
		return fmt.Errorf("audit: insert: %w", err)
	}
	return nil
}

// RecentBySession returns the newest flagged messages for one sender,
// newest first, capped at limit.
func (s *Store) RecentBySession(ctx context.Context, sessionID string, limit int) ([]FlaggedMessage, error) {
	const query = `
		SELECT id, session_id, chat_id, reason, message, created_at
		FROM flagged_messages
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: query recent: %w", err)
	}
	defer rows.Close()

	var out []FlaggedMessage
	for rows.Next() {
		var fm FlaggedMessage
		if err := rows.Scan(&fm.ID, &fm.SessionID, &fm.ChatID, &fm.Reason, &fm.Text, &fm.CreatedAt); err != nil {
			return nil, fmt.Errorf("audit: scan: %w", err)
		}
		out = append(out, fm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: rows: %w", err)
	}
	return out, nil
}

// CountByReason returns how many messages were flagged per reason since the
// given time, for moderator dashboards.
func (s *Store) CountByReason(ctx context.Context, since time.Time) (map[string]int, error) {
	const query = `
		SELECT reason, COUNT(*)
		FROM flagged_messages
		WHERE created_at >= $1
		GROUP BY reason`

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("audit: query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, fmt.Errorf("audit: scan count: %w", err)
		}
		counts[reason] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: rows: %w", err)
	}
	return counts, nil
}
