package audit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db), mock
}

func TestCreate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO flagged_messages").
		WithArgs(sqlmock.AnyArg(), "sess-1", "chat-1", "phone_digits", "goi 0912345678").
		WillReturnResult(sqlmock.NewResult(0, 1))

	fm := &FlaggedMessage{
		SessionID: "sess-1",
		ChatID:    "chat-1",
		Reason:    "phone_digits",
		Text:      "goi 0912345678",
	}
	if err := store.Create(context.Background(), fm); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if fm.ID == uuid.Nil {
		t.Error("Create() did not assign an ID")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_InvalidReason(t *testing.T) {
	store, mock := newMockStore(t)

	fm := &FlaggedMessage{
		SessionID: "sess-1",
		ChatID:    "chat-1",
		Reason:    "profanity",
		Text:      "whatever",
	}
	if err := store.Create(context.Background(), fm); err == nil {
		t.Fatal("Create() accepted an invalid reason")
	}

	// No SQL must have been issued.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected SQL: %v", err)
	}
}

func TestRecentBySession(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "session_id", "chat_id", "reason", "message", "created_at"}).
		AddRow(uuid.New().String(), "sess-1", "chat-2", "link", "www.example.com", now).
		AddRow(uuid.New().String(), "sess-1", "chat-1", "social_media", "zalo nhe", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, session_id, chat_id, reason, message, created_at").
		WithArgs("sess-1", 10).
		WillReturnRows(rows)

	got, err := store.RecentBySession(context.Background(), "sess-1", 10)
	if err != nil {
		t.Fatalf("RecentBySession() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].Reason != "link" || got[1].Reason != "social_media" {
		t.Errorf("rows out of order: %q then %q", got[0].Reason, got[1].Reason)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCountByReason(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"reason", "count"}).
		AddRow("phone_digits", 12).
		AddRow("social_media", 5)

	mock.ExpectQuery("SELECT reason, COUNT").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	counts, err := store.CountByReason(context.Background(), time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("CountByReason() error: %v", err)
	}
	if counts["phone_digits"] != 12 || counts["social_media"] != 5 {
		t.Errorf("unexpected counts: %v", counts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
