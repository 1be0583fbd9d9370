package session

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewStore(sqlx.NewDb(mockDB, "sqlmock"), zerolog.Nop()), mock
}

func TestStore_Create(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO sessions (session_id, expires, data) VALUES (?, ?, ?)")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := store.Create(Identity{ID: 3, Username: "budi", Role: "dokter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Error("expected a non-empty session id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStore_Get_RefreshesExpiry(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT data FROM sessions WHERE session_id = ? AND expires > NOW()")).
		WithArgs("sid-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).
			AddRow([]byte(`{"id":3,"username":"budi","role":"dokter"}`)))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE sessions SET expires = ? WHERE session_id = ?")).
		WithArgs(sqlmock.AnyArg(), "sid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ident, err := store.Get("sid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ident.ID != 3 || ident.Username != "budi" || ident.Role != "dokter" {
		t.Errorf("unexpected identity: %+v", ident)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStore_Get_Expired(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT data FROM sessions WHERE session_id = ? AND expires > NOW()")).
		WithArgs("sid-lama").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := store.Get("sid-lama")
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestStore_Destroy_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM sessions WHERE session_id = ?")).
		WithArgs("tidak-ada").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.Destroy("tidak-ada"); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestStore_Destroy(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM sessions WHERE session_id = ?")).
		WithArgs("sid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Destroy("sid-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
