package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestJadwalDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewJadwalService(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM jadwal_praktik WHERE id = ?")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.Delete(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJadwalDelete(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewJadwalService(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM jadwal_praktik WHERE id = ?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJadwalUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewJadwalService(db)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE jadwal_praktik SET nama_dokter = ?, hari = ?, jam_mulai = ?, jam_selesai = ? WHERE id = ?")).
		WithArgs("dr. Sari", "Senin", "08:00", "12:00", 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.Update(42, "dr. Sari", "Senin", "08:00", "12:00"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRuanganCreate_DefaultStatus(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewRuanganService(db)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO ruangan (nama_ruangan, status) VALUES (?, 'tersedia')")).
		WithArgs("Ruang Periksa 2").
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := s.Create("Ruang Periksa 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Errorf("expected id 5, got %d", id)
	}
}

func TestRuanganUpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewRuanganService(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ruangan SET status = ? WHERE id = ?")).
		WithArgs("dipakai", 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.UpdateStatus(42, "dipakai"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
