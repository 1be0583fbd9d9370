package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockService(t *testing.T) (*ProfilService, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewProfilService(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestUpdate_OnlySuppliedColumns(t *testing.T) {
	s, mock := newMockService(t)

	// Body parsial: hanya nama dan alamat; kolom lain tidak boleh tersentuh.
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE dokter SET nama = ?, alamat = ? WHERE id = ?")).
		WithArgs("dr. Sari", "Jl. Melati 5", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Update("dokter", 7, map[string]interface{}{
		"nama":   "dr. Sari",
		"alamat": "Jl. Melati 5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdate_RejectsUnknownColumn(t *testing.T) {
	s, _ := newMockService(t)

	err := s.Update("admin", 1, map[string]interface{}{
		"nama": "x",
		"role": "pemilik", // bukan kolom yang boleh diubah lewat profil
	})
	if !errors.Is(err, ErrKolomTidakDikenal) {
		t.Errorf("expected ErrKolomTidakDikenal, got %v", err)
	}
}

func TestUpdate_EmptyBody(t *testing.T) {
	s, _ := newMockService(t)

	if err := s.Update("perawat", 2, map[string]interface{}{}); !errors.Is(err, ErrTidakAdaKolom) {
		t.Errorf("expected ErrTidakAdaKolom, got %v", err)
	}
}

func TestUpdate_UnknownRole(t *testing.T) {
	s, _ := newMockService(t)

	if err := s.Update("hacker", 1, map[string]interface{}{"nama": "x"}); !errors.Is(err, ErrRoleTidakDikenal) {
		t.Errorf("expected ErrRoleTidakDikenal, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE apoteker SET nama = ? WHERE id = ?")).
		WithArgs("x", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.Update("apoteker", 99, map[string]interface{}{"nama": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByUsername(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, username, role, nama, no_telp, alamat FROM pemilik WHERE username = ?")).
		WithArgs("owner1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "role", "nama", "no_telp", "alamat"}).
			AddRow(1, "owner1", "pemilik", "Pak Dedi", "0812", "Bandung"))

	p, err := s.GetByUsername("pemilik", "owner1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Nama != "Pak Dedi" || p.Role != "pemilik" {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, username, role, nama, no_telp, alamat FROM admin WHERE username = ?")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role", "nama", "no_telp", "alamat"}))

	if _, err := s.GetByUsername("admin", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestChangePassword_TargetsUsersTable(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET password = ? WHERE id = ?")).
		WithArgs("baru123", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.ChangePassword(7, "baru123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestChangePassword_NotFound(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET password = ? WHERE id = ?")).
		WithArgs("baru123", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.ChangePassword(99, "baru123"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
