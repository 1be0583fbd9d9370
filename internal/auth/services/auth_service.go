package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/auth/models"
)

// ErrInvalidCredentials menandakan kombinasi username/password tidak cocok.
var ErrInvalidCredentials = errors.New("username atau password salah")

type AuthService struct {
	DB *sqlx.DB
}

func NewAuthService(db *sqlx.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate mencari user dengan kombinasi username+password persis.
// TODO: simpan hash bcrypt di kolom password dan bandingkan hash-nya;
// perbandingan teks polos ini warisan sistem lama.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Get(&user,
		"SELECT id, username, password, role FROM users WHERE username = ? AND password = ?",
		username, password,
	)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query login gagal: %w", err)
	}
	return &user, nil
}

// RedirectPage memetakan role ke halaman tujuan setelah login.
// Role yang tidak dikenal diarahkan ke halaman 404, bukan error.
func RedirectPage(role string) string {
	switch role {
	case "admin":
		return "/Admin"
	case "dokter":
		return "/Dokter"
	case "apoteker":
		return "/Apoteker"
	case "pemilik":
		return "/Pemilik"
	case "perawat":
		return "/Perawat"
	default:
		return "/404"
	}
}
