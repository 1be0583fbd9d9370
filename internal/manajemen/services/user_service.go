package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/auth/models"
)

// DefaultPassword diberikan ke user baru dan dipakai saat reset.
// TODO: ganti dengan password acak sekali pakai yang dikirim lewat kanal lain.
const DefaultPassword = "password"

// ErrNotFound menandakan user dengan id tersebut tidak ada.
var ErrNotFound = errors.New("user tidak ditemukan")

type UserService struct {
	DB *sqlx.DB
}

func NewUserService(db *sqlx.DB) *UserService {
	return &UserService{DB: db}
}

// Create menambahkan user baru dengan password default dan mengembalikan
// baris yang baru dibuat.
func (s *UserService) Create(username, role string) (*models.User, error) {
	res, err := s.DB.Exec(
		"INSERT INTO users (username, role, password) VALUES (?, ?, ?)",
		username, role, DefaultPassword,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("gagal membaca id user baru: %w", err)
	}

	var user models.User
	err = s.DB.Get(&user, "SELECT id, username, password, role FROM users WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca user baru: %w", err)
	}
	return &user, nil
}

// List mengambil seluruh user; roleFilter kosong berarti tanpa filter.
func (s *UserService) List(roleFilter string) ([]models.User, error) {
	users := []models.User{}
	var err error
	if roleFilter == "" {
		err = s.DB.Select(&users, "SELECT id, username, password, role FROM users ORDER BY id")
	} else {
		err = s.DB.Select(&users,
			"SELECT id, username, password, role FROM users WHERE role = ? ORDER BY id", roleFilter)
	}
	if err != nil {
		return nil, fmt.Errorf("query users gagal: %w", err)
	}
	return users, nil
}

// Update memperbarui username dan role sekaligus.
func (s *UserService) Update(id int, username, role string) error {
	_, err := s.DB.Exec(
		"UPDATE users SET username = ?, role = ? WHERE id = ?", username, role, id)
	if err != nil {
		return fmt.Errorf("update user gagal: %w", err)
	}
	return nil
}

// Delete menghapus user setelah memastikan barisnya ada.
func (s *UserService) Delete(id int) error {
	var existing int
	err := s.DB.QueryRow("SELECT id FROM users WHERE id = ?", id).Scan(&existing)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("cek user gagal: %w", err)
	}

	if _, err := s.DB.Exec("DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete user gagal: %w", err)
	}
	return nil
}

// ResetPassword mengembalikan password ke nilai default tanpa cek eksistensi.
func (s *UserService) ResetPassword(id int) error {
	_, err := s.DB.Exec("UPDATE users SET password = ? WHERE id = ?", DefaultPassword, id)
	if err != nil {
		return fmt.Errorf("reset password gagal: %w", err)
	}
	return nil
}
