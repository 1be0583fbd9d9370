package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/profil/models"
)

var (
	// ErrNotFound menandakan tidak ada baris yang cocok atau terpengaruh.
	ErrNotFound = errors.New("profil tidak ditemukan")
	// ErrRoleTidakDikenal menandakan nama role di luar lima tabel profil.
	ErrRoleTidakDikenal = errors.New("role tidak dikenal")
	// ErrKolomTidakDikenal menandakan body update memuat kolom di luar allow-list.
	ErrKolomTidakDikenal = errors.New("kolom tidak dikenal")
	// ErrTidakAdaKolom menandakan body update tidak memuat satu pun kolom yang diizinkan.
	ErrTidakAdaKolom = errors.New("tidak ada kolom yang diperbarui")
)

// tabelRole membatasi nama tabel yang boleh disisipkan ke query.
var tabelRole = map[string]bool{
	"admin":    true,
	"dokter":   true,
	"apoteker": true,
	"perawat":  true,
	"pemilik":  true,
}

// kolomDiizinkan adalah allow-list kolom untuk update profil, dalam urutan
// tetap supaya SET clause deterministik.
var kolomDiizinkan = []string{"username", "nama", "no_telp", "alamat"}

type ProfilService struct {
	DB *sqlx.DB
}

func NewProfilService(db *sqlx.DB) *ProfilService {
	return &ProfilService{DB: db}
}

// GetByUsername mengambil satu baris profil berdasarkan username.
func (s *ProfilService) GetByUsername(role, username string) (*models.Profil, error) {
	if !tabelRole[role] {
		return nil, ErrRoleTidakDikenal
	}

	var p models.Profil
	query := fmt.Sprintf(
		"SELECT id, username, role, nama, no_telp, alamat FROM %s WHERE username = ?", role)
	err := s.DB.Get(&p, query, username)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profil %s gagal: %w", role, err)
	}
	return &p, nil
}

// List mengambil seluruh baris tabel profil untuk satu role.
func (s *ProfilService) List(role string) ([]models.Profil, error) {
	if !tabelRole[role] {
		return nil, ErrRoleTidakDikenal
	}

	list := []models.Profil{}
	query := fmt.Sprintf(
		"SELECT id, username, role, nama, no_telp, alamat FROM %s ORDER BY id", role)
	if err := s.DB.Select(&list, query); err != nil {
		return nil, fmt.Errorf("query daftar %s gagal: %w", role, err)
	}
	return list, nil
}

// Update menulis hanya kolom yang dikirim klien dan ada di allow-list.
// Key di luar allow-list ditolak, bukan diabaikan.
func (s *ProfilService) Update(role string, id int, fields map[string]interface{}) error {
	if !tabelRole[role] {
		return ErrRoleTidakDikenal
	}

	diizinkan := map[string]bool{}
	for _, k := range kolomDiizinkan {
		diizinkan[k] = true
	}
	for k := range fields {
		if !diizinkan[k] {
			return fmt.Errorf("%w: %s", ErrKolomTidakDikenal, k)
		}
	}

	setClauses := []string{}
	args := []interface{}{}
	for _, k := range kolomDiizinkan {
		if v, ok := fields[k]; ok {
			setClauses = append(setClauses, k+" = ?")
			args = append(args, v)
		}
	}
	if len(setClauses) == 0 {
		return ErrTidakAdaKolom
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", role, strings.Join(setClauses, ", "))
	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update profil %s gagal: %w", role, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("gagal membaca affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ChangePassword memperbarui password di tabel users pusat (bukan tabel
// profil) berdasarkan id user.
func (s *ProfilService) ChangePassword(id int, newPassword string) error {
	res, err := s.DB.Exec("UPDATE users SET password = ? WHERE id = ?", newPassword, id)
	if err != nil {
		return fmt.Errorf("update password gagal: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("gagal membaca affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
