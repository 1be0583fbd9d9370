package services

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/klinik/models"
)

// ErrNotFound menandakan baris yang dituju tidak ada.
var ErrNotFound = errors.New("data tidak ditemukan")

type JadwalService struct {
	DB *sqlx.DB
}

func NewJadwalService(db *sqlx.DB) *JadwalService {
	return &JadwalService{DB: db}
}

// Create menambahkan slot jadwal praktik baru.
func (s *JadwalService) Create(namaDokter, hari, jamMulai, jamSelesai string) (int64, error) {
	res, err := s.DB.Exec(
		"INSERT INTO jadwal_praktik (nama_dokter, hari, jam_mulai, jam_selesai) VALUES (?, ?, ?, ?)",
		namaDokter, hari, jamMulai, jamSelesai,
	)
	if err != nil {
		return 0, fmt.Errorf("insert jadwal praktik gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gagal membaca id jadwal baru: %w", err)
	}
	return id, nil
}

// List mengambil seluruh slot jadwal praktik.
func (s *JadwalService) List() ([]models.JadwalPraktik, error) {
	list := []models.JadwalPraktik{}
	err := s.DB.Select(&list,
		"SELECT id, nama_dokter, hari, jam_mulai, jam_selesai FROM jadwal_praktik ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query jadwal praktik gagal: %w", err)
	}
	return list, nil
}

// Update mengganti seluruh field satu slot jadwal.
func (s *JadwalService) Update(id int, namaDokter, hari, jamMulai, jamSelesai string) error {
	res, err := s.DB.Exec(
		"UPDATE jadwal_praktik SET nama_dokter = ?, hari = ?, jam_mulai = ?, jam_selesai = ? WHERE id = ?",
		namaDokter, hari, jamMulai, jamSelesai, id,
	)
	if err != nil {
		return fmt.Errorf("update jadwal praktik gagal: %w", err)
	}
	return cekAffected(res.RowsAffected())
}

// Delete menghapus satu slot jadwal; ErrNotFound bila tidak ada yang terhapus.
func (s *JadwalService) Delete(id int) error {
	res, err := s.DB.Exec("DELETE FROM jadwal_praktik WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete jadwal praktik gagal: %w", err)
	}
	return cekAffected(res.RowsAffected())
}

func cekAffected(rows int64, err error) error {
	if err != nil {
		return fmt.Errorf("gagal membaca affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
