package services

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/pasien/models"
)

// ErrNotFound menandakan baris yang dituju tidak ada.
var ErrNotFound = errors.New("data tidak ditemukan")

type PasienService struct {
	DB *sqlx.DB
}

func NewPasienService(db *sqlx.DB) *PasienService {
	return &PasienService{DB: db}
}

// Create menambahkan pasien baru. tanggalLahir dalam format YYYY-MM-DD.
func (s *PasienService) Create(noMedrek, nama, tanggalLahir, alamat string) (int64, error) {
	res, err := s.DB.Exec(
		"INSERT INTO pasien (no_medrek, nama, tanggal_lahir, alamat) VALUES (?, ?, ?, ?)",
		noMedrek, nama, tanggalLahir, alamat,
	)
	if err != nil {
		return 0, fmt.Errorf("insert pasien gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gagal membaca id pasien baru: %w", err)
	}
	return id, nil
}

// List mengambil seluruh pasien.
func (s *PasienService) List() ([]models.Pasien, error) {
	list := []models.Pasien{}
	err := s.DB.Select(&list,
		"SELECT id, no_medrek, nama, tanggal_lahir, alamat FROM pasien ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query pasien gagal: %w", err)
	}
	return list, nil
}

// CreatePendaftaran menambahkan antrian pendaftaran dengan status "belum".
func (s *PasienService) CreatePendaftaran(nomor, nama, keluhan string) (int64, error) {
	res, err := s.DB.Exec(
		"INSERT INTO pendaftaran (nomor_pendaftaran, nama, keluhan, status) VALUES (?, ?, ?, 'belum')",
		nomor, nama, keluhan,
	)
	if err != nil {
		return 0, fmt.Errorf("insert pendaftaran gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gagal membaca id pendaftaran baru: %w", err)
	}
	return id, nil
}

// ListPendaftaran mengambil seluruh antrian pendaftaran.
func (s *PasienService) ListPendaftaran() ([]models.Pendaftaran, error) {
	list := []models.Pendaftaran{}
	err := s.DB.Select(&list,
		"SELECT id, nomor_pendaftaran, nama, keluhan, status FROM pendaftaran ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query pendaftaran gagal: %w", err)
	}
	return list, nil
}

// UpdateStatusPendaftaran mengubah status satu antrian (belum -> selesai).
func (s *PasienService) UpdateStatusPendaftaran(id int, status string) error {
	res, err := s.DB.Exec("UPDATE pendaftaran SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("update pendaftaran gagal: %w", err)
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
