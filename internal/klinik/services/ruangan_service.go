package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/klinik/models"
)

type RuanganService struct {
	DB *sqlx.DB
}

func NewRuanganService(db *sqlx.DB) *RuanganService {
	return &RuanganService{DB: db}
}

// List mengambil seluruh ruangan.
func (s *RuanganService) List() ([]models.Ruangan, error) {
	list := []models.Ruangan{}
	err := s.DB.Select(&list,
		"SELECT id, nama_ruangan, status FROM ruangan ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query ruangan gagal: %w", err)
	}
	return list, nil
}

// Create menambahkan ruangan baru dengan status awal tersedia.
func (s *RuanganService) Create(namaRuangan string) (int64, error) {
	res, err := s.DB.Exec(
		"INSERT INTO ruangan (nama_ruangan, status) VALUES (?, 'tersedia')", namaRuangan)
	if err != nil {
		return 0, fmt.Errorf("insert ruangan gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gagal membaca id ruangan baru: %w", err)
	}
	return id, nil
}

// Update mengganti nama dan status ruangan.
func (s *RuanganService) Update(id int, namaRuangan, status string) error {
	res, err := s.DB.Exec(
		"UPDATE ruangan SET nama_ruangan = ?, status = ? WHERE id = ?",
		namaRuangan, status, id,
	)
	if err != nil {
		return fmt.Errorf("update ruangan gagal: %w", err)
	}
	return cekAffected(res.RowsAffected())
}

// UpdateStatus hanya mengganti status ketersediaan ruangan.
func (s *RuanganService) UpdateStatus(id int, status string) error {
	res, err := s.DB.Exec("UPDATE ruangan SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("update status ruangan gagal: %w", err)
	}
	return cekAffected(res.RowsAffected())
}

// Delete menghapus satu ruangan.
func (s *RuanganService) Delete(id int) error {
	res, err := s.DB.Exec("DELETE FROM ruangan WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete ruangan gagal: %w", err)
	}
	return cekAffected(res.RowsAffected())
}
