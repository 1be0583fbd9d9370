package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/apotek/models"
)

type ObatService struct {
	DB *sqlx.DB
}

func NewObatService(db *sqlx.DB) *ObatService {
	return &ObatService{DB: db}
}

// List mengambil seluruh obat; jenis kosong berarti tanpa filter.
func (s *ObatService) List(jenis string) ([]models.Obat, error) {
	list := []models.Obat{}
	var err error
	if jenis == "" {
		err = s.DB.Select(&list, "SELECT id, nama_obat, jumlah, harga, jenis FROM obat ORDER BY id")
	} else {
		err = s.DB.Select(&list,
			"SELECT id, nama_obat, jumlah, harga, jenis FROM obat WHERE jenis = ? ORDER BY id", jenis)
	}
	if err != nil {
		return nil, fmt.Errorf("query obat gagal: %w", err)
	}
	return list, nil
}

// Create menambah obat baru dan mengembalikan id barisnya.
func (s *ObatService) Create(namaObat string, jumlah, harga int) (int64, error) {
	res, err := s.DB.Exec(
		"INSERT INTO obat (nama_obat, jumlah, harga) VALUES (?, ?, ?)",
		namaObat, jumlah, harga,
	)
	if err != nil {
		return 0, fmt.Errorf("insert obat gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gagal membaca id obat baru: %w", err)
	}
	return id, nil
}

// Update mengganti ketiga field obat sekaligus (dipakai PUT /obat/:id dan
// PATCH /transaksiobat/:id).
func (s *ObatService) Update(id int, namaObat string, jumlah, harga int) error {
	_, err := s.DB.Exec(
		"UPDATE obat SET nama_obat = ?, jumlah = ?, harga = ? WHERE id = ?",
		namaObat, jumlah, harga, id,
	)
	if err != nil {
		return fmt.Errorf("update obat gagal: %w", err)
	}
	return nil
}

// Delete menghapus obat tanpa cek eksistensi, mengikuti perilaku lama.
func (s *ObatService) Delete(id int) error {
	if _, err := s.DB.Exec("DELETE FROM obat WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete obat gagal: %w", err)
	}
	return nil
}
