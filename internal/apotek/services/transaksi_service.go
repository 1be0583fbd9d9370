package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/apotek/models"
)

var (
	// ErrStokKurang menandakan stok obat tidak cukup untuk quantity diminta.
	ErrStokKurang = errors.New("stok obat tidak mencukupi")
	// ErrTransaksiNotFound menandakan transaksi dengan id tersebut tidak ada.
	ErrTransaksiNotFound = errors.New("transaksi tidak ditemukan")
)

type TransaksiService struct {
	DB *sqlx.DB
}

func NewTransaksiService(db *sqlx.DB) *TransaksiService {
	return &TransaksiService{DB: db}
}

// Create membuat header transaksi dengan timestamp server.
func (s *TransaksiService) Create(namaPembeli string, totalHarga int) (int64, error) {
	res, err := s.DB.Exec(
		"INSERT INTO transaksi (tanggal, nama_pembeli, total_harga) VALUES (?, ?, ?)",
		time.Now(), namaPembeli, totalHarga,
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaksi gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gagal membaca id transaksi baru: %w", err)
	}
	return id, nil
}

// AddDetail menyisipkan item penjualan dan mengurangi stok obat dalam satu
// transaksi database. Pengurangan hanya terjadi bila stok masih cukup;
// kalau tidak, keduanya di-rollback.
func (s *TransaksiService) AddDetail(transaksiID, obatID, quantity, harga int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("gagal memulai transaksi db: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec(
		"INSERT INTO detail_transaksi (transaksi_id, obat_id, quantity, harga) VALUES (?, ?, ?, ?)",
		transaksiID, obatID, quantity, harga,
	)
	if err != nil {
		return fmt.Errorf("insert detail transaksi gagal: %w", err)
	}

	res, err := tx.Exec(
		"UPDATE obat SET jumlah = jumlah - ? WHERE id = ? AND jumlah >= ?",
		quantity, obatID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stok obat gagal: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("gagal membaca affected rows: %w", err)
	}
	if rows == 0 {
		err = ErrStokKurang
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit detail transaksi gagal: %w", err)
	}
	return nil
}

// List mengambil seluruh header transaksi.
func (s *TransaksiService) List() ([]models.Transaksi, error) {
	list := []models.Transaksi{}
	err := s.DB.Select(&list,
		"SELECT id, tanggal, nama_pembeli, total_harga FROM transaksi ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query transaksi gagal: %w", err)
	}
	return list, nil
}

// Get mengambil satu header transaksi berdasarkan id.
func (s *TransaksiService) Get(id int) (*models.Transaksi, error) {
	var t models.Transaksi
	err := s.DB.Get(&t,
		"SELECT id, tanggal, nama_pembeli, total_harga FROM transaksi WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, ErrTransaksiNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query transaksi gagal: %w", err)
	}
	return &t, nil
}

// ListDetails mengambil seluruh item penjualan berikut nama obatnya.
func (s *TransaksiService) ListDetails() ([]models.DetailTransaksi, error) {
	list := []models.DetailTransaksi{}
	err := s.DB.Select(&list, `
		SELECT dt.id, dt.transaksi_id, dt.obat_id, dt.quantity, dt.harga, o.nama_obat
		FROM detail_transaksi dt
		LEFT JOIN obat o ON dt.obat_id = o.id
		ORDER BY dt.id`)
	if err != nil {
		return nil, fmt.Errorf("query detail transaksi gagal: %w", err)
	}
	return list, nil
}

// DetailsByTransaksi mengambil item penjualan milik satu transaksi.
func (s *TransaksiService) DetailsByTransaksi(transaksiID int) ([]models.DetailTransaksi, error) {
	list := []models.DetailTransaksi{}
	err := s.DB.Select(&list, `
		SELECT dt.id, dt.transaksi_id, dt.obat_id, dt.quantity, dt.harga, o.nama_obat
		FROM detail_transaksi dt
		LEFT JOIN obat o ON dt.obat_id = o.id
		WHERE dt.transaksi_id = ?
		ORDER BY dt.id`, transaksiID)
	if err != nil {
		return nil, fmt.Errorf("query detail transaksi gagal: %w", err)
	}
	return list, nil
}
