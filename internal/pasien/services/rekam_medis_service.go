package services

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/klinikkartika/klinik-backend/internal/pasien/models"
)

type RekamMedisService struct {
	DB *sqlx.DB
}

func NewRekamMedisService(db *sqlx.DB) *RekamMedisService {
	return &RekamMedisService{DB: db}
}

// RekamMedisInput adalah isian lengkap satu kunjungan.
type RekamMedisInput struct {
	IDPasien         int    `json:"id_pasien"`
	TanggalKunjungan string `json:"tanggal_kunjungan"`
	TD               string `json:"td"`
	N                string `json:"n"`
	R                string `json:"r"`
	S                string `json:"s"`
	BB               string `json:"bb"`
	TB               string `json:"tb"`
	LK               string `json:"lk"`
	Subjective       string `json:"subjective"`
	Assessment       string `json:"assessment"`
	Plan             string `json:"plan"`
	Keterangan       string `json:"keterangan"`
}

// Create menyimpan satu rekam medis kunjungan lengkap.
func (s *RekamMedisService) Create(in RekamMedisInput) (int64, error) {
	res, err := s.DB.Exec(`
		INSERT INTO rm_pasien
			(id_pasien, tanggal_kunjungan, td, n, r, s, bb, tb, lk,
			 subjective, assessment, plan, keterangan)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.IDPasien, in.TanggalKunjungan, in.TD, in.N, in.R, in.S,
		in.BB, in.TB, in.LK, in.Subjective, in.Assessment, in.Plan, in.Keterangan,
	)
	if err != nil {
		return 0, fmt.Errorf("insert rekam medis gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gagal membaca id rekam medis baru: %w", err)
	}
	return id, nil
}

// List mengambil seluruh rekam medis.
func (s *RekamMedisService) List() ([]models.RmPasien, error) {
	list := []models.RmPasien{}
	err := s.DB.Select(&list, `
		SELECT id, id_pasien, tanggal_kunjungan, td, n, r, s, bb, tb, lk,
		       subjective, assessment, plan, keterangan
		FROM rm_pasien ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query rekam medis gagal: %w", err)
	}
	return list, nil
}

// Get mengambil satu rekam medis berdasarkan id.
func (s *RekamMedisService) Get(id int) (*models.RmPasien, error) {
	var rm models.RmPasien
	err := s.DB.Get(&rm, `
		SELECT id, id_pasien, tanggal_kunjungan, td, n, r, s, bb, tb, lk,
		       subjective, assessment, plan, keterangan
		FROM rm_pasien WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query rekam medis gagal: %w", err)
	}
	return &rm, nil
}

// ListToday mengambil kunjungan hari ini. Filternya memakai CURDATE()
// di sisi server database, tanpa menyusun string tanggal sendiri.
func (s *RekamMedisService) ListToday() ([]models.RmPasien, error) {
	list := []models.RmPasien{}
	err := s.DB.Select(&list, `
		SELECT id, id_pasien, tanggal_kunjungan, td, n, r, s, bb, tb, lk,
		       subjective, assessment, plan, keterangan
		FROM rm_pasien
		WHERE DATE(tanggal_kunjungan) = CURDATE()
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query kunjungan hari ini gagal: %w", err)
	}
	return list, nil
}

// CountPerBulan menghitung jumlah kunjungan per bulan.
func (s *RekamMedisService) CountPerBulan() ([]models.KunjunganBulanan, error) {
	list := []models.KunjunganBulanan{}
	err := s.DB.Select(&list, `
		SELECT DATE_FORMAT(tanggal_kunjungan, '%Y-%m') AS bulan, COUNT(*) AS jumlah
		FROM rm_pasien
		GROUP BY DATE_FORMAT(tanggal_kunjungan, '%Y-%m')
		ORDER BY bulan`)
	if err != nil {
		return nil, fmt.Errorf("query kunjungan per bulan gagal: %w", err)
	}
	return list, nil
}

// CreateTindakanPasien menagihkan satu tindakan ke sebuah kunjungan.
func (s *RekamMedisService) CreateTindakanPasien(idRmPasien, idTindakan, harga, jumlah int) (int64, error) {
	res, err := s.DB.Exec(
		"INSERT INTO tnd_pasien (id_rm_pasien, id_tindakan, harga, jumlah) VALUES (?, ?, ?, ?)",
		idRmPasien, idTindakan, harga, jumlah,
	)
	if err != nil {
		return 0, fmt.Errorf("insert tindakan pasien gagal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gagal membaca id tindakan pasien baru: %w", err)
	}
	return id, nil
}

// ListTindakanPasien mengambil seluruh tindakan tertagih beserta nama
// tindakan dan rekam medisnya.
func (s *RekamMedisService) ListTindakanPasien() ([]models.TndPasien, error) {
	list := []models.TndPasien{}
	err := s.DB.Select(&list, `
		SELECT tp.id, tp.id_rm_pasien, tp.id_tindakan, tp.harga, tp.jumlah,
		       t.nama_tindakan
		FROM tnd_pasien tp
		JOIN rm_pasien rm ON tp.id_rm_pasien = rm.id
		JOIN tindakan t ON tp.id_tindakan = t.id
		ORDER BY tp.id`)
	if err != nil {
		return nil, fmt.Errorf("query tindakan pasien gagal: %w", err)
	}
	return list, nil
}

// TindakanByRekamMedis mengambil tindakan tertagih milik satu kunjungan.
func (s *RekamMedisService) TindakanByRekamMedis(idRmPasien int) ([]models.TndPasien, error) {
	list := []models.TndPasien{}
	err := s.DB.Select(&list, `
		SELECT tp.id, tp.id_rm_pasien, tp.id_tindakan, tp.harga, tp.jumlah,
		       t.nama_tindakan
		FROM tnd_pasien tp
		JOIN tindakan t ON tp.id_tindakan = t.id
		WHERE tp.id_rm_pasien = ?
		ORDER BY tp.id`, idRmPasien)
	if err != nil {
		return nil, fmt.Errorf("query tindakan pasien gagal: %w", err)
	}
	return list, nil
}

// ListTindakan mengambil master tindakan.
func (s *RekamMedisService) ListTindakan() ([]models.Tindakan, error) {
	list := []models.Tindakan{}
	err := s.DB.Select(&list,
		"SELECT id, nama_tindakan, harga FROM tindakan ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query tindakan gagal: %w", err)
	}
	return list, nil
}
