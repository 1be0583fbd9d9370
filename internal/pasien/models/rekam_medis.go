package models

import "time"

// RmPasien adalah rekam medis satu kunjungan: tanda vital + catatan SOAP.
type RmPasien struct {
	ID               int       `db:"id" json:"id"`
	IDPasien         int       `db:"id_pasien" json:"id_pasien"`
	TanggalKunjungan time.Time `db:"tanggal_kunjungan" json:"tanggal_kunjungan"`
	TD               string    `db:"td" json:"td"`
	N                string    `db:"n" json:"n"`
	R                string    `db:"r" json:"r"`
	S                string    `db:"s" json:"s"`
	BB               string    `db:"bb" json:"bb"`
	TB               string    `db:"tb" json:"tb"`
	LK               string    `db:"lk" json:"lk"`
	Subjective       string    `db:"subjective" json:"subjective"`
	Assessment       string    `db:"assessment" json:"assessment"`
	Plan             string    `db:"plan" json:"plan"`
	Keterangan       string    `db:"keterangan" json:"keterangan"`
}

// Tindakan adalah master tindakan medis yang bisa ditagihkan.
type Tindakan struct {
	ID           int    `db:"id" json:"id"`
	NamaTindakan string `db:"nama_tindakan" json:"nama_tindakan"`
	Harga        int    `db:"harga" json:"harga"`
}

// TndPasien adalah tindakan yang ditagihkan ke satu kunjungan.
// NamaTindakan terisi dari join ke master tindakan.
type TndPasien struct {
	ID           int     `db:"id" json:"id"`
	IDRmPasien   int     `db:"id_rm_pasien" json:"id_rm_pasien"`
	IDTindakan   int     `db:"id_tindakan" json:"id_tindakan"`
	Harga        int     `db:"harga" json:"harga"`
	Jumlah       int     `db:"jumlah" json:"jumlah"`
	NamaTindakan *string `db:"nama_tindakan" json:"nama_tindakan,omitempty"`
}

// KunjunganBulanan adalah agregat jumlah kunjungan per bulan.
type KunjunganBulanan struct {
	Bulan  string `db:"bulan" json:"bulan"`
	Jumlah int    `db:"jumlah" json:"jumlah"`
}
