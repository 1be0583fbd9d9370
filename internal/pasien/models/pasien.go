package models

import "time"

// Pasien adalah data induk pasien klinik.
type Pasien struct {
	ID           int       `db:"id" json:"id"`
	NoMedrek     string    `db:"no_medrek" json:"no_medrek"`
	Nama         string    `db:"nama" json:"nama"`
	TanggalLahir time.Time `db:"tanggal_lahir" json:"tanggal_lahir"`
	Alamat       string    `db:"alamat" json:"alamat"`
}

// Pendaftaran adalah satu antrian pendaftaran; status default "belum".
type Pendaftaran struct {
	ID               int    `db:"id" json:"id"`
	NomorPendaftaran string `db:"nomor_pendaftaran" json:"nomor_pendaftaran"`
	Nama             string `db:"nama" json:"nama"`
	Keluhan          string `db:"keluhan" json:"keluhan"`
	Status           string `db:"status" json:"status"`
}
