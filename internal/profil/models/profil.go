package models

// Profil adalah baris salah satu tabel profil per-role
// (admin, dokter, apoteker, perawat, pemilik). Kelima tabel berkolom sama.
type Profil struct {
	ID       int    `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Role     string `db:"role" json:"role"`
	Nama     string `db:"nama" json:"nama"`
	NoTelp   string `db:"no_telp" json:"no_telp"`
	Alamat   string `db:"alamat" json:"alamat"`
}
