package models

// JadwalPraktik adalah satu slot jadwal praktik dokter.
type JadwalPraktik struct {
	ID         int    `db:"id" json:"id"`
	NamaDokter string `db:"nama_dokter" json:"nama_dokter"`
	Hari       string `db:"hari" json:"hari"`
	JamMulai   string `db:"jam_mulai" json:"jam_mulai"`
	JamSelesai string `db:"jam_selesai" json:"jam_selesai"`
}

// Ruangan adalah satu ruangan klinik beserta status ketersediaannya.
type Ruangan struct {
	ID          int    `db:"id" json:"id"`
	NamaRuangan string `db:"nama_ruangan" json:"nama_ruangan"`
	Status      string `db:"status" json:"status"`
}
