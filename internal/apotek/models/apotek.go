package models

import "time"

// Obat adalah satu item stok obat; jumlah berkurang saat terjual.
type Obat struct {
	ID       int    `db:"id" json:"id"`
	NamaObat string `db:"nama_obat" json:"nama_obat"`
	Jumlah   int    `db:"jumlah" json:"jumlah"`
	Harga    int    `db:"harga" json:"harga"`
	Jenis    string `db:"jenis" json:"jenis"`
}

// Transaksi adalah header satu penjualan.
type Transaksi struct {
	ID          int       `db:"id" json:"id"`
	Tanggal     time.Time `db:"tanggal" json:"tanggal"`
	NamaPembeli string    `db:"nama_pembeli" json:"nama_pembeli"`
	TotalHarga  int       `db:"total_harga" json:"total_harga"`
}

// DetailTransaksi adalah satu baris item penjualan. NamaObat terisi dari
// LEFT JOIN ke obat; pointer karena obat bisa sudah terhapus.
type DetailTransaksi struct {
	ID          int     `db:"id" json:"id"`
	TransaksiID int     `db:"transaksi_id" json:"transaksi_id"`
	ObatID      int     `db:"obat_id" json:"obat_id"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Harga       int     `db:"harga" json:"harga"`
	NamaObat    *string `db:"nama_obat" json:"nama_obat,omitempty"`
}
