package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/internal/apotek/services"
	"github.com/klinikkartika/klinik-backend/pkg/utils"
)

type TransaksiController struct {
	Service *services.TransaksiService
	Log     zerolog.Logger
}

func NewTransaksiController(service *services.TransaksiService, log zerolog.Logger) *TransaksiController {
	return &TransaksiController{Service: service, Log: log}
}

// Create menangani POST /transaksi: header penjualan baru dengan timestamp
// server.
func (tc *TransaksiController) Create(c echo.Context) error {
	var req struct {
		NamaPembeli string      `json:"nama_pembeli"`
		TotalHarga  interface{} `json:"total_harga"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	totalHarga, err := utils.ToInt(req.TotalHarga)
	if req.NamaPembeli == "" || err != nil || totalHarga == 0 {
		return utils.Fail(c, http.StatusBadRequest, "Invalid data received.")
	}

	id, err := tc.Service.Create(req.NamaPembeli, totalHarga)
	if err != nil {
		tc.Log.Error().Err(err).Str("endpoint", "POST /transaksi").Msg("gagal membuat transaksi")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusCreated, map[string]interface{}{
		"id":      id,
		"message": "Transaksi berhasil dibuat.",
	})
}

// AddDetail menangani POST /detail_transaksi: item penjualan + pengurangan
// stok dalam satu transaksi database.
func (tc *TransaksiController) AddDetail(c echo.Context) error {
	var req struct {
		TransaksiID int `json:"transaksi_id"`
		ObatID      int `json:"obat_id"`
		Quantity    int `json:"quantity"`
		Harga       int `json:"harga"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.TransaksiID == 0 || req.ObatID == 0 || req.Quantity == 0 || req.Harga == 0 {
		return utils.Fail(c, http.StatusBadRequest, "Invalid data received.")
	}

	err := tc.Service.AddDetail(req.TransaksiID, req.ObatID, req.Quantity, req.Harga)
	if errors.Is(err, services.ErrStokKurang) {
		return utils.Fail(c, http.StatusBadRequest, "Stok obat tidak mencukupi.")
	}
	if err != nil {
		tc.Log.Error().Err(err).Str("endpoint", "POST /detail_transaksi").Msg("gagal membuat detail transaksi")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusCreated, "Detail transaksi berhasil dibuat.")
}

// ListFormatted menangani GET /datatransaksi: seluruh transaksi dengan
// tanggal dalam format panjang Indonesia.
func (tc *TransaksiController) ListFormatted(c echo.Context) error {
	list, err := tc.Service.List()
	if err != nil {
		tc.Log.Error().Err(err).Str("endpoint", "GET /datatransaksi").Msg("gagal mengambil transaksi")
		return utils.Internal(c)
	}

	formatted := make([]map[string]interface{}, 0, len(list))
	for _, t := range list {
		formatted = append(formatted, map[string]interface{}{
			"id":           t.ID,
			"tanggal":      utils.FormatTanggal(t.Tanggal),
			"nama_pembeli": t.NamaPembeli,
			"total_harga":  t.TotalHarga,
		})
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"transaksi": formatted})
}

// ListAll menangani GET /getalltransaksi: transaksi apa adanya.
func (tc *TransaksiController) ListAll(c echo.Context) error {
	list, err := tc.Service.List()
	if err != nil {
		tc.Log.Error().Err(err).Str("endpoint", "GET /getalltransaksi").Msg("gagal mengambil transaksi")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"transaksi": list})
}

// Get menangani GET /transaksi/:id.
func (tc *TransaksiController) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	t, err := tc.Service.Get(id)
	if errors.Is(err, services.ErrTransaksiNotFound) {
		return utils.Fail(c, http.StatusNotFound, "Transaksi not found")
	}
	if err != nil {
		tc.Log.Error().Err(err).Str("endpoint", "GET /transaksi/:id").Msg("gagal mengambil transaksi")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"transaksi": t})
}

// ListDetails menangani GET /detail_transaksi: seluruh item penjualan
// berikut nama obatnya.
func (tc *TransaksiController) ListDetails(c echo.Context) error {
	list, err := tc.Service.ListDetails()
	if err != nil {
		tc.Log.Error().Err(err).Str("endpoint", "GET /detail_transaksi").Msg("gagal mengambil detail transaksi")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"detail_transaksi": list})
}

// DetailsByID menangani GET /detailtransaksi/:id: item milik satu transaksi.
func (tc *TransaksiController) DetailsByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	list, err := tc.Service.DetailsByTransaksi(id)
	if err != nil {
		tc.Log.Error().Err(err).Str("endpoint", "GET /detailtransaksi/:id").Msg("gagal mengambil detail transaksi")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"detail_transaksi": list})
}
