package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/internal/pasien/services"
	"github.com/klinikkartika/klinik-backend/pkg/utils"
)

type RekamMedisController struct {
	Service *services.RekamMedisService
	Log     zerolog.Logger
}

func NewRekamMedisController(service *services.RekamMedisService, log zerolog.Logger) *RekamMedisController {
	return &RekamMedisController{Service: service, Log: log}
}

// Simpan menangani POST /simpan-rekam-medis: satu kunjungan lengkap.
func (rc *RekamMedisController) Simpan(c echo.Context) error {
	var req services.RekamMedisInput
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.IDPasien == 0 || req.TanggalKunjungan == "" {
		return utils.Fail(c, http.StatusBadRequest, "id_pasien dan tanggal_kunjungan harus diisi.")
	}

	id, err := rc.Service.Create(req)
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "POST /simpan-rekam-medis").Msg("gagal menyimpan rekam medis")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusCreated, map[string]interface{}{"id": id})
}

// List menangani GET /rmpasien.
func (rc *RekamMedisController) List(c echo.Context) error {
	list, err := rc.Service.List()
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "GET /rmpasien").Msg("gagal mengambil rekam medis")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"rm_pasien": list})
}

// Get menangani GET /rmpasien/:recordId.
func (rc *RekamMedisController) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("recordId"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "recordId must be a number")
	}

	rm, err := rc.Service.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "Rekam medis not found")
	}
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "GET /rmpasien/:recordId").Msg("gagal mengambil rekam medis")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"rm_pasien": rm})
}

// ListToday menangani GET /rmpasien_tgl: kunjungan hari ini.
func (rc *RekamMedisController) ListToday(c echo.Context) error {
	list, err := rc.Service.ListToday()
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "GET /rmpasien_tgl").Msg("gagal mengambil kunjungan hari ini")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"rm_pasien": list})
}

// CountPerBulan menangani GET /jumlahpasienperbulan.
func (rc *RekamMedisController) CountPerBulan(c echo.Context) error {
	list, err := rc.Service.CountPerBulan()
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "GET /jumlahpasienperbulan").Msg("gagal menghitung kunjungan")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"jumlah_pasien": list})
}

// SimpanTindakan menangani POST /simpan-tindakan-pasien.
func (rc *RekamMedisController) SimpanTindakan(c echo.Context) error {
	var req struct {
		IDRmPasien int `json:"id_rm_pasien"`
		IDTindakan int `json:"id_tindakan"`
		Harga      int `json:"harga"`
		Jumlah     int `json:"jumlah"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.IDRmPasien == 0 || req.IDTindakan == 0 || req.Jumlah == 0 {
		return utils.Fail(c, http.StatusBadRequest, "id_rm_pasien, id_tindakan, dan jumlah harus diisi.")
	}

	id, err := rc.Service.CreateTindakanPasien(req.IDRmPasien, req.IDTindakan, req.Harga, req.Jumlah)
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "POST /simpan-tindakan-pasien").Msg("gagal menyimpan tindakan pasien")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusCreated, map[string]interface{}{"id": id})
}

// ListTindakanPasien menangani GET /tindakan_pasien.
func (rc *RekamMedisController) ListTindakanPasien(c echo.Context) error {
	list, err := rc.Service.ListTindakanPasien()
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "GET /tindakan_pasien").Msg("gagal mengambil tindakan pasien")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"tindakan_pasien": list})
}

// TindakanByRekamMedis menangani GET /tndpasien/:id_rm_pasien.
func (rc *RekamMedisController) TindakanByRekamMedis(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id_rm_pasien"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id_rm_pasien must be a number")
	}

	list, err := rc.Service.TindakanByRekamMedis(id)
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "GET /tndpasien/:id_rm_pasien").Msg("gagal mengambil tindakan pasien")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"tnd_pasien": list})
}

// ListTindakan menangani GET /tindakan: master tindakan.
func (rc *RekamMedisController) ListTindakan(c echo.Context) error {
	list, err := rc.Service.ListTindakan()
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "GET /tindakan").Msg("gagal mengambil tindakan")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"tindakan": list})
}
