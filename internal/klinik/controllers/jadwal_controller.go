package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/internal/klinik/services"
	"github.com/klinikkartika/klinik-backend/pkg/utils"
)

type JadwalController struct {
	Service *services.JadwalService
	Log     zerolog.Logger
}

func NewJadwalController(service *services.JadwalService, log zerolog.Logger) *JadwalController {
	return &JadwalController{Service: service, Log: log}
}

type jadwalRequest struct {
	NamaDokter string `json:"nama_dokter"`
	Hari       string `json:"hari"`
	JamMulai   string `json:"jam_mulai"`
	JamSelesai string `json:"jam_selesai"`
}

// Create menangani POST /jadwal-praktik.
func (jc *JadwalController) Create(c echo.Context) error {
	var req jadwalRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.NamaDokter == "" || req.Hari == "" || req.JamMulai == "" || req.JamSelesai == "" {
		return utils.Fail(c, http.StatusBadRequest, "nama_dokter, hari, jam_mulai, dan jam_selesai harus diisi.")
	}

	id, err := jc.Service.Create(req.NamaDokter, req.Hari, req.JamMulai, req.JamSelesai)
	if err != nil {
		jc.Log.Error().Err(err).Str("endpoint", "POST /jadwal-praktik").Msg("gagal menambah jadwal")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusCreated, map[string]interface{}{"id": id})
}

// List menangani GET /jadwal-praktik.
func (jc *JadwalController) List(c echo.Context) error {
	list, err := jc.Service.List()
	if err != nil {
		jc.Log.Error().Err(err).Str("endpoint", "GET /jadwal-praktik").Msg("gagal mengambil jadwal")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"jadwal_praktik": list})
}

// Update menangani PUT /jadwal-praktik/:id.
func (jc *JadwalController) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	var req jadwalRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	err = jc.Service.Update(id, req.NamaDokter, req.Hari, req.JamMulai, req.JamSelesai)
	if errors.Is(err, services.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "Jadwal praktik not found")
	}
	if err != nil {
		jc.Log.Error().Err(err).Str("endpoint", "PUT /jadwal-praktik/:id").Msg("gagal memperbarui jadwal")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Jadwal praktik updated successfully")
}

// Delete menangani DELETE /jadwal-praktik/:id; 404 bila tidak ada yang terhapus.
func (jc *JadwalController) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	err = jc.Service.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "Jadwal praktik not found")
	}
	if err != nil {
		jc.Log.Error().Err(err).Str("endpoint", "DELETE /jadwal-praktik/:id").Msg("gagal menghapus jadwal")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Jadwal praktik deleted successfully")
}
