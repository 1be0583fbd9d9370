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

type RuanganController struct {
	Service *services.RuanganService
	Log     zerolog.Logger
}

func NewRuanganController(service *services.RuanganService, log zerolog.Logger) *RuanganController {
	return &RuanganController{Service: service, Log: log}
}

// List menangani GET /api/ruangan.
func (rc *RuanganController) List(c echo.Context) error {
	list, err := rc.Service.List()
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "GET /api/ruangan").Msg("gagal mengambil ruangan")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"ruangan": list})
}

// Tambah menangani POST /api/tambahruangan.
func (rc *RuanganController) Tambah(c echo.Context) error {
	var req struct {
		NamaRuangan string `json:"nama_ruangan"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.NamaRuangan == "" {
		return utils.Fail(c, http.StatusBadRequest, "nama_ruangan harus diisi.")
	}

	id, err := rc.Service.Create(req.NamaRuangan)
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "POST /api/tambahruangan").Msg("gagal menambah ruangan")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusCreated, map[string]interface{}{"id": id})
}

// Update menangani PUT /api/ruangan/:id: nama dan status sekaligus.
func (rc *RuanganController) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	var req struct {
		NamaRuangan string `json:"nama_ruangan"`
		Status      string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}

	err = rc.Service.Update(id, req.NamaRuangan, req.Status)
	if errors.Is(err, services.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "Ruangan not found")
	}
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "PUT /api/ruangan/:id").Msg("gagal memperbarui ruangan")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Ruangan updated successfully")
}

// UpdateStatus menangani PUT /api/manageruangan/:id: status saja.
func (rc *RuanganController) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.Status == "" {
		return utils.Fail(c, http.StatusBadRequest, "status harus diisi.")
	}

	err = rc.Service.UpdateStatus(id, req.Status)
	if errors.Is(err, services.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "Ruangan not found")
	}
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "PUT /api/manageruangan/:id").Msg("gagal memperbarui status ruangan")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Ruangan status updated successfully")
}

// Delete menangani DELETE /api/ruangan/:id.
func (rc *RuanganController) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	err = rc.Service.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "Ruangan not found")
	}
	if err != nil {
		rc.Log.Error().Err(err).Str("endpoint", "DELETE /api/ruangan/:id").Msg("gagal menghapus ruangan")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Ruangan deleted successfully")
}
