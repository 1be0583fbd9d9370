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

type PasienController struct {
	Service *services.PasienService
	Log     zerolog.Logger
}

func NewPasienController(service *services.PasienService, log zerolog.Logger) *PasienController {
	return &PasienController{Service: service, Log: log}
}

// Tambah menangani POST /tambahpasien.
func (pc *PasienController) Tambah(c echo.Context) error {
	var req struct {
		NoMedrek     string `json:"no_medrek"`
		Nama         string `json:"nama"`
		TanggalLahir string `json:"tanggal_lahir"`
		Alamat       string `json:"alamat"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.NoMedrek == "" || req.Nama == "" || req.TanggalLahir == "" {
		return utils.Fail(c, http.StatusBadRequest, "no_medrek, nama, dan tanggal_lahir harus diisi.")
	}

	id, err := pc.Service.Create(req.NoMedrek, req.Nama, req.TanggalLahir, req.Alamat)
	if err != nil {
		pc.Log.Error().Err(err).Str("endpoint", "POST /tambahpasien").Msg("gagal menambah pasien")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusCreated, map[string]interface{}{"id": id})
}

// List menangani GET /getallpasien.
func (pc *PasienController) List(c echo.Context) error {
	list, err := pc.Service.List()
	if err != nil {
		pc.Log.Error().Err(err).Str("endpoint", "GET /getallpasien").Msg("gagal mengambil pasien")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"pasien": list})
}

// Daftar menangani POST /pendaftaran-pasien: antrian baru berstatus "belum".
func (pc *PasienController) Daftar(c echo.Context) error {
	var req struct {
		NomorPendaftaran string `json:"nomor_pendaftaran"`
		Nama             string `json:"nama"`
		Keluhan          string `json:"keluhan"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.NomorPendaftaran == "" || req.Nama == "" {
		return utils.Fail(c, http.StatusBadRequest, "nomor_pendaftaran dan nama harus diisi.")
	}

	id, err := pc.Service.CreatePendaftaran(req.NomorPendaftaran, req.Nama, req.Keluhan)
	if err != nil {
		pc.Log.Error().Err(err).Str("endpoint", "POST /pendaftaran-pasien").Msg("gagal menambah pendaftaran")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusCreated, map[string]interface{}{"id": id})
}

// ListPendaftaran menangani GET /pendaftaran.
func (pc *PasienController) ListPendaftaran(c echo.Context) error {
	list, err := pc.Service.ListPendaftaran()
	if err != nil {
		pc.Log.Error().Err(err).Str("endpoint", "GET /pendaftaran").Msg("gagal mengambil pendaftaran")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"pendaftaran": list})
}

// UpdatePendaftaran menangani PUT /pendaftaran/:id: ubah status antrian.
func (pc *PasienController) UpdatePendaftaran(c echo.Context) error {
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

	err = pc.Service.UpdateStatusPendaftaran(id, req.Status)
	if errors.Is(err, services.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "Pendaftaran not found")
	}
	if err != nil {
		pc.Log.Error().Err(err).Str("endpoint", "PUT /pendaftaran/:id").Msg("gagal memperbarui pendaftaran")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Pendaftaran updated successfully")
}
