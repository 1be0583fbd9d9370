package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/internal/apotek/services"
	"github.com/klinikkartika/klinik-backend/pkg/utils"
)

type ObatController struct {
	Service *services.ObatService
	Log     zerolog.Logger
}

func NewObatController(service *services.ObatService, log zerolog.Logger) *ObatController {
	return &ObatController{Service: service, Log: log}
}

// obatRequest menerima jumlah/harga sebagai angka atau string angka,
// karena frontend lama mengirim keduanya.
type obatRequest struct {
	NamaObat string      `json:"nama_obat"`
	Jumlah   interface{} `json:"jumlah"`
	Harga    interface{} `json:"harga"`
}

func (r *obatRequest) angka() (jumlah, harga int, err error) {
	if jumlah, err = utils.ToInt(r.Jumlah); err != nil {
		return 0, 0, err
	}
	if harga, err = utils.ToInt(r.Harga); err != nil {
		return 0, 0, err
	}
	return jumlah, harga, nil
}

// List menangani GET /obat dengan filter jenis opsional.
func (oc *ObatController) List(c echo.Context) error {
	list, err := oc.Service.List(c.QueryParam("jenis"))
	if err != nil {
		oc.Log.Error().Err(err).Str("endpoint", "GET /obat").Msg("gagal mengambil obat")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"obat": list})
}

// Tambah menangani POST /tambahobat.
func (oc *ObatController) Tambah(c echo.Context) error {
	var req obatRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.NamaObat == "" {
		return utils.Fail(c, http.StatusBadRequest, "nama_obat is required")
	}
	jumlah, harga, err := req.angka()
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "jumlah dan harga harus berupa angka")
	}

	id, err := oc.Service.Create(req.NamaObat, jumlah, harga)
	if err != nil {
		oc.Log.Error().Err(err).Str("endpoint", "POST /tambahobat").Msg("gagal menambah obat")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"obatId": id})
}

// Update menangani PUT /obat/:id dan PATCH /transaksiobat/:id; keduanya
// mengganti penuh nama_obat, jumlah, dan harga.
func (oc *ObatController) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	var req obatRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	jumlah, harga, err := req.angka()
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "jumlah dan harga harus berupa angka")
	}

	if err := oc.Service.Update(id, req.NamaObat, jumlah, harga); err != nil {
		oc.Log.Error().Err(err).Str("endpoint", "PUT /obat/:id").Msg("gagal memperbarui obat")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Obat updated successfully")
}

// Delete menangani DELETE /obat/:id.
func (oc *ObatController) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "id must be a number")
	}

	if err := oc.Service.Delete(id); err != nil {
		oc.Log.Error().Err(err).Str("endpoint", "DELETE /obat/:id").Msg("gagal menghapus obat")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Obat deleted successfully")
}
