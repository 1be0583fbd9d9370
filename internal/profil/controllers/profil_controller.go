package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/internal/profil/services"
	"github.com/klinikkartika/klinik-backend/pkg/utils"
)

type ProfilController struct {
	Service *services.ProfilService
	Log     zerolog.Logger
}

func NewProfilController(service *services.ProfilService, log zerolog.Logger) *ProfilController {
	return &ProfilController{Service: service, Log: log}
}

// judul mengkapitalkan nama role untuk pesan respons ("Dokter not found").
func judul(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

// Get menangani GET /<role>?username=X untuk satu tabel profil.
func (pc *ProfilController) Get(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.QueryParam("username")
		if username == "" {
			return utils.Fail(c, http.StatusBadRequest, "Username is required")
		}

		p, err := pc.Service.GetByUsername(role, username)
		if errors.Is(err, services.ErrNotFound) {
			return utils.Fail(c, http.StatusNotFound, judul(role)+" not found")
		}
		if err != nil {
			pc.Log.Error().Err(err).Str("endpoint", "GET /"+role).Msg("gagal mengambil profil")
			return utils.Internal(c)
		}

		return utils.Success(c, http.StatusOK, map[string]interface{}{role: p})
	}
}

// List menangani GET /data<role>: seluruh isi satu tabel profil.
func (pc *ProfilController) List(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := pc.Service.List(role)
		if err != nil {
			pc.Log.Error().Err(err).Str("endpoint", "GET /data"+role).Msg("gagal mengambil daftar profil")
			return utils.Internal(c)
		}
		return utils.Success(c, http.StatusOK, map[string]interface{}{role: list})
	}
}

// Update menangani PUT /<role>/:id dengan body parsial; hanya kolom yang
// dikirim dan lolos allow-list yang ditulis.
func (pc *ProfilController) Update(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return utils.Fail(c, http.StatusBadRequest, "id must be a number")
		}

		fields := map[string]interface{}{}
		if err := c.Bind(&fields); err != nil {
			return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
		}

		err = pc.Service.Update(role, id, fields)
		switch {
		case errors.Is(err, services.ErrKolomTidakDikenal),
			errors.Is(err, services.ErrTidakAdaKolom):
			return utils.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNotFound):
			return utils.Fail(c, http.StatusNotFound, judul(role)+" not found")
		case err != nil:
			pc.Log.Error().Err(err).Str("endpoint", "PUT /"+role+"/:id").Msg("gagal memperbarui profil")
			return utils.Internal(c)
		}

		return utils.Message(c, http.StatusOK, judul(role)+" data updated successfully")
	}
}

// ChangePassword menangani PUT /<role>/change-password/:id. Target update
// adalah tabel users pusat, bukan tabel profil.
func (pc *ProfilController) ChangePassword(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return utils.Fail(c, http.StatusBadRequest, "id must be a number")
		}

		var req struct {
			NewPassword string `json:"newPassword"`
		}
		if err := c.Bind(&req); err != nil {
			return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
		}
		if req.NewPassword == "" {
			return utils.Fail(c, http.StatusBadRequest, "newPassword is required")
		}

		err = pc.Service.ChangePassword(id, req.NewPassword)
		if errors.Is(err, services.ErrNotFound) {
			return utils.Fail(c, http.StatusNotFound, "User not found.")
		}
		if err != nil {
			pc.Log.Error().Err(err).Str("endpoint", "PUT /"+role+"/change-password/:id").Msg("gagal memperbarui password")
			return utils.Internal(c)
		}

		return utils.Message(c, http.StatusOK, "Password updated successfully.")
	}
}
