package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/internal/manajemen/services"
	"github.com/klinikkartika/klinik-backend/pkg/utils"
)

type UserController struct {
	Service *services.UserService
	Log     zerolog.Logger
}

func NewUserController(service *services.UserService, log zerolog.Logger) *UserController {
	return &UserController{Service: service, Log: log}
}

// Tambah menangani POST /tambahuser: user baru dengan password default.
func (uc *UserController) Tambah(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.Username == "" || req.Role == "" {
		return utils.Fail(c, http.StatusBadRequest, "Username and role are required.")
	}

	user, err := uc.Service.Create(req.Username, req.Role)
	if err != nil {
		uc.Log.Error().Err(err).Str("endpoint", "POST /tambahuser").Msg("gagal menambah user")
		return utils.Internal(c)
	}

	return utils.Success(c, http.StatusCreated, map[string]interface{}{"user": user})
}

// List menangani GET /users: seluruh user.
func (uc *UserController) List(c echo.Context) error {
	users, err := uc.Service.List("")
	if err != nil {
		uc.Log.Error().Err(err).Str("endpoint", "GET /users").Msg("gagal mengambil users")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"users": users})
}

// ListByRole menangani GET /users/:role.
func (uc *UserController) ListByRole(c echo.Context) error {
	users, err := uc.Service.List(c.Param("role"))
	if err != nil {
		uc.Log.Error().Err(err).Str("endpoint", "GET /users/:role").Msg("gagal mengambil users")
		return utils.Internal(c)
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"users": users})
}

// Update menangani PUT /users/:userId: username dan role wajib keduanya.
func (uc *UserController) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "userId must be a number")
	}

	var req struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.Username == "" || req.Role == "" {
		return utils.Fail(c, http.StatusBadRequest, "Username and role are required")
	}

	if err := uc.Service.Update(id, req.Username, req.Role); err != nil {
		uc.Log.Error().Err(err).Str("endpoint", "PUT /users/:userId").Msg("gagal memperbarui user")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "User updated successfully")
}

// Delete menangani DELETE /users/:userId; 404 bila user tidak ada.
func (uc *UserController) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "userId must be a number")
	}

	err = uc.Service.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "User not found")
	}
	if err != nil {
		uc.Log.Error().Err(err).Str("endpoint", "DELETE /users/:userId").Msg("gagal menghapus user")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "User deleted successfully")
}

// ResetPassword menangani PUT /users/reset-password/:userId.
func (uc *UserController) ResetPassword(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return utils.Fail(c, http.StatusBadRequest, "userId must be a number")
	}

	if err := uc.Service.ResetPassword(id); err != nil {
		uc.Log.Error().Err(err).Str("endpoint", "PUT /users/reset-password/:userId").Msg("gagal mereset password")
		return utils.Internal(c)
	}
	return utils.Message(c, http.StatusOK, "Password reset successfully")
}
