package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/internal/auth/services"
	"github.com/klinikkartika/klinik-backend/internal/session"
	"github.com/klinikkartika/klinik-backend/pkg/utils"
)

type AuthController struct {
	Service  *services.AuthService
	Sessions *session.Store
	Log      zerolog.Logger
}

func NewAuthController(service *services.AuthService, sessions *session.Store, log zerolog.Logger) *AuthController {
	return &AuthController{Service: service, Sessions: sessions, Log: log}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login memeriksa kredensial, membuat session di server, dan mengembalikan
// halaman tujuan sesuai role.
func (ac *AuthController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.Username == "" || req.Password == "" {
		return utils.Fail(c, http.StatusBadRequest, "Username dan password harus diisi.")
	}

	user, err := ac.Service.Authenticate(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return utils.Fail(c, http.StatusUnauthorized, "Username atau password salah.")
	}
	if err != nil {
		ac.Log.Error().Err(err).Str("endpoint", "POST /login").Msg("login gagal")
		return utils.Internal(c)
	}

	ident := session.Identity{ID: user.ID, Username: user.Username, Role: user.Role}
	sid, err := ac.Sessions.Create(ident)
	if err != nil {
		ac.Log.Error().Err(err).Str("endpoint", "POST /login").Msg("gagal membuat session")
		return utils.Internal(c)
	}
	c.SetCookie(session.NewCookie(sid))

	return utils.Success(c, http.StatusOK, map[string]interface{}{
		"user":         ident,
		"redirectPage": services.RedirectPage(user.Role),
	})
}

// CurrentUser mengembalikan identity dari session aktif.
func (ac *AuthController) CurrentUser(c echo.Context) error {
	ident, ok := session.FromContext(c)
	if !ok {
		return utils.Fail(c, http.StatusUnauthorized, "Not logged in")
	}
	return utils.Success(c, http.StatusOK, map[string]interface{}{"user": ident})
}

// Logout menghapus session di server dan meng-expire cookie di klien.
func (ac *AuthController) Logout(c echo.Context) error {
	sid, ok := session.IDFromContext(c)
	if !ok {
		return utils.Fail(c, http.StatusUnauthorized, "Not logged in")
	}

	if err := ac.Sessions.Destroy(sid); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return utils.Fail(c, http.StatusUnauthorized, "Not logged in")
		}
		ac.Log.Error().Err(err).Str("endpoint", "POST /logout").Msg("logout gagal")
		return utils.Internal(c)
	}

	c.SetCookie(session.ExpiredCookie())
	return utils.Message(c, http.StatusOK, "Logout successful")
}
