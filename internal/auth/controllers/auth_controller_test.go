package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/internal/auth/services"
	"github.com/klinikkartika/klinik-backend/internal/session"
)

func newTestController(t *testing.T) (*AuthController, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewAuthController(
		services.NewAuthService(db),
		session.NewStore(db, zerolog.Nop()),
		zerolog.Nop(),
	), mock
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Success(t *testing.T) {
	ac, mock := newTestController(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, username, password, role FROM users WHERE username = ? AND password = ?")).
		WithArgs("budi", "rahasia").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}).
			AddRow(3, "budi", "rahasia", "dokter"))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO sessions (session_id, expires, data) VALUES (?, ?, ?)")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(http.MethodPost, "/login", `{"username":"budi","password":"rahasia"}`)
	if err := ac.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success      bool   `json:"success"`
		RedirectPage string `json:"redirectPage"`
		User         struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Success {
		t.Error("expected success true")
	}
	if body.RedirectPage != "/Dokter" {
		t.Errorf("expected redirect /Dokter, got %s", body.RedirectPage)
	}
	if body.User.ID != 3 || body.User.Username != "budi" || body.User.Role != "dokter" {
		t.Errorf("unexpected user payload: %+v", body.User)
	}

	cookieSet := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value != "" {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Error("expected a session cookie to be set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	ac, mock := newTestController(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, username, password, role FROM users WHERE username = ? AND password = ?")).
		WithArgs("budi", "salah").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}))

	c, rec := newJSONContext(http.MethodPost, "/login", `{"username":"budi","password":"salah"}`)
	if err := ac.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no session cookie on failed login")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	ac, _ := newTestController(t)

	c, rec := newJSONContext(http.MethodPost, "/login", `{"username":"","password":"x"}`)
	if err := ac.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_UnknownRoleRedirects404(t *testing.T) {
	ac, mock := newTestController(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, username, password, role FROM users WHERE username = ? AND password = ?")).
		WithArgs("tamu", "tamu").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}).
			AddRow(9, "tamu", "tamu", "resepsionis"))
	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(http.MethodPost, "/login", `{"username":"tamu","password":"tamu"}`)
	if err := ac.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["redirectPage"] != "/404" {
		t.Errorf("expected redirect /404, got %v", body["redirectPage"])
	}
}

func TestCurrentUser_NotLoggedIn(t *testing.T) {
	ac, _ := newTestController(t)

	c, rec := newJSONContext(http.MethodGet, "/user", "")
	if err := ac.CurrentUser(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestCurrentUser_LoggedIn(t *testing.T) {
	ac, _ := newTestController(t)

	c, rec := newJSONContext(http.MethodGet, "/user", "")
	c.Set(session.ContextKeyUser, &session.Identity{ID: 3, Username: "budi", Role: "dokter"})

	if err := ac.CurrentUser(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		User session.Identity `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.User.Username != "budi" || body.User.Role != "dokter" {
		t.Errorf("unexpected identity: %+v", body.User)
	}
}

func TestLogout_NotLoggedIn(t *testing.T) {
	ac, _ := newTestController(t)

	c, rec := newJSONContext(http.MethodPost, "/logout", "")
	if err := ac.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLogout_DestroysSession(t *testing.T) {
	ac, mock := newTestController(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM sessions WHERE session_id = ?")).
		WithArgs("sid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(http.MethodPost, "/logout", "")
	c.Set(session.ContextKeyID, "sid-1")

	if err := ac.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be cleared")
	}
}
