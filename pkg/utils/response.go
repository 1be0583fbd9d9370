package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Format response standar: selalu envelope {success, ...} supaya frontend
// cukup memeriksa satu field.

// Success mengirim payload sukses; key tambahan digabung ke envelope.
func Success(c echo.Context, code int, payload map[string]interface{}) error {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(code, body)
}

// Message mengirim respons sukses yang hanya berisi pesan.
func Message(c echo.Context, code int, message string) error {
	return c.JSON(code, map[string]interface{}{
		"success": true,
		"message": message,
	})
}

// Fail mengirim respons gagal (400/401/404) dengan pesan untuk klien.
func Fail(c echo.Context, code int, message string) error {
	return c.JSON(code, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Internal mengirim 500 generik. Pesan error asli tidak pernah ikut ke
// klien; pemanggil wajib mencatatnya lewat logger.
func Internal(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"error":   "Internal Server Error",
	})
}
