package session

import "github.com/labstack/echo/v4"

const (
	// ContextKeyUser menyimpan *Identity hasil resolusi cookie.
	ContextKeyUser = "session_user"
	// ContextKeyID menyimpan session id milik request ini.
	ContextKeyID = "session_id"
)

// Load adalah middleware yang membaca cookie session dan, jika masih hidup,
// menaruh identity-nya di echo context. Request tanpa session tetap
// diteruskan; handler yang butuh login memeriksa FromContext sendiri.
func Load(store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err == nil && cookie.Value != "" {
				if ident, err := store.Get(cookie.Value); err == nil {
					c.Set(ContextKeyUser, ident)
					c.Set(ContextKeyID, cookie.Value)
				}
			}
			return next(c)
		}
	}
}

// FromContext mengambil identity yang dimuat middleware Load.
func FromContext(c echo.Context) (*Identity, bool) {
	ident, ok := c.Get(ContextKeyUser).(*Identity)
	return ident, ok
}

// IDFromContext mengambil session id milik request ini.
func IDFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(ContextKeyID).(string)
	return id, ok && id != ""
}
