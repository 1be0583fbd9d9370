package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

const (
	// CookieName mengikuti nama cookie session yang sudah dipakai frontend.
	CookieName = "connect.sid"

	// TTL adalah jendela inaktivitas session; diperpanjang setiap kali
	// session dipakai.
	TTL = time.Hour
)

// ErrNoSession menandakan cookie tidak merujuk ke session yang masih hidup.
var ErrNoSession = errors.New("session tidak ditemukan atau sudah kedaluwarsa")

// Identity adalah data login yang disimpan di server untuk satu session.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Store menyimpan session di tabel sessions (session_id, expires, data).
type Store struct {
	db  *sqlx.DB
	log zerolog.Logger
}

func NewStore(db *sqlx.DB, log zerolog.Logger) *Store {
	return &Store{db: db, log: log}
}

// EnsureSchema membuat tabel sessions bila belum ada. Tabel lain diasumsikan
// sudah ada; hanya tabel session yang milik aplikasi ini sendiri.
func (s *Store) EnsureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			session_id VARCHAR(128) NOT NULL PRIMARY KEY,
			expires DATETIME NOT NULL,
			data TEXT
		)`)
	if err != nil {
		return fmt.Errorf("gagal menyiapkan tabel sessions: %w", err)
	}
	return nil
}

// Create membuat session baru dan mengembalikan session id opaque
// yang dipakai sebagai nilai cookie.
func (s *Store) Create(ident Identity) (string, error) {
	data, err := json.Marshal(ident)
	if err != nil {
		return "", fmt.Errorf("gagal meng-encode data session: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		"INSERT INTO sessions (session_id, expires, data) VALUES (?, ?, ?)",
		id, time.Now().Add(TTL), data,
	)
	if err != nil {
		return "", fmt.Errorf("gagal menyimpan session: %w", err)
	}
	return id, nil
}

// Get mengambil identity untuk session id dan memperpanjang masa berlakunya.
// Session yang sudah lewat expires diperlakukan sama dengan tidak ada.
func (s *Store) Get(id string) (*Identity, error) {
	var raw []byte
	err := s.db.QueryRow(
		"SELECT data FROM sessions WHERE session_id = ? AND expires > NOW()", id,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("gagal membaca session: %w", err)
	}

	var ident Identity
	if err := json.Unmarshal(raw, &ident); err != nil {
		return nil, fmt.Errorf("data session rusak: %w", err)
	}

	// Rolling window: setiap pemakaian menggeser expires.
	if _, err := s.db.Exec(
		"UPDATE sessions SET expires = ? WHERE session_id = ?",
		time.Now().Add(TTL), id,
	); err != nil {
		s.log.Warn().Err(err).Msg("gagal memperpanjang session")
	}

	return &ident, nil
}

// Destroy menghapus session di server. ErrNoSession jika tidak ada yang
// terhapus.
func (s *Store) Destroy(id string) error {
	res, err := s.db.Exec("DELETE FROM sessions WHERE session_id = ?", id)
	if err != nil {
		return fmt.Errorf("gagal menghapus session: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("gagal membaca affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNoSession
	}
	return nil
}

// DeleteExpired membersihkan baris session yang sudah kedaluwarsa.
func (s *Store) DeleteExpired() (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE expires <= NOW()")
	if err != nil {
		return 0, fmt.Errorf("gagal membersihkan session kedaluwarsa: %w", err)
	}
	return res.RowsAffected()
}

// StartSweeper menjalankan pembersihan berkala di goroutine terpisah.
// Fungsi kembalian menghentikan sweeper; dipanggil saat shutdown.
func (s *Store) StartSweeper(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				n, err := s.DeleteExpired()
				if err != nil {
					s.log.Error().Err(err).Msg("sweeper session gagal")
					continue
				}
				if n > 0 {
					s.log.Debug().Int64("dihapus", n).Msg("session kedaluwarsa dibersihkan")
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}

// NewCookie membangun cookie session untuk dikirim ke klien.
func NewCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
	}
}

// ExpiredCookie membangun cookie kosong untuk menghapus cookie di klien.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
}
