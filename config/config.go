package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config menampung seluruh konfigurasi aplikasi yang dibaca dari environment.
// Nama variabel MYSQL* mengikuti environment deployment (Railway).
type Config struct {
	AppEnv     string
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	CORSOrigin string
}

// Load membaca file .env (jika ada) lalu membangun Config dari environment.
// Dipanggil sekali di main dan di-inject ke komponen yang membutuhkan.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Relying on environment variables.")
	}

	return &Config{
		AppEnv:     os.Getenv("APP_ENV"),
		Port:       getEnv("PORT", "3000"),
		DBHost:     getEnv("MYSQLHOST", "localhost"),
		DBPort:     getEnv("MYSQLPORT", "3306"),
		DBUser:     os.Getenv("MYSQLUSER"),
		DBPassword: os.Getenv("MYSQLPASSWORD"),
		DBName:     os.Getenv("MYSQLDATABASE"),
		CORSOrigin: getEnv("CORS_ORIGIN", "https://klinikkartika.up.railway.app"),
	}
}

// IsDev menandakan aplikasi berjalan di environment development.
func (c *Config) IsDev() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
