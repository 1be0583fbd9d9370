package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("MYSQLHOST")
	os.Unsetenv("MYSQLPORT")
	os.Unsetenv("CORS_ORIGIN")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("expected default db host localhost, got %s", cfg.DBHost)
	}
	if cfg.DBPort != "3306" {
		t.Errorf("expected default db port 3306, got %s", cfg.DBPort)
	}
	if cfg.CORSOrigin == "" {
		t.Error("expected a default CORS origin")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	os.Setenv("PORT", "8080")
	os.Setenv("MYSQLHOST", "db.internal")
	os.Setenv("MYSQLDATABASE", "klinik")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("MYSQLHOST")
		os.Unsetenv("MYSQLDATABASE")
	}()

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.DBHost != "db.internal" {
		t.Errorf("expected db host db.internal, got %s", cfg.DBHost)
	}
	if cfg.DBName != "klinik" {
		t.Errorf("expected db name klinik, got %s", cfg.DBName)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{AppEnv: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() true for development")
	}
	c.AppEnv = "production"
	if c.IsDev() {
		t.Error("expected IsDev() false for production")
	}
}
