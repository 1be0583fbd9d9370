package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/klinikkartika/klinik-backend/config"
	"github.com/klinikkartika/klinik-backend/internal/routes"
	"github.com/klinikkartika/klinik-backend/internal/session"
	"github.com/klinikkartika/klinik-backend/pkg/storage/mariadb"
)

func main() {
	cfg := config.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := mariadb.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi database gagal")
	}
	defer db.Close()
	log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("terhubung ke MariaDB")

	sessions := session.NewStore(db, log)
	if err := sessions.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("persiapan tabel session gagal")
	}
	stopSweeper := sessions.StartSweeper(15 * time.Minute)
	defer stopSweeper()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Set-Cookie"},
	}))
	e.Use(session.Load(sessions))

	routes.Init(e, db, sessions, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server berjalan")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown dimulai")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown tidak mulus")
	}
}
