package routes

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apotekControllers "github.com/klinikkartika/klinik-backend/internal/apotek/controllers"
	apotekServices "github.com/klinikkartika/klinik-backend/internal/apotek/services"
	authControllers "github.com/klinikkartika/klinik-backend/internal/auth/controllers"
	authServices "github.com/klinikkartika/klinik-backend/internal/auth/services"
	klinikControllers "github.com/klinikkartika/klinik-backend/internal/klinik/controllers"
	klinikServices "github.com/klinikkartika/klinik-backend/internal/klinik/services"
	manajemenControllers "github.com/klinikkartika/klinik-backend/internal/manajemen/controllers"
	manajemenServices "github.com/klinikkartika/klinik-backend/internal/manajemen/services"
	pasienControllers "github.com/klinikkartika/klinik-backend/internal/pasien/controllers"
	pasienServices "github.com/klinikkartika/klinik-backend/internal/pasien/services"
	profilControllers "github.com/klinikkartika/klinik-backend/internal/profil/controllers"
	profilServices "github.com/klinikkartika/klinik-backend/internal/profil/services"
	"github.com/klinikkartika/klinik-backend/internal/session"
)

// peranProfil adalah kelima tabel profil yang punya endpoint identik.
var peranProfil = []string{"admin", "dokter", "apoteker", "perawat", "pemilik"}

// Init menginisialisasi semua service, controller, dan route aplikasi.
func Init(e *echo.Echo, db *sqlx.DB, sessions *session.Store, log zerolog.Logger) {
	// Inisialisasi service
	authService := authServices.NewAuthService(db)
	profilService := profilServices.NewProfilService(db)
	userService := manajemenServices.NewUserService(db)
	obatService := apotekServices.NewObatService(db)
	transaksiService := apotekServices.NewTransaksiService(db)
	pasienService := pasienServices.NewPasienService(db)
	rekamMedisService := pasienServices.NewRekamMedisService(db)
	jadwalService := klinikServices.NewJadwalService(db)
	ruanganService := klinikServices.NewRuanganService(db)

	// Inisialisasi controller
	authController := authControllers.NewAuthController(authService, sessions, log)
	profilController := profilControllers.NewProfilController(profilService, log)
	userController := manajemenControllers.NewUserController(userService, log)
	obatController := apotekControllers.NewObatController(obatService, log)
	transaksiController := apotekControllers.NewTransaksiController(transaksiService, log)
	pasienController := pasienControllers.NewPasienController(pasienService, log)
	rekamMedisController := pasienControllers.NewRekamMedisController(rekamMedisService, log)
	jadwalController := klinikControllers.NewJadwalController(jadwalService, log)
	ruanganController := klinikControllers.NewRuanganController(ruanganService, log)

	// **Autentikasi & session**
	e.POST("/login", authController.Login)
	e.POST("/logout", authController.Logout)
	e.GET("/user", authController.CurrentUser)

	// **Profil per role** (lima tabel berpola sama)
	for _, role := range peranProfil {
		e.GET("/"+role, profilController.Get(role))
		e.GET("/data"+role, profilController.List(role))
		e.PUT("/"+role+"/:id", profilController.Update(role))
		e.PUT("/"+role+"/change-password/:id", profilController.ChangePassword(role))
	}

	// **Manajemen user**
	e.POST("/tambahuser", userController.Tambah)
	e.GET("/users", userController.List)
	e.GET("/users/:role", userController.ListByRole)
	e.PUT("/users/reset-password/:userId", userController.ResetPassword)
	e.PUT("/users/:userId", userController.Update)
	e.DELETE("/users/:userId", userController.Delete)

	// **Inventaris obat**
	e.GET("/obat", obatController.List)
	e.POST("/tambahobat", obatController.Tambah)
	e.PUT("/obat/:id", obatController.Update)
	e.PATCH("/transaksiobat/:id", obatController.Update)
	e.DELETE("/obat/:id", obatController.Delete)

	// **Transaksi penjualan**
	e.POST("/transaksi", transaksiController.Create)
	e.GET("/transaksi/:id", transaksiController.Get)
	e.GET("/datatransaksi", transaksiController.ListFormatted)
	e.GET("/getalltransaksi", transaksiController.ListAll)
	e.POST("/detail_transaksi", transaksiController.AddDetail)
	e.GET("/detail_transaksi", transaksiController.ListDetails)
	e.GET("/detailtransaksi/:id", transaksiController.DetailsByID)

	// **Pasien & pendaftaran**
	e.POST("/tambahpasien", pasienController.Tambah)
	e.GET("/getallpasien", pasienController.List)
	e.POST("/pendaftaran-pasien", pasienController.Daftar)
	e.GET("/pendaftaran", pasienController.ListPendaftaran)
	e.PUT("/pendaftaran/:id", pasienController.UpdatePendaftaran)

	// **Rekam medis & tindakan**
	e.POST("/simpan-rekam-medis", rekamMedisController.Simpan)
	e.GET("/rmpasien", rekamMedisController.List)
	e.GET("/rmpasien_tgl", rekamMedisController.ListToday)
	e.GET("/rmpasien/:recordId", rekamMedisController.Get)
	e.GET("/jumlahpasienperbulan", rekamMedisController.CountPerBulan)
	e.POST("/simpan-tindakan-pasien", rekamMedisController.SimpanTindakan)
	e.GET("/tindakan", rekamMedisController.ListTindakan)
	e.GET("/tindakan_pasien", rekamMedisController.ListTindakanPasien)
	e.GET("/tndpasien/:id_rm_pasien", rekamMedisController.TindakanByRekamMedis)

	// **Jadwal praktik**
	e.POST("/jadwal-praktik", jadwalController.Create)
	e.GET("/jadwal-praktik", jadwalController.List)
	e.PUT("/jadwal-praktik/:id", jadwalController.Update)
	e.DELETE("/jadwal-praktik/:id", jadwalController.Delete)

	// **Ruangan**
	api := e.Group("/api")
	api.GET("/ruangan", ruanganController.List)
	api.POST("/tambahruangan", ruanganController.Tambah)
	api.PUT("/ruangan/:id", ruanganController.Update)
	api.PUT("/manageruangan/:id", ruanganController.UpdateStatus)
	api.DELETE("/ruangan/:id", ruanganController.Delete)
}
