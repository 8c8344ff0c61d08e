package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	httpadp "fleet-admin-backend/internal/adapter/http"
	"fleet-admin-backend/internal/adapter/middleware"
	"fleet-admin-backend/internal/adapter/repository/mysql"
	"fleet-admin-backend/internal/config"
	"fleet-admin-backend/internal/infrastructure/cache"
	"fleet-admin-backend/internal/infrastructure/db"
	"fleet-admin-backend/internal/infrastructure/storage"
	dashboarduc "fleet-admin-backend/internal/usecase/dashboard"
	employeeuc "fleet-admin-backend/internal/usecase/employee"
	receiptuc "fleet-admin-backend/internal/usecase/receipt"
	tripuc "fleet-admin-backend/internal/usecase/trip"
	vehicleuc "fleet-admin-backend/internal/usecase/vehicle"
	"fleet-admin-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("fleet-admin")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", logger.Error(err))
		return
	}

	gdb, err := openDatabase(cfg)
	if err != nil {
		log.Error("database connect failed", logger.Error(err))
		return
	}
	if err := db.Migrate(gdb); err != nil {
		log.Error("migrate failed", logger.Error(err))
		return
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		// The dashboard cache is an optimization; run without it.
		log.Warn("redis unavailable, dashboard cache disabled", logger.Error(err))
		rdb = nil
	}

	store, err := storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Error("upload dir unusable", logger.Error(err))
		return
	}

	employeeRepo := mysql.NewEmployeeRepository(gdb)
	vehicleRepo := mysql.NewVehicleRepository(gdb)
	tripRepo := mysql.NewTripRepository(gdb)
	receiptRepo := mysql.NewReceiptRepository(gdb)

	employeeUC := employeeuc.NewUsecase(employeeRepo)
	vehicleUC := vehicleuc.NewUsecase(vehicleRepo, store, cfg.UploadMaxBytes())
	tripUC := tripuc.NewUsecase(tripRepo)
	receiptUC := receiptuc.NewUsecase(receiptRepo)
	dashboardUC := dashboarduc.NewUsecase(
		employeeRepo, vehicleRepo, tripRepo, receiptRepo,
		rdb, time.Duration(cfg.DashCacheTTLSecs)*time.Second,
	)

	if cfg.AdminPassword != "" {
		if err := employeeUC.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Error("admin seed failed", logger.Error(err))
			return
		}
	}

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(employeeUC, cfg.JWTSecret, log)
	employeeH := httpadp.NewEmployeeHandler(employeeUC, log)
	vehicleH := httpadp.NewVehicleHandler(vehicleUC, log)
	tripH := httpadp.NewTripHandler(tripUC, log)
	receiptH := httpadp.NewReceiptHandler(receiptUC, log)
	dashboardH := httpadp.NewDashboardHandler(dashboardUC, log)
	settingsH := httpadp.NewSettingsHandler(employeeUC, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// uploaded objects (vehicle photos, avatars)
	e.Static("/uploads", store.Root())

	e.GET("/health", h.Health)
	e.POST("/auth/login", authH.Login)

	auth := middleware.JWTAuth(cfg.JWTSecret)
	admin := middleware.RequireAdmin()

	e.GET("/auth/me", authH.Me, auth)
	e.POST("/auth/logout", authH.Logout, auth)

	e.GET("/dashboard/stats", dashboardH.Stats, auth)

	e.GET("/employees", employeeH.List, auth)
	e.POST("/employees", employeeH.Create, auth, admin)
	e.PUT("/employees/:id", employeeH.Update, auth, admin)
	e.PATCH("/employees/:id/status", employeeH.ToggleStatus, auth, admin)

	e.GET("/vehicles", vehicleH.List, auth)
	e.POST("/vehicles", vehicleH.Create, auth, admin)
	e.PUT("/vehicles/:id", vehicleH.Update, auth, admin)
	e.PATCH("/vehicles/:id/status", vehicleH.ToggleStatus, auth, admin)

	e.GET("/trips", tripH.List, auth)
	e.GET("/receipts", receiptH.List, auth)

	e.GET("/settings/profile", settingsH.GetProfile, auth)
	e.PUT("/settings/profile", settingsH.UpdateProfile, auth)

	addr := ":" + cfg.AppPort
	log.Info("listening", logger.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Error("server stopped", logger.Error(err))
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return db.OpenGormWithDialector(sqlite.Open(cfg.SQLitePath))
	}
	return db.OpenGorm(cfg.MySQLDSN())
}
