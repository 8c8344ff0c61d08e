package db

import (
	"time"

	"fleet-admin-backend/internal/domain/company"
	"fleet-admin-backend/internal/domain/employee"
	"fleet-admin-backend/internal/domain/receipt"
	"fleet-admin-backend/internal/domain/trip"
	"fleet-admin-backend/internal/domain/vehicle"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate brings the schema up to date for every persisted entity.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&company.Company{},
		&employee.Employee{},
		&vehicle.Vehicle{},
		&trip.Trip{},
		&receipt.Receipt{},
	)
}
