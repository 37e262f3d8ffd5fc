package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"ulascansenturk/weather-query-service/config"
	"ulascansenturk/weather-query-service/internal/db/weatherquery"
)

// Open connects to the configured database and migrates the weather_queries
// table.
func Open(conf *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch conf.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(conf.PostgresDSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.DBPath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.DBDriver)
	}

	gormLogLevel := logger.Warn
	if conf.LogLevel == "debug" {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if conf.DBDriver == config.DriverSQLite {
		// SQLite allows a single writer; one connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&weatherquery.WeatherQuery{})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
