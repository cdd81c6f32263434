package database

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/configs"
)

var DB *gorm.DB

// Open connects to driver ("postgres", "mysql" or "sqlite") with dsn.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "":
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
}

// DSNFromEnv builds the connection string for driver, unless DB_DSN overrides it.
func DSNFromEnv(driver string) string {
	if dsn := configs.GetEnv("DB_DSN"); dsn != "" {
		return dsn
	}
	user := configs.GetEnv("DB_USER")
	pass := configs.GetEnv("DB_PASSWORD")
	host := configs.GetEnv("DB_HOST")
	port := configs.GetEnv("DB_PORT")
	name := configs.GetEnv("DB_NAME")

	switch strings.ToLower(driver) {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, pass, host, port, name)
	case "sqlite", "sqlite3":
		if name == "" {
			name = "schoolquiz.db"
		}
		return name
	default:
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolquiz&options=-c statement_timeout=3000",
			user, pass, host, port, name, configs.GetEnv("DB_SSLMODE", "disable"),
		)
	}
}

func ConnectDB() {
	driver := configs.GetEnv("DB_DRIVER", "postgres")
	slog.Info("connecting to database", "driver", driver)

	db, err := Open(driver, DSNFromEnv(driver))
	if err != nil {
		slog.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	DB = db
	slog.Info("database connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		slog.Warn("pool tune failed", "err", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(DB); err != nil {
			slog.Warn("warm-up ping failed", "err", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
