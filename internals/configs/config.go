package configs

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	Conf *viper.Viper

	JWTSecret           string
	JWTRefreshSecret    string
	AccessTokenTimeout  time.Duration
	RefreshTokenTimeout time.Duration
	SaltRound           int
)

func init() {
	Conf = viper.New()
	Conf.SetTypeByDefaultValue(true)
	setDefaults(Conf)
	Conf.AutomaticEnv()
	apply()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_REFRESH_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_TIMEOUT", 24*time.Hour)
	v.SetDefault("REFRESH_TOKEN_TIMEOUT", 7*24*time.Hour)
	v.SetDefault("SALT_ROUND", 10)
	v.SetDefault("AUTO_INSTALL", true)
	v.SetDefault("UPLOAD_DIR", os.TempDir())
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("REFRESH_TOKEN_TTL_GRACE", 24*time.Hour)
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			slog.Warn("no .env file found, using system environment")
		} else {
			slog.Info(".env file loaded")
		}
	} else {
		slog.Info("running on Railway, using system environment")
	}
	apply()

	if JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		slog.Error("JWT_REFRESH_SECRET is not set")
	}
}

func apply() {
	JWTSecret = Conf.GetString("JWT_SECRET")
	JWTRefreshSecret = Conf.GetString("JWT_REFRESH_SECRET")
	AccessTokenTimeout = Conf.GetDuration("ACCESS_TOKEN_TIMEOUT")
	RefreshTokenTimeout = Conf.GetDuration("REFRESH_TOKEN_TIMEOUT")
	SaltRound = Conf.GetInt("SALT_ROUND")
}

// GetEnv reads key through viper so defaults and the environment agree.
func GetEnv(key string, defaultValue ...string) string {
	if v := strings.TrimSpace(Conf.GetString(key)); v != "" {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// UseTestSecrets fills the token secrets with fixed values for tests.
func UseTestSecrets() {
	Conf.Set("JWT_SECRET", "test-access-secret")
	Conf.Set("JWT_REFRESH_SECRET", "test-refresh-secret")
	Conf.Set("SALT_ROUND", 4)
	apply()
}
