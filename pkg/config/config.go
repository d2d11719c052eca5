package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Catalog source kinds.
const (
	CatalogSourcePostgres = "postgres"
	CatalogSourceFile     = "file"
	CatalogSourceS3       = "s3"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Listing   ListingConfig
	Reminders RemindersConfig
	Exports   ExportsConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	Expiration        time.Duration
	RefreshExpiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CatalogConfig selects where scholarships are loaded from and how long they are cached.
type CatalogConfig struct {
	Source      string
	File        string
	S3          S3Config
	CacheTTL    time.Duration
	RefreshSpec string
}

// S3Config points at an S3-compatible object holding the catalog JSON.
type S3Config struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// ListingConfig tunes the paginated scholarship listing.
type ListingConfig struct {
	PageSize    int
	MaxPageSize int
}

// RemindersConfig controls the reminder sweep and its worker pool.
type RemindersConfig struct {
	Enabled   bool
	SweepSpec string
	Workers   int
	Retries   int
}

// ExportsConfig toggles CSV/PDF listing exports.
type ExportsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:            v.GetString("JWT_SECRET"),
		Expiration:        parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		RefreshExpiration: parseDuration(v.GetString("REFRESH_TOKEN_EXPIRATION"), 7*24*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	source := strings.ToLower(strings.TrimSpace(v.GetString("CATALOG_SOURCE")))
	switch source {
	case CatalogSourceFile, CatalogSourceS3:
	default:
		source = CatalogSourcePostgres
	}
	cfg.Catalog = CatalogConfig{
		Source: source,
		File:   v.GetString("CATALOG_FILE"),
		S3: S3Config{
			Bucket:    v.GetString("CATALOG_S3_BUCKET"),
			Key:       v.GetString("CATALOG_S3_KEY"),
			Region:    v.GetString("CATALOG_S3_REGION"),
			Endpoint:  v.GetString("CATALOG_S3_ENDPOINT"),
			AccessKey: v.GetString("CATALOG_S3_ACCESS_KEY"),
			SecretKey: v.GetString("CATALOG_S3_SECRET_KEY"),
		},
		CacheTTL:    parseDuration(v.GetString("CATALOG_CACHE_TTL"), 10*time.Minute),
		RefreshSpec: v.GetString("CATALOG_REFRESH_SPEC"),
	}

	pageSize := v.GetInt("LISTING_PAGE_SIZE")
	if pageSize <= 0 {
		pageSize = 9
	}
	maxPageSize := v.GetInt("LISTING_MAX_PAGE_SIZE")
	if maxPageSize < pageSize {
		maxPageSize = pageSize
	}
	cfg.Listing = ListingConfig{PageSize: pageSize, MaxPageSize: maxPageSize}

	workers := v.GetInt("REMINDER_WORKERS")
	if workers <= 0 {
		workers = 1
	}
	cfg.Reminders = RemindersConfig{
		Enabled:   v.GetBool("ENABLE_REMINDERS"),
		SweepSpec: v.GetString("REMINDER_SWEEP_SPEC"),
		Workers:   workers,
		Retries:   v.GetInt("REMINDER_RETRIES"),
	}

	cfg.Exports = ExportsConfig{Enabled: v.GetBool("ENABLE_EXPORTS")}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "scholarlink")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("REFRESH_TOKEN_EXPIRATION", "168h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CATALOG_SOURCE", CatalogSourcePostgres)
	v.SetDefault("CATALOG_FILE", "./data/scholarships.json")
	v.SetDefault("CATALOG_S3_BUCKET", "")
	v.SetDefault("CATALOG_S3_KEY", "catalog/scholarships.json")
	v.SetDefault("CATALOG_S3_REGION", "us-east-1")
	v.SetDefault("CATALOG_S3_ENDPOINT", "")
	v.SetDefault("CATALOG_S3_ACCESS_KEY", "")
	v.SetDefault("CATALOG_S3_SECRET_KEY", "")
	v.SetDefault("CATALOG_CACHE_TTL", "10m")
	v.SetDefault("CATALOG_REFRESH_SPEC", "0 */15 * * * *")

	v.SetDefault("LISTING_PAGE_SIZE", 9)
	v.SetDefault("LISTING_MAX_PAGE_SIZE", 100)

	v.SetDefault("ENABLE_REMINDERS", false)
	v.SetDefault("REMINDER_SWEEP_SPEC", "0 */5 * * * *")
	v.SetDefault("REMINDER_WORKERS", 1)
	v.SetDefault("REMINDER_RETRIES", 3)

	v.SetDefault("ENABLE_EXPORTS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
