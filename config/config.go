// config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers understood by store.Open.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverR2       = "r2"
)

// R2Config holds the Cloudflare R2 (S3-compatible) credentials.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
}

// Enabled reports whether enough is set to build a client.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.AccessKeySecret != "" && c.Bucket != ""
}

type Config struct {
	Port           string
	StoreDriver    string
	KeyPrefix      string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	R2             R2Config
	AllowedOrigins []string
	LogLevel       string

	// XPAwardOnce limits the approval XP award to the pending->approved transition.
	XPAwardOnce bool

	BackupInterval       time.Duration
	GaugeRefreshInterval time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an arbitrary lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:          orDefault(getenv("PORT"), "5200"),
		StoreDriver:   strings.ToLower(orDefault(getenv("STORE_DRIVER"), DriverMemory)),
		KeyPrefix:     orDefault(getenv("STORE_KEY_PREFIX"), "oneearth"),
		DatabaseURL:   getenv("DATABASE_URL"),
		RedisAddr:     orDefault(getenv("REDIS_ADDR"), "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		R2: R2Config{
			AccountID:       getenv("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:     getenv("R2_ACCESS_KEY_ID"),
			AccessKeySecret: getenv("R2_ACCESS_KEY_SECRET"),
			Bucket:          getenv("R2_BUCKET_NAME"),
		},
		LogLevel: strings.ToLower(orDefault(getenv("LOG_LEVEL"), "info")),
	}

	origins := orDefault(getenv("ALLOWED_ORIGINS"), "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	var err error
	if v := getenv("REDIS_DB"); v != "" {
		if cfg.RedisDB, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
	}
	if v := getenv("XP_AWARD_ONCE"); v != "" {
		if cfg.XPAwardOnce, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid XP_AWARD_ONCE %q: %w", v, err)
		}
	}
	if cfg.BackupInterval, err = duration(getenv("BACKUP_INTERVAL"), 0); err != nil {
		return nil, fmt.Errorf("invalid BACKUP_INTERVAL: %w", err)
	}
	if cfg.GaugeRefreshInterval, err = duration(getenv("GAUGE_REFRESH_INTERVAL"), time.Minute); err != nil {
		return nil, fmt.Errorf("invalid GAUGE_REFRESH_INTERVAL: %w", err)
	}

	switch cfg.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable not set")
		}
	case DriverRedis:
	case DriverR2:
		if !cfg.R2.Enabled() {
			return nil, fmt.Errorf("STORE_DRIVER=r2 requires CLOUDFLARE_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_ACCESS_KEY_SECRET and R2_BUCKET_NAME")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func duration(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", v)
	}
	return d, nil
}
