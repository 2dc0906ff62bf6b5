package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/utils"
	"github.com/spf13/cast"
)

type StorageConfig struct {
	Driver string // r2, gcs, local or memory

	Bucket       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	PublicDomain string

	GCSBucket       string
	CredentialsFile string

	LocalPath     string
	PublicBaseURL string
}

type DatabaseConfig struct {
	URL         string
	AutoMigrate bool
}

type MongoConfig struct {
	URI      string
	Database string
}

type SessionConfig struct {
	Secret string
	Secure bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	NotifyTo string
}

func (s SMTPConfig) Enabled() bool { return s.Host != "" && s.NotifyTo != "" }

type LoggerConfig struct {
	Mode     string
	Filename string
}

type AppConfig struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	Storage        StorageConfig
	Database       DatabaseConfig
	Mongo          MongoConfig
	Session        SessionConfig
	SMTP           SMTPConfig
	Logger         LoggerConfig
}

// Load reads .env when present and then the process environment.
func Load() *AppConfig {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:           getenv("PORT", "8080"),
		GinMode:        getenv("GIN_MODE", "debug"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		Storage: StorageConfig{
			Driver:          strings.ToLower(getenv("STORAGE_DRIVER", "r2")),
			Bucket:          os.Getenv("R2_BUCKET"),
			Endpoint:        os.Getenv("R2_ENDPOINT"),
			AccessKey:       os.Getenv("R2_ACCESS_KEY_ID"),
			SecretKey:       os.Getenv("R2_SECRET_ACCESS_KEY"),
			PublicDomain:    strings.TrimRight(os.Getenv("R2_PUBLIC_DOMAIN"), "/"),
			GCSBucket:       os.Getenv("GCS_BUCKET"),
			CredentialsFile: os.Getenv("CREDENTIALS_FILE_LOCATION"),
			LocalPath:       getenv("LOCAL_STORAGE_PATH", "./storage.db"),
			PublicBaseURL:   strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		},
		Database: DatabaseConfig{
			URL:         os.Getenv("DATABASE_URL"),
			AutoMigrate: cast.ToBool(os.Getenv("DB_AUTO_MIGRATE")),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: getenv("DATABASE_NAME", "estudio"),
		},
		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
			Secure: cast.ToBool(os.Getenv("COOKIE_SECURE")),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     utils.ParseIntDefault(os.Getenv("SMTP_PORT"), 587),
			User:     os.Getenv("SMTP_USER"),
			Pass:     os.Getenv("SMTP_PASS"),
			From:     getenv("SMTP_FROM", os.Getenv("SMTP_USER")),
			NotifyTo: os.Getenv("NOTIFY_EMAIL"),
		},
		Logger: LoggerConfig{
			Mode:     getenv("LOG_MODE", "development"),
			Filename: os.Getenv("LOG_FILE"),
		},
	}
	return cfg
}

// Validate reports settings the selected drivers cannot start without.
func (c *AppConfig) Validate() error {
	switch c.Storage.Driver {
	case "r2":
		if c.Storage.Bucket == "" || c.Storage.AccessKey == "" || c.Storage.SecretKey == "" || c.Storage.Endpoint == "" {
			return errors.New("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
		}
	case "gcs":
		if c.Storage.GCSBucket == "" {
			return errors.New("missing GCS_BUCKET")
		}
	case "local", "memory":
	default:
		return errors.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Database.URL == "" {
		return errors.New("missing DATABASE_URL")
	}
	return nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	out := []string{}
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
