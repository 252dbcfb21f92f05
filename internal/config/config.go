package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Events   EventsConfig
	Metrics  MetricsConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host           string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port           string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout    time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout   time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout    time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"120s"`
	MaxUploadBytes int64         `envconfig:"SERVER_MAX_UPLOAD_BYTES" default:"10485760"` // 10MB
}

// StorageConfig configures the S3-compatible blob store
type StorageConfig struct {
	Endpoint      string `envconfig:"STORAGE_ENDPOINT" required:"true"`
	Region        string `envconfig:"STORAGE_REGION" default:"us-east-1"`
	BucketName    string `envconfig:"STORAGE_BUCKET_NAME" required:"true"`
	AccessKey     string `envconfig:"STORAGE_ACCESS_KEY" required:"true"`
	SecretKey     string `envconfig:"STORAGE_SECRET_KEY" required:"true"`
	UseSSL        bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicBaseURL string `envconfig:"STORAGE_PUBLIC_BASE_URL"`
}

// BaseURL returns the locator prefix for objects of the bucket
func (s StorageConfig) BaseURL() string {
	if s.PublicBaseURL != "" {
		return s.PublicBaseURL
	}
	scheme := "http"
	if s.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + s.Endpoint + "/" + s.BucketName
}

// EventsConfig configures the inconsistency event stream. An empty URL disables publishing.
type EventsConfig struct {
	NATSURL    string `envconfig:"EVENTS_NATS_URL"`
	ClientName string `envconfig:"EVENTS_CLIENT_NAME" default:"webapp"`
	StreamName string `envconfig:"EVENTS_STREAM_NAME" default:"STORAGE_INCONSISTENCIES"`
	Subject    string `envconfig:"EVENTS_SUBJECT" default:"storage.inconsistency"`
}

type MetricsConfig struct {
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"webapp"`
	Path      string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// DSN returns the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// Load reads an optional .env file then processes the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
