package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Database   Database `yaml:"database"`
	Geocoder   Geocoder `yaml:"geocoder"`
	Redis      Redis    `yaml:"redis"`
	Gemini     Gemini   `yaml:"gemini"`
	Search     Search   `yaml:"search"`
	Uploads    Uploads  `yaml:"uploads"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout      time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
	// WriteTimeout must outlast the slowest upstream call (geocoder, model).
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"40s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-required:"true"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Geocoder struct {
	BaseURL   string        `yaml:"base_url" env:"GEOCODER_BASE_URL" env-default:"https://nominatim.openstreetmap.org"`
	UserAgent string        `yaml:"user_agent" env:"GEOCODER_USER_AGENT" env-default:"saaf-event-locator"`
	Timeout   time.Duration `yaml:"timeout" env-default:"5s"`
}

// Redis caches geocoder answers. Empty Address disables the cache.
type Redis struct {
	Address  string        `yaml:"address" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env-default:"24h"`
}

// Gemini backs the story enhancement endpoint. Empty APIKey disables it.
type Gemini struct {
	APIKey  string        `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model   string        `yaml:"model" env-default:"gemini-flash-latest"`
	Timeout time.Duration `yaml:"timeout" env-default:"30s"`
}

type Search struct {
	RadiusKm float64 `yaml:"radius_km" env-default:"10"`
}

type Uploads struct {
	Dir     string `yaml:"dir" env-default:"./static/uploads"`
	MaxSize int64  `yaml:"max_size" env-default:"10485760"`
}

var (
	ErrConfigPathNotSet = errors.New("config path is not set")
	ErrInvalidRadius    = errors.New("search.radius_km must be positive")
)

// MustLoad reads the config named by the -config flag or CONFIG_PATH and exits on failure.
func MustLoad() *Config {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	cfg, err := Load(fetchConfigPath())
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, ErrConfigPathNotSet
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.Search.RadiusKm <= 0 {
		return nil, ErrInvalidRadius
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
