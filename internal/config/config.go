package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServerConfig HTTP listener settings.
type ServerConfig struct {
	Port        string
	CORSOrigins []string
	// LoginRatePerMinute caps sign-in attempts per client IP.
	LoginRatePerMinute int
}

func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

type PostgresConfig struct {
	URL         string
	AutoMigrate bool
}

type RedisConfig struct {
	Addr string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type Config struct {
	Env            string
	LogLevel       string
	ReportTimezone string
	Server         ServerConfig
	Postgres       PostgresConfig
	Redis          RedisConfig
	RabbitMQ       RabbitMQConfig
	Auth           AuthConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_TTL", "60m")
	v.SetDefault("REPORT_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("AMQP_EXCHANGE", "ecoquest.events")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("AUTO_MIGRATE", true)
	return v
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:            v.GetString("APP_ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		ReportTimezone: v.GetString("REPORT_TIMEZONE"),
		Server: ServerConfig{
			Port:               v.GetString("PORT"),
			CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
			LoginRatePerMinute: v.GetInt("LOGIN_RATE_PER_MINUTE"),
		},
		Postgres: PostgresConfig{
			URL:         v.GetString("POSTGRES_URL"),
			AutoMigrate: v.GetBool("AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("REDIS_ADDR"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("AMQP_URL"),
			Exchange: v.GetString("AMQP_EXCHANGE"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("JWT_TTL"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, errors.New("JWT_TTL must be a positive duration")
	}
	if cfg.Server.LoginRatePerMinute <= 0 {
		cfg.Server.LoginRatePerMinute = 10
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
