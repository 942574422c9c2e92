package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Directus DirectusConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Locale   LocaleConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DirectusConfig struct {
	BaseURL        string
	Token          string
	RequestTimeout int // seconds
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ContentTTL time.Duration
	CaptchaTTL time.Duration
}

type LocaleConfig struct {
	Default string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Directus: DirectusConfig{
			BaseURL:        viper.GetString("DIRECTUS_URL"),
			Token:          viper.GetString("DIRECTUS_TOKEN"),
			RequestTimeout: viper.GetInt("DIRECTUS_REQUEST_TIMEOUT"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ContentTTL: time.Duration(viper.GetInt("CONTENT_CACHE_TTL")) * time.Second,
			CaptchaTTL: time.Duration(viper.GetInt("CAPTCHA_TTL")) * time.Second,
		},
		Locale: LocaleConfig{
			Default: viper.GetString("DEFAULT_LOCALE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Directus.RequestTimeout == 0 {
		cfg.Directus.RequestTimeout = 10
	}
	if cfg.Cache.ContentTTL == 0 {
		cfg.Cache.ContentTTL = 60 * time.Second
	}
	if cfg.Cache.CaptchaTTL == 0 {
		cfg.Cache.CaptchaTTL = 10 * time.Minute
	}
	if cfg.Locale.Default == "" {
		cfg.Locale.Default = "it"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
