package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Redis        RedisConfig
	RedisStreams RedisStreamsConfig
	Cache        CacheConfig
	Log          LogConfig
	Worker       WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisStreamsConfig - отдельное подключение для стримов событий захвата;
// по умолчанию совпадает с основным Redis.
type RedisStreamsConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	BoundsCacheTTL time.Duration
	TileCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	DefaultZoom       int
	DefaultPrecision  int
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
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RedisStreams: RedisStreamsConfig{
			Host:     viper.GetString("REDIS_STREAMS_HOST"),
			Port:     viper.GetInt("REDIS_STREAMS_PORT"),
			Password: viper.GetString("REDIS_STREAMS_PASSWORD"),
			DB:       viper.GetInt("REDIS_STREAMS_DB"),
		},
		Cache: CacheConfig{
			BoundsCacheTTL: time.Duration(viper.GetInt("BOUNDS_CACHE_TTL")) * time.Second,
			TileCacheTTL:   time.Duration(viper.GetInt("TILE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
			DefaultZoom:       viper.GetInt("WORKER_DEFAULT_ZOOM"),
			DefaultPrecision:  viper.GetInt("WORKER_DEFAULT_PRECISION"),
		},
	}

	// Set default values if not provided
	if cfg.RedisStreams.Host == "" {
		cfg.RedisStreams = RedisStreamsConfig(cfg.Redis)
	}
	if cfg.Cache.BoundsCacheTTL == 0 {
		cfg.Cache.BoundsCacheTTL = time.Hour
	}
	if cfg.Cache.TileCacheTTL == 0 {
		cfg.Cache.TileCacheTTL = 24 * time.Hour
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "capture-conversion-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.DefaultZoom == 0 {
		cfg.Worker.DefaultZoom = 14
	}
	if cfg.Worker.DefaultPrecision == 0 {
		cfg.Worker.DefaultPrecision = 5
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
