package config

import (
	"time"

	pkgconfig "github.com/weiawesome/wes-io-live/gif-service/pkg/config"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/pubsub"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Settings SettingsConfig
	Provider ProviderConfig
	Events   pubsub.Config
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	Driver string        `mapstructure:"driver"` // redis, memory
	Prefix string        `mapstructure:"prefix"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// SettingsConfig selects where the provider credential is read from.
// Driver "static" only uses provider.api_key; "database" reads the settings
// table first and falls back to provider.api_key.
type SettingsConfig struct {
	Driver   string         `mapstructure:"driver"`
	Database DatabaseConfig `mapstructure:"database"`
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	FilePath        string `mapstructure:"file_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type ProviderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	ClientKey string        `mapstructure:"client_key"`
	UserAgent string        `mapstructure:"user_agent"`
	Referer   string        `mapstructure:"referer"`
	Origin    string        `mapstructure:"origin"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8097)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.driver", "redis")
	v.SetDefault("cache.prefix", "gif:search")
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("settings.driver", "static")
	v.SetDefault("settings.database.driver", "sqlite")
	v.SetDefault("settings.database.host", "localhost")
	v.SetDefault("settings.database.port", 5432)
	v.SetDefault("settings.database.user", "postgres")
	v.SetDefault("settings.database.password", "postgres")
	v.SetDefault("settings.database.dbname", "gif_service")
	v.SetDefault("settings.database.sslmode", "disable")
	v.SetDefault("settings.database.file_path", "./data/settings.db")
	v.SetDefault("settings.database.max_idle_conns", 5)
	v.SetDefault("settings.database.max_open_conns", 20)
	v.SetDefault("settings.database.conn_max_lifetime", 60)
	v.SetDefault("provider.base_url", "https://tenor.googleapis.com/v2")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.client_key", "wes-io-live")
	v.SetDefault("provider.user_agent", "wes-io-live-gif-service/1.0")
	v.SetDefault("provider.referer", "https://live.wes.io/")
	v.SetDefault("provider.origin", "https://live.wes.io")
	v.SetDefault("provider.timeout", "0s")
	v.SetDefault("events.driver", "")
	v.SetDefault("events.redis.address", "localhost:6379")
	v.SetDefault("events.redis.pool_size", 10)
	v.SetDefault("events.redis.read_timeout", "3s")
	v.SetDefault("events.redis.write_timeout", "3s")
	v.SetDefault("events.kafka.brokers", "localhost:9092")
	v.SetDefault("events.kafka.partitions", 4)
	v.SetDefault("log.level", "info")

	// Bind environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("redis.address", "REDIS_ADDRESS")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("cache.driver", "CACHE_DRIVER")
	v.BindEnv("settings.driver", "SETTINGS_DRIVER")
	v.BindEnv("settings.database.driver", "DB_DRIVER")
	v.BindEnv("settings.database.host", "DB_HOST")
	v.BindEnv("settings.database.port", "DB_PORT")
	v.BindEnv("settings.database.user", "DB_USER")
	v.BindEnv("settings.database.password", "DB_PASSWORD")
	v.BindEnv("settings.database.dbname", "DB_NAME")
	v.BindEnv("settings.database.file_path", "DB_FILE_PATH")
	v.BindEnv("provider.base_url", "TENOR_BASE_URL")
	v.BindEnv("provider.api_key", "TENOR_API_KEY")
	v.BindEnv("provider.timeout", "TENOR_TIMEOUT")
	v.BindEnv("events.driver", "EVENTS_DRIVER")
	v.BindEnv("events.redis.address", "EVENTS_REDIS_ADDRESS")
	v.BindEnv("events.kafka.brokers", "KAFKA_BROKERS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
