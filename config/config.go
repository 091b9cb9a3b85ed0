package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		BindAddr string
	}
	Database struct {
		URL      string
		MaxConns int
	}
	Logging struct {
		Level  string
		Format string
		File   string
	}
}

// Load reads configuration from the process environment:
// DATABASE_URL (required), BIND_ADDR, LOG_LEVEL, LOG_FORMAT, LOG_FILE,
// DB_MAX_CONNS.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("bind_addr", "127.0.0.1:3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_file", "")
	v.SetDefault("db_max_conns", 5)
	v.SetDefault("database_url", "")
	v.AutomaticEnv()

	cfg := &Config{}
	cfg.Database.URL = v.GetString("database_url")
	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	cfg.Database.MaxConns = v.GetInt("db_max_conns")
	cfg.Server.BindAddr = v.GetString("bind_addr")
	cfg.Logging.Level = v.GetString("log_level")
	cfg.Logging.Format = v.GetString("log_format")
	cfg.Logging.File = v.GetString("log_file")
	return cfg, nil
}
