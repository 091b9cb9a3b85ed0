package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://weft@localhost:5432/weft")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://weft@localhost:5432/weft", cfg.Database.URL)
	require.Equal(t, "127.0.0.1:3000", cfg.Server.BindAddr)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
	require.Equal(t, 5, cfg.Database.MaxConns)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "weft.db")
	t.Setenv("BIND_ADDR", "0.0.0.0:8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_MAX_CONNS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.BindAddr)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, 10, cfg.Database.MaxConns)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}
