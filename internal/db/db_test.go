package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDriverFor(t *testing.T) {
	require.Equal(t, "postgres", DriverFor("postgres://u:p@localhost:5432/weft"))
	require.Equal(t, "postgres", DriverFor("postgresql://u@localhost/weft"))
	require.Equal(t, "sqlite", DriverFor("weft.db"))
	require.Equal(t, "sqlite", DriverFor("/var/lib/weft/weft.db?_fk=1"))
}

func TestOpenSqliteEnforcesForeignKeys(t *testing.T) {
	d, err := Open("sqlite", filepath.Join(t.TempDir(), "weft.db"), 2)
	require.NoError(t, err)

	var on int
	require.NoError(t, d.Raw("PRAGMA foreign_keys").Scan(&on).Error)
	require.Equal(t, 1, on)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "dsn", 0)
	require.Error(t, err)
}
