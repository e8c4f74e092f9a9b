package postgres

import (
	"io/fs"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigraciones_EmailDeClienteOpcional(t *testing.T) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	require.NoError(t, err)
	require.True(t, sort.StringsAreSorted(names))

	var all string
	for _, n := range names {
		body, err := migrationFiles.ReadFile(n)
		require.NoError(t, err)
		all += string(body)
	}
	assert.NotContains(t, all, "email      TEXT NOT NULL UNIQUE")
	assert.Contains(t, all, "DROP CONSTRAINT IF EXISTS customers_email_key")
	assert.Contains(t, all, "ON customers (lower(email))")
	assert.Contains(t, all, "WHERE email <> ''")
}
