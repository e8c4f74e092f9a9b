package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSQLBuilder_PlaceholdersEnOrden(t *testing.T) {
	b := &sqlBuilder{conds: []string{"is_active"}}
	b.add("(name ILIKE ? OR sku ILIKE ?)", "%tela%")
	b.add("price >= ?", 10)

	assert.Equal(t, " WHERE is_active AND (name ILIKE $1 OR sku ILIKE $1) AND price >= $2", b.where())
	assert.Equal(t, " LIMIT $3 OFFSET $4", b.page(20, 40))
	assert.Equal(t, []any{"%tela%", 10, 20, 40}, b.args)
}

func TestSQLBuilder_SinCondiciones(t *testing.T) {
	b := &sqlBuilder{}
	assert.Empty(t, b.where())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `%50\%\_off%`, escapeLike("50%_off"))
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(err))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(err))
	assert.True(t, isNumericOverflow(fmt.Errorf("insert sale: %w", &pgconn.PgError{Code: "22003"})))
	assert.False(t, isNumericOverflow(err))
}

func TestMigrationFiles_Embebidos(t *testing.T) {
	body, err := migrationFiles.ReadFile("migrations/0001_init.sql")
	assert.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS sale_items")
}
