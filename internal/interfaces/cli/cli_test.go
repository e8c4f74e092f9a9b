package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoles_Viewer(t *testing.T) {
	out, err := run(t, "roles", "viewer")
	require.NoError(t, err)
	assert.Equal(t, "viewer (5)\n  products:view\n  inventory:view\n  sales:view\n  customers:view\n  reports:view\n", out)
}

func TestRoles_Todos(t *testing.T) {
	out, err := run(t, "roles")
	require.NoError(t, err)
	assert.Contains(t, out, "manager (15)\n")
	assert.Contains(t, out, "employee (8)\n")
	assert.True(t, strings.HasPrefix(out, "admin ("))
}

func TestRoles_Desconocido(t *testing.T) {
	_, err := run(t, "roles", "root")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rol desconocido")
}

func TestCheckPassword_Valida(t *testing.T) {
	t.Setenv("PASSWORD_MIN_LENGTH", "8")
	t.Setenv("PASSWORD_REQUIRE_SYMBOLS", "false")
	out, err := run(t, "check-password", "Abcdefg1")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)
}

func TestCheckPassword_SimbolosPorFlag(t *testing.T) {
	t.Setenv("PASSWORD_MIN_LENGTH", "8")
	out, err := run(t, "check-password", "--symbols", "Abcdefg1")
	assert.ErrorIs(t, err, errWeakPassword)
	assert.Contains(t, out, "- Password must contain at least one special character\n")
}
