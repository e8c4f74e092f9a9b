package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 8, cfg.Security.PasswordMinLength)
	assert.False(t, cfg.Security.PasswordRequireSymbols)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "postgres://postgres:@localhost:5432/serrano_ims?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("PASSWORD_REQUIRE_SYMBOLS", "true")
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/ims")
	v.Set("DB_PASSWORD", "p@ss/word")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Security.PasswordRequireSymbols)
	assert.Equal(t, "postgres://u:p@db:5432/ims", cfg.DB.ConnectionString())
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%2Fword")
}

func TestFromViper_ProductionSinSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_EnteroInvalidoUsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "ochenta")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestFromViper_PoolInvertido(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", "2")
	v.Set("DB_MIN_CONNS", "5")
	_, err := fromViper(v)
	assert.Error(t, err)
}
