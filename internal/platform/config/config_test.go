package config

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/utils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 100*time.Millisecond, cfg.ImportBatchPause)
	assert.Equal(t, 30*time.Minute, cfg.UploadTTL)
	assert.Equal(t, "52", cfg.PhoneCountryCode)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, defaultMessageTemplate, cfg.MessageTemplate)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.False(t, cfg.HasTextGenerator())

	require.Len(t, cfg.AdminPasswordHashes, 2)
	assert.True(t, utils.MatchesAdminSecret("admin", cfg.AdminPasswordHashes[:1]))
	assert.True(t, utils.MatchesAdminSecret("admin123", cfg.AdminPasswordHashes[1:]))
}

func TestFromViper_ProductionGeneratesSecret(t *testing.T) {
	first, err := fromViper(newViper(map[string]any{"IS_PRODUCTION": true, "ADMIN_PASSWORDS": "s3cret"}))
	require.NoError(t, err)
	second, err := fromViper(newViper(map[string]any{"IS_PRODUCTION": true, "ADMIN_PASSWORDS": "s3cret"}))
	require.NoError(t, err)

	assert.Len(t, first.JWTSecret, 64)
	assert.NotEqual(t, first.JWTSecret, second.JWTSecret)
}

func TestFromViper_InvalidDuration(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"UPLOAD_TTL": "soon"}))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "UPLOAD_TTL", cfgErr.Key)
}

func TestValidate(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"ADMIN_PASSWORDS": " , "}))
	require.NoError(t, err)

	err = cfg.Validate()
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "PGSQL_URL", cfgErr.Key)
	assert.Contains(t, err.Error(), "PostgreSQL connection URL")

	cfg.DatabaseURL = "postgres://localhost/salesmaster"
	err = cfg.Validate()
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "ADMIN_PASSWORDS", cfgErr.Key)

	cfg.AdminPasswordHashes = []string{"hash"}
	assert.NoError(t, cfg.Validate())
}
