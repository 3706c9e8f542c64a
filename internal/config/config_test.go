package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the test while keeping t.Setenv's cleanup.
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "APP_ENV")
	unsetenv(t, "APP_PORT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "templates", cfg.Export.TemplateDir)
	assert.Equal(t, "export-data", cfg.Export.OutputDir)
	assert.Equal(t, "587", cfg.SMTP.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("ACCESS_CODE", "sekrit")
	t.Setenv("EXPORT_DIR", "/tmp/exports")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "sekrit", cfg.AccessCode)
	assert.Equal(t, "/tmp/exports", cfg.Export.OutputDir)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("APP_ENV", "sandbox")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_PORT", "-1")
	_, err = Load()
	assert.Error(t, err)
}
