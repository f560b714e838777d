package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "LOG_LEVEL", "METRICS_NAMESPACE",
		"ADDRESS_REJECT_EMPTY_FIELDS", "ADDRESS_REJECT_EXTRA_SEGMENTS",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "addressbook", cfg.MetricsNamespace)
	assert.False(t, cfg.Address.RejectEmptyFields)
	assert.False(t, cfg.Address.RejectExtraSegments)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_NAMESPACE", "people")
	t.Setenv("ADDRESS_REJECT_EMPTY_FIELDS", "true")
	t.Setenv("ADDRESS_REJECT_EXTRA_SEGMENTS", "1")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "people", cfg.MetricsNamespace)
	assert.True(t, cfg.Address.RejectEmptyFields)
	assert.True(t, cfg.Address.RejectExtraSegments)
}

func TestNewConfig_InvalidValuesFallBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "staging")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("ADDRESS_REJECT_EMPTY_FIELDS", "nope")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Address.RejectEmptyFields)
}
