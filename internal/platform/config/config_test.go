package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FromEnv_RequiresSigningKey(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SIGNING_KEY")
}

func Test_FromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "motorvault", cfg.DBName)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 10080*time.Minute, cfg.JWT.TTL)
}

func Test_FromEnv_RejectsUnknownAlgorithm(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	t.Setenv("JWT_ALGORITHM", "RS256")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ALGORITHM")
}

func Test_FromEnv_InvalidTTL(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	_, err := FromEnv()
	require.Error(t, err)
}

func Test_FromEnv_CustomTTL(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	t.Setenv("JWT_TTL_MINUTES", "60")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
}
