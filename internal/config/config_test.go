package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "john_doe", cfg.UserName)
	require.Equal(t, "john@xyz.com", cfg.UserEmail)
	require.Equal(t, "ABCD123", cfg.RollNumber)
	require.Empty(t, cfg.SignPrivateKey)
	require.Equal(t, 50, cfg.GenerateMaxCount)
	require.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("USER_NAME", "jane_roe")
	t.Setenv("USER_EMAIL", "jane@example.com")
	t.Setenv("ROLL_NUMBER", "XYZ999")
	t.Setenv("GENERATE_MAX_COUNT", "10")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.ListenAddr())
	require.Equal(t, "jane_roe", cfg.UserName)
	require.Equal(t, "jane@example.com", cfg.UserEmail)
	require.Equal(t, "XYZ999", cfg.RollNumber)
	require.Equal(t, 10, cfg.GenerateMaxCount)
}

func TestLoad_InvalidEmail(t *testing.T) {
	t.Setenv("USER_EMAIL", "not-an-email")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidGenerateMaxCount(t *testing.T) {
	t.Setenv("GENERATE_MAX_COUNT", "0")

	_, err := Load()
	require.Error(t, err)
}
