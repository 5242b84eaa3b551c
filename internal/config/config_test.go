package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://api.opensubtitles.org/xml-rpc", cfg.Endpoint)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "OSTestUserAgentTemp", cfg.UserAgent)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Token)
}

func TestFromViper_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "opensubtitles:\n  username: alice\n  token: stored-token\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("OSCLI_OPENSUBTITLES_USERAGENT", "MyAgent v1")

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, "stored-token", cfg.Token)
	assert.Equal(t, "MyAgent v1", cfg.UserAgent)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestFromViper_InvalidLogLevel(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyLogLevel, "loud")

	_, err := FromViper(v)
	assert.Error(t, err)
}
