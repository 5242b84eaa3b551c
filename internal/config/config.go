package config

import (
	"fmt"
	"strings"

	"github.com/angelospk/opensubtitles-xmlrpc/internal/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeyEndpoint  = "opensubtitles.endpoint"
	KeyLanguage  = "opensubtitles.language"
	KeyUserAgent = "opensubtitles.useragent"
	KeyUsername  = "opensubtitles.username"
	KeyPassword  = "opensubtitles.password"
	KeyToken     = "opensubtitles.token" // Session token stored after login
	KeyLogLevel  = "log.level"
)

// EnvPrefix is prepended to environment overrides, e.g. OSCLI_OPENSUBTITLES_USERAGENT.
const EnvPrefix = "OSCLI"

type Config struct {
	Endpoint  string
	Language  string
	UserAgent string
	Username  string
	Password  string
	Token     string
	LogLevel  logrus.Level
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEndpoint, constants.DefaultEndpoint)
	v.SetDefault(KeyLanguage, constants.DefaultLanguage)
	v.SetDefault(KeyUserAgent, constants.DefaultUserAgent)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// FromViper reads the configuration out of v.
func FromViper(v *viper.Viper) (Config, error) {
	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	cfg := Config{
		Endpoint:  v.GetString(KeyEndpoint),
		Language:  v.GetString(KeyLanguage),
		UserAgent: v.GetString(KeyUserAgent),
		Username:  v.GetString(KeyUsername),
		Password:  v.GetString(KeyPassword),
		Token:     v.GetString(KeyToken),
		LogLevel:  level,
	}
	if cfg.Endpoint == "" {
		return Config{}, fmt.Errorf("%s must not be empty", KeyEndpoint)
	}
	return cfg, nil
}
