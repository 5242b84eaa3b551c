package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/angelospk/opensubtitles-xmlrpc/internal/config"
	coreErrors "github.com/angelospk/opensubtitles-xmlrpc/pkg/core/errors"
	"github.com/angelospk/opensubtitles-xmlrpc/pkg/core/opensubtitles"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SubtitleClient is the part of opensubtitles.Client the commands use.
type SubtitleClient interface {
	Login(username, password string) (string, error)
	Logout() (bool, error)
	SearchSubtitles(imdbID string, languages []string, extra map[string]interface{}) ([]opensubtitles.SubtitleInfo, error)
	DownloadSubtitleFiles(fileIDs ...string) ([]opensubtitles.DownloadedSubtitle, error)
	TryUploadSubtitles(params map[string]interface{}) (bool, error)
	UploadSubtitles(params map[string]interface{}) (string, error)
	NoOperation() (bool, error)
	KeepAlive(ctx context.Context, interval time.Duration) error
	AutoUpdate(program string) (opensubtitles.Response, error)
	SetToken(token string)
	Close() error
}

// NewOSClientFunc builds the client used by every command. Replaced in tests.
var NewOSClientFunc = func(cfg config.Config, logger *logrus.Logger) (SubtitleClient, error) {
	client, err := opensubtitles.NewClient(opensubtitles.Config{
		Endpoint:  cfg.Endpoint,
		Language:  cfg.Language,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

var (
	// Used for flags.
	cfgFile string

	appConfig config.Config
	logger    = logrus.New()

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "oscli",
		Short: "A CLI tool for the OpenSubtitles XML-RPC API.",
		Long: `oscli logs in to OpenSubtitles, searches and downloads subtitles
and uploads new ones through the XML-RPC API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.oscli/config.yaml or ./config.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".oscli"))
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error reading config file (%s): %v\n", viper.ConfigFileUsed(), err)
		}
	}
}

// loadConfig runs via PersistentPreRunE after initConfig.
func loadConfig(cmd *cobra.Command) error {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return err
	}
	appConfig = cfg

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(cfg.LogLevel)
	return nil
}

// newSessionClient creates a client carrying the stored session token.
func newSessionClient(requireToken bool) (SubtitleClient, error) {
	if requireToken && appConfig.Token == "" {
		return nil, fmt.Errorf("%w: run 'oscli login' first", coreErrors.ErrNotLoggedIn)
	}
	client, err := NewOSClientFunc(appConfig, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize OpenSubtitles client")
		return nil, fmt.Errorf("failed to initialize OpenSubtitles client: %w", err)
	}
	if appConfig.Token != "" {
		client.SetToken(appConfig.Token)
	}
	return client, nil
}

// saveConfigValue stores key in the config file in use, creating
// $HOME/.oscli/config.yaml when there is none.
func saveConfigValue(key string, value interface{}) error {
	viper.Set(key, value)

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get home directory: %w", err)
		}
		configDir := filepath.Join(home, ".oscli")
		if err := os.MkdirAll(configDir, 0750); err != nil {
			return fmt.Errorf("could not create config directory %s: %w", configDir, err)
		}
		configPath = filepath.Join(configDir, "config.yaml")
	}

	// WriteConfigAs saves all current viper settings, not just key.
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config %s: %w", configPath, err)
	}
	logger.WithFields(logrus.Fields{"key": key, "file": configPath}).Debug("Config saved")
	return nil
}
