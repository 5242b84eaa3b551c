package cmd

import (
	"errors"
	"fmt"

	"github.com/angelospk/opensubtitles-xmlrpc/internal/config"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to OpenSubtitles and store the session token",
	Long: `Logs in with the given (or configured) credentials and saves the session
token to the config file so later commands reuse the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username := loginUsername
		if username == "" {
			username = appConfig.Username
		}
		password := loginPassword
		if password == "" {
			password = appConfig.Password
		}
		if username == "" || password == "" {
			return fmt.Errorf("username and password are required. Use --username/--password or set %s and %s", config.KeyUsername, config.KeyPassword)
		}

		client, err := newSessionClient(false)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "Logging in to OpenSubtitles...")
		token, err := client.Login(username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if token == "" {
			return errors.New("login failed: the service returned no token")
		}

		if err := saveConfigValue(config.KeyToken, token); err != nil {
			return fmt.Errorf("login succeeded but the token could not be saved: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", username)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "OpenSubtitles username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "OpenSubtitles password")
}
