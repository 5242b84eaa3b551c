package cmd

import (
	"errors"
	"fmt"

	"github.com/angelospk/opensubtitles-xmlrpc/internal/config"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from OpenSubtitles",
	Long: `Ends the stored session. The token is removed from the config file
only if the service acknowledged the logout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSessionClient(true)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "Attempting to log out from OpenSubtitles...")
		ok, err := client.Logout()
		if err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		if !ok {
			return errors.New("logout failed: the service did not acknowledge the logout")
		}

		if err := saveConfigValue(config.KeyToken, ""); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logout successful.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(logoutCmd)
}
