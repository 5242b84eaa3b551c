package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var autoUpdateCmd = &cobra.Command{
	Use:   "autoupdate <program>",
	Short: "Show the latest version info the service has for a program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSessionClient(false)
		if err != nil {
			return err
		}
		defer client.Close()

		info, err := client.AutoUpdate(args[0])
		if err != nil {
			return fmt.Errorf("autoupdate failed: %w", err)
		}
		out := cmd.OutOrStdout()
		if info == nil {
			fmt.Fprintf(out, "No update information for %s.\n", args[0])
			return nil
		}

		keys := make([]string, 0, len(info))
		for k := range info {
			if k != "status" && k != "seconds" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %v\n", k, info[k])
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(autoUpdateCmd)
}
