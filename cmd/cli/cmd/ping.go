package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var pingEvery time.Duration

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the stored session is still alive",
	Long: `Calls NoOperation once. With --every the session is kept alive by
pinging at that interval until interrupted; sessions expire after 15 idle minutes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSessionClient(true)
		if err != nil {
			return err
		}
		defer client.Close()

		alive, err := client.NoOperation()
		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}
		if !alive {
			return errors.New("session is no longer active, run 'oscli login'")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Session is active.")

		if pingEvery <= 0 {
			return nil
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		logger.WithField("interval", pingEvery).Info("Keeping session alive, press Ctrl+C to stop")
		if err := client.KeepAlive(ctx, pingEvery); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("keep-alive stopped: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pingCmd)
	pingCmd.Flags().DurationVar(&pingEvery, "every", 0, "Keep pinging at this interval (e.g. 10m)")
}
