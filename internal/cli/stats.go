package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c-h3xcode/td/internal/tqueue"
	logpkg "github.com/c-h3xcode/td/pkg/log"
)

func newStatsCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show head and tail cursors for a queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			queueID, _ := cmd.Flags().GetInt64("queue")

			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			q := tqueue.QueueID(queueID)
			fmt.Fprintf(cmd.OutOrStdout(), "queue: %d\nhead: %v\ntail: %v\n",
				queueID, rt.Engine().Head(q), rt.Engine().Tail(q))
			return nil
		},
	}
	cmd.Flags().Int64("queue", 0, "Queue identifier")
	_ = cmd.MarkFlagRequired("queue")
	return cmd
}
