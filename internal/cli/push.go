package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/c-h3xcode/td/internal/tqueue"
	logpkg "github.com/c-h3xcode/td/pkg/log"
)

func newPushCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Append an event to a queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			queueID, _ := cmd.Flags().GetInt64("queue")
			data, _ := cmd.Flags().GetString("data")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			expiresAt := time.Now().Add(ttl).UnixMilli()
			id, err := rt.Engine().Push(tqueue.QueueID(queueID), []byte(data), expiresAt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id: %v\n", id)
			return nil
		},
	}
	cmd.Flags().Int64("queue", 0, "Queue identifier")
	cmd.Flags().String("data", "", "Event payload")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Time until the event expires")
	_ = cmd.MarkFlagRequired("queue")
	return cmd
}
