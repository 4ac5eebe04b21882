package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/c-h3xcode/td/internal/tqueue"
	"github.com/c-h3xcode/td/pkg/eventid"
	logpkg "github.com/c-h3xcode/td/pkg/log"
)

func newReadCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read events from a queue",
		Long:  "Read unexpired events after the given cursor. With --forget the read also discards everything at or before the cursor.",
		RunE: func(cmd *cobra.Command, args []string) error {
			queueID, _ := cmd.Flags().GetInt64("queue")
			fromRaw, _ := cmd.Flags().GetInt32("from")
			limit, _ := cmd.Flags().GetInt("limit")
			forget, _ := cmd.Flags().GetBool("forget")
			filterExpr, _ := cmd.Flags().GetString("filter")

			filter, err := newEventFilter(filterExpr)
			if err != nil {
				return fmt.Errorf("invalid --filter: %w", err)
			}

			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			from := eventid.ID(0)
			if fromRaw != 0 {
				from, err = eventid.FromInt32(fromRaw)
				if err != nil {
					return err
				}
			}

			now := time.Now().UnixMilli()
			buf := make([]tqueue.Event, limit)
			n, err := rt.Engine().Get(tqueue.QueueID(queueID), from, forget, now, buf)
			if err != nil {
				return err
			}
			for _, ev := range buf[:n] {
				if !filter.Eval(tqueue.QueueID(queueID), ev, now) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "id=%v expires_ms=%d data=%s\n", ev.ID, ev.ExpiresAt, ev.Data)
			}
			return nil
		},
	}
	cmd.Flags().Int64("queue", 0, "Queue identifier")
	cmd.Flags().Int32("from", 0, "Read events after this id (0 reads from the beginning)")
	cmd.Flags().Int("limit", 100, "Maximum number of events to read")
	cmd.Flags().Bool("forget", false, "Discard events at or before the cursor")
	cmd.Flags().String("filter", "", "CEL expression over queue, id, expires_ms, size, text, now_ms")
	_ = cmd.MarkFlagRequired("queue")
	return cmd
}
