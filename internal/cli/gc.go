package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	logpkg "github.com/c-h3xcode/td/pkg/log"
)

func newGCCommand(logger logpkg.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "gc",
		Short: "Drop expired events from every queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			removed := rt.RunGC(time.Now().UnixMilli())
			fmt.Fprintf(cmd.OutOrStdout(), "removed: %d\n", removed)
			return nil
		},
	}
}
