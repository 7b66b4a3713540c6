package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MegaPintoos/Courses/internal/infra/logger"
	"github.com/MegaPintoos/Courses/internal/infra/watcher"
)

func watchCmd() *cobra.Command {
	var debounce time.Duration

	c := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the README whenever the data file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			regen := func(ctx context.Context) error {
				if err := generate(ctx, out, app); err != nil {
					printError(errOut, err)
					return err
				}
				return nil
			}

			// A bad initial state is reported but does not stop the watch.
			_ = regen(cmd.Context())

			dataPath := app.cfg.Paths.Data
			if lp := logger.Path(); lp != "" {
				fmt.Fprintf(out, "logging to %s\n", lp)
			}
			fmt.Fprintf(out, "watching %s (ctrl+c to stop)\n", dataPath)

			w := watcher.New(dataPath,
				watcher.WithDebounce(debounce),
				watcher.WithLogger(logger.L()),
			)
			return w.Run(cmd.Context(), regen)
		},
	}

	c.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before regenerating after a change")
	return c
}
