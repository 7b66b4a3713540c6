package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MegaPintoos/Courses/internal/infra/logger"
	"github.com/MegaPintoos/Courses/internal/usecase"
)

func checkCmd() *cobra.Command {
	var noLint bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Report whether the README table matches the data file (no writes)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			var opts []usecase.CheckOption
			if !noLint {
				opts = append(opts, usecase.WithLinter(app.linter))
			}

			req := app.request()
			res, err := usecase.NewCheckReadme(app.entries, app.docs, opts...).Execute(cmd.Context(), req)
			if err != nil {
				logger.L().Error("readme.check.failed", "err", err)
				return err
			}

			out := cmd.OutOrStdout()
			printCheck(out, req.ReadmePath, res)
			printStats(out, res.Stats)

			logger.L().Info("readme.checked", "readme", req.ReadmePath, "entries", res.Entries, "up_to_date", res.UpToDate)
			if !res.UpToDate {
				return fmt.Errorf("%s is out of date (run coursetable to regenerate)", req.ReadmePath)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&noLint, "no-lint", false, "Skip parsing the regenerated table as markdown")
	return c
}
