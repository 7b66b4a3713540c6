package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MegaPintoos/Courses/internal/infra/logger"
	"github.com/MegaPintoos/Courses/internal/usecase"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the data file entries without touching the README",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			dataPath := app.cfg.Paths.Data
			rep, err := usecase.NewValidateData(app.entries).Execute(cmd.Context(), dataPath)
			if err != nil {
				logger.L().Error("data.validate.failed", "err", err)
				return err
			}

			printReport(cmd.OutOrStdout(), dataPath, rep)

			logger.L().Info("data.validated", "data", dataPath, "entries", rep.Entries, "problems", len(rep.Problems))
			if !rep.OK() {
				return fmt.Errorf("%d problem(s) found in %s", len(rep.Problems), dataPath)
			}
			return nil
		},
	}
}
