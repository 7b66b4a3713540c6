package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/infra/logger"
	"github.com/MegaPintoos/Courses/internal/ui/tui"
	"github.com/MegaPintoos/Courses/internal/usecase"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	def := domain.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "coursetable",
		Short: "Regenerate the course table in README.md from a CSV file",
		Long: "coursetable reads course entries from a CSV file and rewrites the markdown table\n" +
			"between the two " + domain.MarkerToken + " lines of the README.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return generate(cmd.Context(), cmd.OutOrStdout(), app)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP(flagDataPath, "d", def.Paths.Data, "Path to the CSV data file")
	pf.StringP(flagReadmePath, "r", def.Paths.Readme, "Path to the README to update")
	pf.String(flagConfig, "", "Path to coursetable.yaml (optional; searched upward from the working dir if omitted)")
	pf.Bool(flagStrict, def.Strict, "Reject entries that fail data validation before generating")
	pf.String(flagLogLevel, def.Log.Level, "Log level: debug|info|warn|error")
	pf.String(flagLogFormat, def.Log.Format, "Log format: text|json")
	pf.String(flagLogFile, "", "Append logs to this file instead of stderr")

	cmd.AddCommand(
		checkCmd(),
		validateCmd(),
		previewCmd(),
		watchCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func generate(ctx context.Context, w io.Writer, app *appCtx) error {
	log := logger.L()
	req := app.request()

	log.Debug("readme.generate.start", "data", req.DataPath, "readme", req.ReadmePath, "strict", req.Strict)

	uc := usecase.NewGenerateReadme(app.entries, app.docs)
	res, err := uc.Execute(ctx, req)
	if err != nil {
		log.Error("readme.generate.failed", "err", err)
		return err
	}

	log.Info("readme.updated", "readme", res.ReadmePath, "entries", res.Entries, "changed", res.Changed)
	printGenerated(w, res)
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)

	var oe *domain.OpError
	if errors.As(err, &oe) {
		fmt.Fprintln(w, tui.DefaultTheme().Help.Render("hint: "+tui.Hint(err)))
	}
}
