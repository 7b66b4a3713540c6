package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MegaPintoos/Courses/internal/infra/logger"
	"github.com/MegaPintoos/Courses/internal/ui/tui"
	"github.com/MegaPintoos/Courses/internal/usecase"
)

func previewCmd() *cobra.Command {
	var plain bool
	var raw bool
	var width int
	var style string

	c := &cobra.Command{
		Use:   "preview",
		Short: "Render the generated table in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			dataPath := app.cfg.Paths.Data
			md, n, err := usecase.NewPreviewTable(app.entries).Execute(cmd.Context(), dataPath)
			if err != nil {
				logger.L().Error("preview.failed", "err", err)
				return err
			}
			logger.L().Debug("preview.ready", "data", dataPath, "entries", n, "bytes", len(md))

			out := cmd.OutOrStdout()
			if raw {
				_, err := io.WriteString(out, md)
				return err
			}

			if plain || !isTerminal(out) {
				s := style
				if s == "" {
					s = tui.PlainStyle
				}
				rendered, err := tui.RenderMarkdown(md, width, s)
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, rendered)
				return err
			}

			return tui.Run(tui.Deps{
				Title:    fmt.Sprintf("%s (%d course(s))", dataPath, n),
				Markdown: md,
				Style:    style,
				Logger:   logger.L(),
			})
		},
	}

	c.Flags().BoolVar(&plain, "plain", false, "Print the rendered table instead of opening the pager")
	c.Flags().BoolVar(&raw, "raw", false, "Print the table markdown as-is")
	c.Flags().IntVar(&width, "width", 120, "Wrap width for --plain output")
	c.Flags().StringVar(&style, "style", "", "glamour style: dark|light|notty|... (default: detect)")
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
