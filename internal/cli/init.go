package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MegaPintoos/Courses/internal/infra/docstore"
	"github.com/MegaPintoos/Courses/internal/infra/scaffold"
	"github.com/MegaPintoos/Courses/internal/ui/tui"
	"github.com/MegaPintoos/Courses/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create coursetable.yaml, an empty data file and README markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitProject(scaffold.NewInitializer(docstore.NewStore()))
			touched, err := uc.Execute(root, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			th := tui.DefaultTheme()
			if len(touched) == 0 {
				fmt.Fprintf(out, "%s %s is already set up\n", th.OK.Render("✓"), root)
				return nil
			}
			fmt.Fprintf(out, "%s initialized %s\n", th.OK.Render("✓"), root)
			for _, p := range touched {
				rel, err := filepath.Rel(root, p)
				if err != nil {
					rel = p
				}
				fmt.Fprintf(out, "  - %s\n", rel)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Project root (default: working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite coursetable.yaml and the data file if they exist")
	return c
}
