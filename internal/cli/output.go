package cli

import (
	"fmt"
	"io"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ui/tui"
	"github.com/MegaPintoos/Courses/internal/usecase"
)

func printGenerated(w io.Writer, res usecase.GenerateResult) {
	th := tui.DefaultTheme()
	if res.Changed {
		fmt.Fprintf(w, "%s updated %s with %d course(s)\n", th.OK.Render("✓"), res.ReadmePath, res.Entries)
		return
	}
	fmt.Fprintf(w, "%s %s already up to date (%d course(s))\n", th.OK.Render("✓"), res.ReadmePath, res.Entries)
}

func printCheck(w io.Writer, readme string, res usecase.CheckResult) {
	th := tui.DefaultTheme()
	if res.UpToDate {
		fmt.Fprintf(w, "%s %s is up to date (%d course(s))\n", th.OK.Render("✓"), readme, res.Entries)
		return
	}

	fmt.Fprintf(w, "%s %s is out of date\n\n", th.Fail.Render("✗"), readme)
	fmt.Fprintln(w, th.Subtitle.Render("generated region (-current +expected):"))
	fmt.Fprintln(w, res.Diff)
}

func printStats(w io.Writer, stats *domain.TableStats) {
	if stats == nil {
		return
	}
	fmt.Fprintln(w, tui.DefaultTheme().Help.Render(
		fmt.Sprintf("table: %d column(s), %d row(s)", stats.Columns, stats.Rows),
	))
}

func printReport(w io.Writer, dataPath string, rep usecase.ValidationReport) {
	th := tui.DefaultTheme()
	if rep.OK() {
		fmt.Fprintf(w, "%s %s: %d course(s), no problems\n", th.OK.Render("✓"), dataPath, rep.Entries)
		return
	}

	fmt.Fprintf(w, "%s %s: %d problem(s) in %d course(s)\n", th.Fail.Render("✗"), dataPath, len(rep.Problems), rep.Entries)
	for _, p := range rep.Problems {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}
