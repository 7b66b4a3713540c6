package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MegaPintoos/Courses/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// Hint turns an error into a one-line message for people, without wrapping
// chains. Unknown errors point to the logs.
func Hint(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		base := ""
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}

		switch oe.Kind {
		case domain.KindNotFound:
			if base != "" {
				return "File not found: " + base
			}
			return "Not found"

		case domain.KindExecution:
			if base != "" {
				return "Could not access " + base
			}
			return "Unexpected error (see logs)"

		case domain.KindMarker:
			return "README needs exactly two " + domain.MarkerToken + " lines"

		case domain.KindInvalidData:
			if line := extractLine(err.Error()); line != "" {
				return withBase("Invalid course data", base) + " line " + line
			}
			return withBase("Invalid course data", base)

		case domain.KindInvalidConfig:
			if line := extractLine(err.Error()); line != "" {
				return withBase("Invalid config", base) + " line " + line
			}
			return withBase("Invalid config", base)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrUnknownDifficulty) {
		return "Unknown difficulty level"
	}
	return "Unexpected error (see logs)"
}

func withBase(msg, base string) string {
	if base == "" {
		return msg
	}
	return msg + " at " + base
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
