package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

// ReadmeName is the README created or completed by Init.
const ReadmeName = "README.md"

type Initializer struct {
	docs ports.DocumentStore
}

func NewInitializer(docs ports.DocumentStore) *Initializer {
	return &Initializer{docs: docs}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

// Init writes the config and data templates under spec.Root, skipping files
// that exist unless force is set, then makes sure the README carries a marker
// pair. An existing README is never overwritten.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) ([]string, error) {
	root := filepath.Clean(spec.Root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, domain.ExecError("scaffold.mkdir", root, err)
	}

	var touched []string
	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return domain.ExecError("scaffold.mkdir", dst, err)
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return domain.ExecError("scaffold.write", dst, err)
		}
		touched = append(touched, dst)
		return nil
	})
	if err != nil {
		return touched, err
	}

	readme := filepath.Join(root, ReadmeName)
	changed, err := i.ensureMarkers(readme)
	if err != nil {
		return touched, err
	}
	if changed {
		touched = append(touched, readme)
	}
	return touched, nil
}

// ensureMarkers creates the README with an empty marker pair, or appends one
// to a README that has none. One or three-plus markers are left for a human.
func (i *Initializer) ensureMarkers(path string) (bool, error) {
	lines, err := i.docs.ReadLines(path)
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return false, err
		}
		lines = []string{"# Courses", ""}
	}

	switch n := len(domain.FindMarkerLines(lines, domain.MarkerToken)); n {
	case 2:
		return false, nil
	case 0:
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, domain.MarkerToken, domain.MarkerToken)
		if err := i.docs.WriteLines(path, lines); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, &domain.OpError{
			Op:   "scaffold.markers",
			Kind: domain.KindMarker,
			Path: path,
			Err:  fmt.Errorf("%w: found %d, expected 0 or 2", domain.ErrMarkerCount, n),
		}
	}
}
