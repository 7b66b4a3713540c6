package projectconfig

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

// FileName is the project config file looked up by Finder.
const FileName = "coursetable.yaml"

// Finder locates coursetable.yaml by searching upward from a directory.
type Finder struct {
	ConfigFile string // defaults to "coursetable.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

// FindConfig returns the path of the nearest config file at or above startDir.
func (f *Finder) FindConfig(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectconfig.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", domain.ExecError("projectconfig.find", startDir, err)
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if st, err := os.Stat(cfgPath); err == nil && !st.IsDir() {
			return cfgPath, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "projectconfig.find",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
