package docstore

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

const defaultMode fs.FileMode = 0o644

// Store reads and writes text documents one line at a time.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var _ ports.DocumentStore = (*Store)(nil)

// ReadLines returns the lines of path with trailing whitespace (including \r) removed.
func (s *Store) ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.FileError("docstore.read", path, err)
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), len(b)+1)
	for sc.Scan() {
		lines = append(lines, strings.TrimRightFunc(sc.Text(), unicode.IsSpace))
	}
	if err := sc.Err(); err != nil {
		return nil, domain.ExecError("docstore.read", path, err)
	}
	return lines, nil
}

// WriteLines replaces path with lines, each terminated by "\n". The file is
// written to a sibling temp file first and renamed over the original. A
// symlinked path is followed so the link keeps pointing at the updated file.
func (s *Store) WriteLines(path string, lines []string) error {
	target, err := resolveTarget(path)
	if err != nil {
		return domain.ExecError("docstore.resolve", path, err)
	}

	mode := defaultMode
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return domain.ExecError("docstore.write", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return domain.ExecError("docstore.write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return domain.ExecError("docstore.write", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return domain.ExecError("docstore.chmod", tmpPath, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return domain.ExecError("docstore.rename", target, err)
	}
	return nil
}

// resolveTarget follows symlinks in path. A path that does not exist yet is
// returned unchanged so WriteLines can create it.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		if _, lerr := os.Lstat(path); lerr == nil {
			// Dangling link: create the file it points at.
			dst, err := os.Readlink(path)
			if err != nil {
				return "", err
			}
			if !filepath.IsAbs(dst) {
				dst = filepath.Join(filepath.Dir(path), dst)
			}
			return dst, nil
		}
		return path, nil
	}
	return "", err
}
