package ports

// DocumentStore reads and rewrites line-oriented documents such as README.md.
type DocumentStore interface {
	ReadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
}
