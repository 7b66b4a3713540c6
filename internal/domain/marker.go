package domain

import (
	"fmt"
	"strings"
)

// MarkerToken delimits the generated region of the README. The opening and
// closing markers are the same literal.
const MarkerToken = "<!--- AUTOGENERATED_COURSES_TABLE -->"

// FindMarkerLines returns the indexes of lines containing token.
func FindMarkerLines(lines []string, token string) []int {
	var out []int
	for i, line := range lines {
		if strings.Contains(line, token) {
			out = append(out, i)
		}
	}
	return out
}

// markerBounds returns the start and end marker indexes, or an error unless
// exactly two marker lines exist.
func markerBounds(op string, lines []string) (int, int, error) {
	idx := FindMarkerLines(lines, MarkerToken)
	if len(idx) != 2 {
		return 0, 0, &OpError{
			Op:   op,
			Kind: KindMarker,
			Err: fmt.Errorf("%w: found %d, please inject two %s tokens to signal start and end of autogenerated table",
				ErrMarkerCount, len(idx), MarkerToken),
		}
	}
	return idx[0], idx[1], nil
}

// InjectTable replaces everything between the two marker lines of readme with
// table. The marker lines themselves are kept. The input slice is not modified.
func InjectTable(readme, table []string) ([]string, error) {
	start, end, err := markerBounds("readme.inject", readme)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, start+1+len(table)+len(readme)-end)
	out = append(out, readme[:start+1]...)
	out = append(out, table...)
	out = append(out, readme[end:]...)
	return out, nil
}

// ExtractTable returns a copy of the lines strictly between the two markers.
func ExtractTable(readme []string) ([]string, error) {
	start, end, err := markerBounds("readme.extract", readme)
	if err != nil {
		return nil, err
	}

	out := make([]string, end-start-1)
	copy(out, readme[start+1:end])
	return out, nil
}
