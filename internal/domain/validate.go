package domain

import (
	"errors"
	"net/url"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// FieldProblem is a single failed rule on an entry field.
type FieldProblem struct {
	Field   string
	Message string
}

// Validate checks an entry against the content rules used by the data linter.
// It returns validation.Errors keyed by column name.
func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Topic, validation.Required.Error("topic is required")),
		validation.Field(&e.Format, validation.Required.Error("format is required")),
		validation.Field(&e.Difficulty,
			validation.Required.Error("difficulty is required"),
			validation.By(knownDifficulty),
		),
		validation.Field(&e.ReleaseYear,
			validation.Required.Error("release_year is required"),
			validation.Match(yearPattern).Error("release_year must be a 4-digit year"),
		),
		validation.Field(&e.Label, validation.Required.Error("label is required")),
		validation.Field(&e.URL,
			validation.Required.Error("url is required"),
			validation.By(absoluteHTTPURL),
		),
		validation.Field(&e.Author, validation.Required.Error("author is required")),
	)
}

// Problems flattens the result of Validate into column-sorted problems.
// Non-validation errors are reported under the empty field name.
func (e Entry) Problems() []FieldProblem {
	err := e.Validate()
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return []FieldProblem{{Message: err.Error()}}
	}

	out := make([]FieldProblem, 0, len(verrs))
	for field, ferr := range verrs {
		out = append(out, FieldProblem{Field: columnName(field), Message: ferr.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func knownDifficulty(value any) error {
	d, _ := value.(Difficulty)
	if !d.Valid() {
		return validation.NewError("validation_difficulty", "difficulty must be 1, 2 or 3")
	}
	return nil
}

func absoluteHTTPURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return validation.NewError("validation_url_invalid", "url is not valid")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return validation.NewError("validation_url_scheme", "url must be an absolute http(s) URL")
	}
	if u.Host == "" {
		return validation.NewError("validation_url_host", "url must include a host")
	}
	return nil
}

// ozzo keys errors by the struct field's json tag or Go name; map Go names to columns.
func columnName(field string) string {
	switch field {
	case "ReleaseYear":
		return ColumnReleaseYear
	case "URL":
		return ColumnURL
	default:
		return strings.ToLower(field)
	}
}
