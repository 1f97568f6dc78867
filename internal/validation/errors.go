package validation

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidInput marks input that fails validation hard, as product
// creation does.
var ErrInvalidInput = errors.New("invalid input")

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Error renders fields in name order, e.g.
// "email: Enter a valid email address.; phone: Phone must be ...".
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(fe[f], " "))
	}
	return strings.Join(parts, "; ")
}
