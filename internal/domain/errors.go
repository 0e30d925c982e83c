package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("username or email already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid or missing anti-forgery token")
)

// FieldErrors maps a form field name to the list of messages for that
// field. All violated fields are reported together so a form can show
// every problem at once.
type FieldErrors map[string][]string

// Add appends a message to the given field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%v: %s", ErrInvalidInput, strings.Join(fields, ", "))
}

// Is makes errors.Is(fe, ErrInvalidInput) report true, so callers can
// treat field errors uniformly with other invalid-input failures.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}
