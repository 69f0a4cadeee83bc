package models

import (
	"sort"
	"strings"
)

// ValidationErrors is a field-keyed collection of validation failures.
// It implements the error interface so services can return it through the
// single result-or-error contract; the HTTP layer renders it as a 400
// response with the same envelope shape as not-found errors.
type ValidationErrors map[string]string

// Error implements the error interface. Fields are listed in a stable
// alphabetical order so the message is deterministic.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
