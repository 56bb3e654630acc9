package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError carries every field-level failure produced by a single
// validation pass. Fields maps a field name to an ordered list of
// human-readable messages; a field appears only if at least one of its checks
// failed. The same invalid input always produces the same messages.
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface. Failing fields are listed in the
// engine's canonical field order so the message is deterministic.
func (e *ValidationError) Error() string {
	failed := make([]string, 0, len(e.Fields))
	for _, f := range userFieldOrder {
		if _, ok := e.Fields[f]; ok {
			failed = append(failed, f)
		}
	}
	return "validation failed: " + strings.Join(failed, ", ")
}

// add appends a failure message for the given field, allocating the map on
// first use.
func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// empty reports whether no field has failed.
func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}
