package services

import (
	"sort"
	"strings"
)

// ValidationError carries the full set of per-field rule violations produced
// by one validation pass. It is always fully enumerated, never partial.
type ValidationError struct {
	Fields map[string][]string
}

// Error joins every violation into one message, fields in stable order.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		parts = append(parts, strings.Join(e.Fields[field], " "))
	}
	return strings.Join(parts, " ")
}

// add appends a violation message for the field.
func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// isEmpty reports whether no violation was recorded.
func (e *ValidationError) isEmpty() bool {
	return len(e.Fields) == 0
}
