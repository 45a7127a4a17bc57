package transport

import (
	"strconv"
	"strings"

	"github.com/Skotchmaster/demo_api/internal/util"
)

// Body is a decoded JSON or URL-encoded request body. A field counts as provided when its
// key is present with a non-null value.
type Body map[string]any

type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func (b Body) value(field string) (any, bool) {
	v, ok := b[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (b Body) String(field, label string) (*string, error) {
	v, ok := b.value(field)
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &FieldError{Field: field, Message: label + " must be a string"}
	}
	return &s, nil
}

// Float accepts a JSON number or numeric text. Empty text counts as absent.
func (b Body) Float(field, message string) (*float64, error) {
	v, ok := b.value(field)
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case float64:
		return &v, nil
	case string:
		f, err := util.ParseOptionalFloat(v)
		if err != nil {
			return nil, &FieldError{Field: field, Message: message}
		}
		return f, nil
	}
	return nil, &FieldError{Field: field, Message: message}
}

// Bool accepts a JSON boolean or text understood by strconv.ParseBool.
func (b Body) Bool(field string) (*bool, error) {
	v, ok := b.value(field)
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case bool:
		return &v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return &parsed, nil
		}
	}
	return nil, &FieldError{Field: field, Message: field + " must be a boolean"}
}
