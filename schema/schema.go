// Package schema describes the accepted shape of request bodies and checks
// decoded JSON against it.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Kind is the primitive JSON shape a field must have.
type Kind int

const (
	String Kind = iota
	StringList
	Int
	StringMap
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case StringList:
		return "list of strings"
	case Int:
		return "integer"
	case StringMap:
		return "object of strings"
	}
	return "unknown"
}

// Field is one entry of a Schema. Default is used for optional fields that
// are absent, and for nullable fields sent as null.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Nullable bool
	Default  any
}

// Schema is the ordered field list of an entity body.
type Schema []Field

// Required declares a mandatory field.
func Required(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind, Required: true}
}

// Optional declares a field that falls back to def when absent. An explicit
// null is rejected.
func Optional(name string, kind Kind, def any) Field {
	return Field{Name: name, Kind: kind, Default: def}
}

// Nullable is Optional that also accepts null as def.
func Nullable(name string, kind Kind, def any) Field {
	return Field{Name: name, Kind: kind, Nullable: true, Default: def}
}

// FieldError reports one offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error collects every FieldError found in a body.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("%s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("%d invalid fields", len(e.Fields))
}

// Decode parses body as a JSON object, validates it and returns the cleaned
// document: only schema fields, defaults filled in.
func (s Schema) Decode(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &Error{Fields: []FieldError{{Field: "body", Message: "invalid JSON"}}}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &Error{Fields: []FieldError{{Field: "body", Message: "invalid JSON"}}}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &Error{Fields: []FieldError{{Field: "body", Message: "must be a JSON object"}}}
	}
	return s.Validate(obj)
}

// Validate checks obj against the schema. Unknown keys are dropped. Numbers
// may be json.Number or float64.
func (s Schema) Validate(obj map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s))
	var errs []FieldError

	for _, f := range s {
		v, present := obj[f.Name]
		switch {
		case f.Required && v == nil:
			errs = append(errs, FieldError{Field: f.Name, Message: "field required"})
			continue
		case !present || (v == nil && f.Nullable):
			out[f.Name] = f.Default
			continue
		case v == nil:
			errs = append(errs, FieldError{Field: f.Name, Message: "must not be null"})
			continue
		}

		clean, ok := coerce(f.Kind, v)
		if !ok {
			errs = append(errs, FieldError{Field: f.Name, Message: "expected " + f.Kind.String()})
			continue
		}
		out[f.Name] = clean
	}

	if len(errs) > 0 {
		return nil, &Error{Fields: errs}
	}
	return out, nil
}

// Bind validates body and decodes the cleaned document into dst.
func (s Schema) Bind(body []byte, dst any) error {
	doc, err := s.Decode(body)
	if err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("re-encode body: %w", err)
	}
	return json.Unmarshal(b, dst)
}

func coerce(kind Kind, v any) (any, bool) {
	switch kind {
	case String:
		s, ok := v.(string)
		return s, ok
	case Int:
		return toInt(v)
	case StringList:
		items, ok := v.([]any)
		if !ok {
			return nil, false
		}
		list := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	case StringMap:
		entries, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		m := make(map[string]string, len(entries))
		for k, item := range entries {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			m[k] = s
		}
		return m, true
	}
	return nil, false
}

// toInt accepts integral numbers that fit an int without rounding.
func toInt(v any) (any, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(n.String(), 10, strconv.IntSize); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return toInt(f)
	case float64:
		// Beyond 2^53 a float64 no longer holds every integer.
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return nil, false
		}
		if strconv.IntSize == 32 && (n < math.MinInt32 || n > math.MaxInt32) {
			return nil, false
		}
		return int(n), true
	}
	return nil, false
}
