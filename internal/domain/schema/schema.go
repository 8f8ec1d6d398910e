package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Schema is the ordered field list of one entity together with the UI↔wire
// name mapping. The mapping is total and bijective over the editable fields:
// every field has exactly one UI name and one wire name, and no name is
// reused on either side. FromType enforces this when the schema is built, so
// a renamed backend field fails loudly instead of producing missing values.
type Schema struct {
	fields []Field
	byUI   map[string]int
	byWire map[string]int
}

// FromType builds a schema from a wire record struct. Each exported struct
// field carries:
//
//	json:"<wire name>"   the backend field name
//	ui:"<ui name>"       the form field name; "-" excludes it from editing
//	field:"..."          label, kind and flags (see parseFieldTag)
//
// Pointer-typed numerics and strings are nullable: an empty input marshals
// as null rather than a zero value.
func FromType(t reflect.Type) (*Schema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", t)
	}

	s := &Schema{
		byUI:   make(map[string]int),
		byWire: make(map[string]int),
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		uiKey := sf.Tag.Get("ui")
		if uiKey == "" || uiKey == "-" {
			continue
		}

		wireKey, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if wireKey == "" || wireKey == "-" {
			return nil, fmt.Errorf("schema: %s.%s has ui tag %q but no json name", t.Name(), sf.Name, uiKey)
		}

		fieldTag := sf.Tag.Get("field")
		if fieldTag == "" {
			return nil, fmt.Errorf("schema: %s.%s has ui tag %q but no field tag", t.Name(), sf.Name, uiKey)
		}

		f, explicitKind, err := parseFieldTag(fieldTag)
		if err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", t.Name(), sf.Name, err)
		}
		f.UIKey = uiKey
		f.WireKey = wireKey

		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			f.Nullable = true
			ft = ft.Elem()
		}
		if !explicitKind {
			switch ft.Kind() {
			case reflect.Int, reflect.Int64, reflect.Int32:
				f.Kind = Int
			case reflect.Float64, reflect.Float32:
				f.Kind = Decimal
			case reflect.Bool:
				f.Kind = Bool
			case reflect.String:
				f.Kind = Text
			default:
				return nil, fmt.Errorf("schema: %s.%s: unsupported type %s", t.Name(), sf.Name, sf.Type)
			}
		}
		if err := checkKindType(f, ft); err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", t.Name(), sf.Name, err)
		}

		if _, dup := s.byUI[f.UIKey]; dup {
			return nil, fmt.Errorf("schema: %s: duplicate ui key %q", t.Name(), f.UIKey)
		}
		if _, dup := s.byWire[f.WireKey]; dup {
			return nil, fmt.Errorf("schema: %s: duplicate wire key %q", t.Name(), f.WireKey)
		}

		s.byUI[f.UIKey] = len(s.fields)
		s.byWire[f.WireKey] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	if len(s.fields) == 0 {
		return nil, fmt.Errorf("schema: %s has no editable fields", t.Name())
	}

	return s, nil
}

// MustFromType is FromType for static entity registration.
func MustFromType(t reflect.Type) *Schema {
	s, err := FromType(t)
	if err != nil {
		panic(err)
	}
	return s
}

// checkKindType rejects tag kinds that do not match the Go field type.
func checkKindType(f Field, ft reflect.Type) error {
	switch f.Kind {
	case Int, Ref:
		if ft.Kind() != reflect.Int && ft.Kind() != reflect.Int64 && ft.Kind() != reflect.Int32 {
			return fmt.Errorf("%s field needs an int type, got %s", f.Kind, ft)
		}
	case Decimal:
		if ft.Kind() != reflect.Float64 && ft.Kind() != reflect.Float32 {
			return fmt.Errorf("decimal field needs a float type, got %s", ft)
		}
	case Bool:
		if ft.Kind() != reflect.Bool {
			return fmt.Errorf("bool field needs a bool type, got %s", ft)
		}
	case Text, Date, Select:
		if ft.Kind() != reflect.String {
			return fmt.Errorf("%s field needs a string type, got %s", f.Kind, ft)
		}
	}
	return nil
}

// Fields returns the editable fields in declaration order.
func (s *Schema) Fields() []Field {
	return s.fields
}

// ByUI looks a field up by its UI name.
func (s *Schema) ByUI(key string) (Field, bool) {
	i, ok := s.byUI[key]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// ByWire looks a field up by its wire name.
func (s *Schema) ByWire(key string) (Field, bool) {
	i, ok := s.byWire[key]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// RefSources returns the distinct entity names feeding Ref dropdowns, in
// field order.
func (s *Schema) RefSources() []string {
	seen := make(map[string]bool)
	var sources []string
	for _, f := range s.fields {
		if f.Kind == Ref && !seen[f.Source] {
			seen[f.Source] = true
			sources = append(sources, f.Source)
		}
	}
	return sources
}
