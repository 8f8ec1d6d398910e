package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Draft is a form's in-progress state: UI field names mapped to the raw
// string values the user typed. Drafts only ever hold strings; conversion to
// wire values happens at submit time.
type Draft map[string]string

// Defaults builds a fresh draft for a new record, resolving computed
// defaults against now.
func (s *Schema) Defaults(now time.Time) Draft {
	d := make(Draft, len(s.fields))
	for _, f := range s.fields {
		d[f.UIKey] = f.DefaultValue(now)
	}
	return d
}

// DraftFromRecord converts a wire record into a draft for editing, applying
// the wire→UI name mapping and value formatting: timestamps are truncated to
// date-only strings for date inputs, numbers are rendered without trailing
// zeros, and null becomes the empty string.
func (s *Schema) DraftFromRecord(rec map[string]any) Draft {
	d := make(Draft, len(s.fields))
	for _, f := range s.fields {
		d[f.UIKey] = formatValue(f, rec[f.WireKey])
	}
	return d
}

// WireFromDraft converts a draft into the wire shape for submission,
// applying the UI→wire name mapping and per-kind parsing. Unparsable or
// empty numeric input falls back to null for nullable fields and 0
// otherwise; validation runs before submission, so required fields are
// already known to be present.
func (s *Schema) WireFromDraft(d Draft) map[string]any {
	rec := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		rec[f.WireKey] = parseValue(f, d[f.UIKey])
	}
	return rec
}

// formatValue renders one wire value as draft input text.
func formatValue(f Field, v any) string {
	if v == nil {
		return ""
	}
	switch f.Kind {
	case Date:
		str, ok := v.(string)
		if !ok {
			return fmt.Sprintf("%v", v)
		}
		// ISO timestamps become date-only input values.
		date, _, _ := strings.Cut(str, "T")
		return date
	case Int, Ref:
		return strconv.Itoa(toInt(v))
	case Decimal:
		switch n := v.(type) {
		case float64:
			return decimal.NewFromFloat(n).String()
		case json.Number:
			return n.String()
		default:
			return fmt.Sprintf("%v", v)
		}
	case Bool:
		if b, ok := v.(bool); ok && b {
			return "true"
		}
		return "false"
	default:
		if str, ok := v.(string); ok {
			return str
		}
		return fmt.Sprintf("%v", v)
	}
}

// parseValue converts one draft input back to its wire value.
func parseValue(f Field, raw string) any {
	raw = strings.TrimSpace(raw)
	switch f.Kind {
	case Int, Ref:
		n, err := strconv.Atoi(raw)
		if err != nil {
			if f.Nullable {
				return nil
			}
			return 0
		}
		return n
	case Decimal:
		dec, err := decimal.NewFromString(raw)
		if err != nil {
			if f.Nullable {
				return nil
			}
			return float64(0)
		}
		return dec.InexactFloat64()
	case Date:
		if raw == "" && f.Nullable {
			return nil
		}
		return raw
	case Bool:
		return raw == "true"
	default:
		if raw == "" && f.Nullable {
			return nil
		}
		return raw
	}
}

// RecordID extracts a record's integer id under the given wire key. JSON
// decoding yields float64 for numbers, so both forms are accepted.
func RecordID(rec map[string]any, key string) int {
	return toInt(rec[key])
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
