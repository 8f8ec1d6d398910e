package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field is one editable field of an entity: its display label, its name on
// both sides of the UI↔wire mapping, and how its value is edited, validated
// and converted.
type Field struct {
	Label    string
	UIKey    string // name used by the form draft
	WireKey  string // name used by the backend JSON
	Kind     Kind
	Required bool
	Email    bool     // value must look like an email address
	Nullable bool     // empty numeric/date input becomes null on the wire
	Options  []string // fixed option list for Select fields
	Source   string   // entity name whose records feed a Ref dropdown
	Default  string   // default draft value; "@" prefix marks computed defaults
}

// DefaultValue resolves the field's default for a fresh draft. Computed
// defaults are evaluated at open time, so "today" is the day the form opens.
func (f Field) DefaultValue(now time.Time) string {
	if !strings.HasPrefix(f.Default, "@") {
		return f.Default
	}
	switch {
	case f.Default == "@today":
		return now.Format("2006-01-02")
	case strings.HasPrefix(f.Default, "@today+"):
		days, err := strconv.Atoi(strings.TrimPrefix(f.Default, "@today+"))
		if err != nil {
			return now.Format("2006-01-02")
		}
		return now.AddDate(0, 0, days).Format("2006-01-02")
	case f.Default == "@qr":
		return "QR-" + strings.ToUpper(uuid.NewString()[:8])
	case f.Default == "@ref":
		return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
	default:
		return strings.TrimPrefix(f.Default, "@")
	}
}

// parseFieldTag parses a `field:"..."` struct tag. The first element is the
// label; the rest are flags:
//
//	int, decimal, date, bool      value kind (text is the default for strings)
//	select=A|B|C                  fixed option list
//	ref=<entity>                  foreign-key dropdown fed by another entity
//	required                      blocks submission when empty
//	email                         email-shape check
//	default=<value>               draft default; @today, @today+N, @qr, @ref
//	                              are computed at form-open time
func parseFieldTag(tag string) (Field, bool, error) {
	parts := splitTag(tag)
	if len(parts) == 0 || parts[0] == "" {
		return Field{}, false, fmt.Errorf("field tag needs a label")
	}

	f := Field{Label: parts[0], Kind: Text}
	explicitKind := false

	for _, part := range parts[1:] {
		key, value, hasValue := strings.Cut(part, "=")
		switch key {
		case "int":
			f.Kind, explicitKind = Int, true
		case "decimal":
			f.Kind, explicitKind = Decimal, true
		case "date":
			f.Kind, explicitKind = Date, true
		case "bool":
			f.Kind, explicitKind = Bool, true
		case "select":
			if !hasValue || value == "" {
				return Field{}, false, fmt.Errorf("select needs options: %q", tag)
			}
			f.Kind, explicitKind = Select, true
			f.Options = strings.Split(value, "|")
		case "ref":
			if !hasValue || value == "" {
				return Field{}, false, fmt.Errorf("ref needs a source entity: %q", tag)
			}
			f.Kind, explicitKind = Ref, true
			f.Source = value
		case "required":
			f.Required = true
		case "email":
			f.Email = true
		case "default":
			f.Default = value
		default:
			return Field{}, false, fmt.Errorf("unknown field tag flag %q in %q", key, tag)
		}
	}

	return f, explicitKind, nil
}

// splitTag splits a field tag on commas, keeping select option lists intact.
// Options use | as separator so commas never appear inside a single flag.
func splitTag(tag string) []string {
	parts := strings.Split(tag, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
