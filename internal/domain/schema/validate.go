package schema

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator instances cache struct metadata and are safe
// for concurrent use.
var validate = validator.New()

// Rule is a cross-field validation check over a whole draft. It returns the
// offending UI field name and a message, or "" when the draft passes.
type Rule func(d Draft) (field, message string)

// Validate runs all synchronous checks against the full draft and returns a
// map of UI field name to message. An empty map means the draft may be
// submitted; a non-empty map blocks submission entirely, so no network call
// is ever made with a known-invalid draft.
func (s *Schema) Validate(d Draft, rules []Rule) map[string]string {
	errs := make(map[string]string)

	for _, f := range s.fields {
		value := strings.TrimSpace(d[f.UIKey])

		if f.Required && value == "" {
			errs[f.UIKey] = f.Label + " is required"
			continue
		}
		if f.Email && value != "" {
			if err := validate.Var(value, "email"); err != nil {
				errs[f.UIKey] = f.Label + " is invalid"
			}
		}
	}

	for _, rule := range rules {
		field, message := rule(d)
		if field == "" {
			continue
		}
		// Required-field messages win over cross-field ones.
		if _, exists := errs[field]; !exists {
			errs[field] = message
		}
	}

	return errs
}

// DateOrder builds a rule that flags endKey when its date precedes the date
// in startKey. Blank values pass; the required checks own those.
func DateOrder(startKey, endKey, message string) Rule {
	return func(d Draft) (string, string) {
		start, end := strings.TrimSpace(d[startKey]), strings.TrimSpace(d[endKey])
		if start == "" || end == "" {
			return "", ""
		}
		// Date inputs are ISO yyyy-mm-dd, so string order is date order.
		if end < start {
			return endKey, message
		}
		return "", ""
	}
}
