package api

import (
	"fmt"
	"strings"
)

// Error is a failed API operation. Status is zero for transport-level
// failures (connection refused, timeout); Message is the backend-supplied
// text when the response carried one.
type Error struct {
	Op      string // "POST /salesorders"
	Status  int    // HTTP status, 0 when the request never completed
	Message string // backend-supplied message, may be empty
	Err     error  // underlying transport error, nil for HTTP failures
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// relationHints maps substrings of backend constraint messages to the
// relation the user should be told about. The backend reports database
// errors as raw text, so constraint violations can only be classified by
// message content. Replacing this with structured error codes needs a
// backend contract change; the user-facing capability of naming the
// offending relation is what matters here.
var relationHints = []struct {
	needle   string
	relation string
}{
	{"employee", "Employee"},
	{"supplier", "Supplier"},
	{"customer", "Customer"},
	{"forest", "Forest"},
	{"species", "Tree species"},
	{"schedule", "Harvest schedule"},
	{"sawmill", "Sawmill"},
	{"unit", "Processing unit"},
	{"warehouse", "Warehouse"},
	{"product_type", "Product type"},
	{"stock", "Stock item"},
	{"invoice", "Invoice"},
	{"salesorder", "Sales order"},
	{"soid", "Sales order"},
	{"poid", "Purchase order"},
	{"truck", "Truck"},
	{"driver", "Driver"},
	{"route", "Route"},
	{"company", "Transport company"},
}

// FriendlyMessage turns a failed operation into a message fit for the alert
// banner. Constraint violations become "<Relation> does not exist"; anything
// else prefers the backend text over the generic fallback.
func FriendlyMessage(err error, fallback string) string {
	apiErr, ok := err.(*Error)
	if !ok {
		return fallback
	}
	if apiErr.Message == "" {
		return fallback
	}

	lower := strings.ToLower(apiErr.Message)
	if strings.Contains(lower, "foreign key") ||
		strings.Contains(lower, "constraint") ||
		strings.Contains(lower, "violates") {
		for _, hint := range relationHints {
			if strings.Contains(lower, hint.needle) {
				return hint.relation + " does not exist"
			}
		}
		return "A referenced record does not exist"
	}

	return apiErr.Message
}
