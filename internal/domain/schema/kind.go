// Package schema derives per-entity field schemas from struct tags on wire
// record types. A schema describes the editable fields of an entity, the
// two-way mapping between UI field names and wire field names, and the value
// conversions between form drafts and the JSON shapes the backend expects.
package schema

// Kind classifies how a field is edited and converted.
type Kind int

const (
	// Text is a free-form string input.
	Text Kind = iota
	// Int is a whole-number input; empty parses to 0, or null when nullable.
	Int
	// Decimal is a fractional-number input, used for money and quantities.
	Decimal
	// Date is a date-only input; wire timestamps are truncated to the date
	// part when loading a record for edit.
	Date
	// Select picks one value from a fixed option list, passed through
	// verbatim. The UI side never enforces transition legality on statuses.
	Select
	// Ref picks the id of a record from another collection.
	Ref
	// Bool is a checkbox.
	Bool
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Int:
		return "int"
	case Decimal:
		return "decimal"
	case Date:
		return "date"
	case Select:
		return "select"
	case Ref:
		return "ref"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}
