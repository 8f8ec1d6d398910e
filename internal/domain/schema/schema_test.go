package schema

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testInvoice mirrors the invoice wire shape, including the renamed fields
// between the form and the backend.
type testInvoice struct {
	InvoiceID   int      `json:"invoice_id" ui:"-"`
	SOID        int      `json:"soid" ui:"so_id" field:"Sales Order,ref=salesorders,required"`
	InvoiceDate string   `json:"invoice_date" ui:"issue_date" field:"Issue Date,date,required,default=@today"`
	DueDate     string   `json:"due_date" ui:"due_date" field:"Due Date,date,required,default=@today+30"`
	TotalAmount float64  `json:"total_amount" ui:"total_amount" field:"Total Amount,required"`
	Tax         float64  `json:"tax" ui:"tax" field:"Tax,default=0"`
	Currency    string   `json:"currency" ui:"currency" field:"Currency,select=USD|EUR|GBP|CAD|AUD,default=USD"`
	Status      string   `json:"status" ui:"payment_status" field:"Payment Status,select=Unpaid|Partially Paid|Paid|Overdue,default=Unpaid"`
	Note        *string  `json:"note" ui:"note" field:"Note"`
	Discount    *float64 `json:"discount" ui:"discount" field:"Discount"`
}

func invoiceSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := FromType(reflect.TypeOf(testInvoice{}))
	require.NoError(t, err)
	return s
}

func TestFromType(t *testing.T) {
	t.Run("builds fields in declaration order", func(t *testing.T) {
		s := invoiceSchema(t)
		fields := s.Fields()
		require.Len(t, fields, 9)
		assert.Equal(t, "so_id", fields[0].UIKey)
		assert.Equal(t, "soid", fields[0].WireKey)
		assert.Equal(t, Ref, fields[0].Kind)
		assert.Equal(t, "salesorders", fields[0].Source)
		assert.Equal(t, Date, fields[1].Kind)
		assert.Equal(t, Decimal, fields[3].Kind)
	})

	t.Run("excludes id fields marked with ui dash", func(t *testing.T) {
		s := invoiceSchema(t)
		_, ok := s.ByWire("invoice_id")
		assert.False(t, ok)
	})

	t.Run("mapping is bijective", func(t *testing.T) {
		s := invoiceSchema(t)
		uiSeen := make(map[string]bool)
		wireSeen := make(map[string]bool)
		for _, f := range s.Fields() {
			assert.NotEmpty(t, f.UIKey)
			assert.NotEmpty(t, f.WireKey)
			assert.False(t, uiSeen[f.UIKey], "ui key %q reused", f.UIKey)
			assert.False(t, wireSeen[f.WireKey], "wire key %q reused", f.WireKey)
			uiSeen[f.UIKey] = true
			wireSeen[f.WireKey] = true

			byUI, ok := s.ByUI(f.UIKey)
			require.True(t, ok)
			assert.Equal(t, f.WireKey, byUI.WireKey)
			byWire, ok := s.ByWire(f.WireKey)
			require.True(t, ok)
			assert.Equal(t, f.UIKey, byWire.UIKey)
		}
	})

	t.Run("pointer fields are nullable", func(t *testing.T) {
		s := invoiceSchema(t)
		note, _ := s.ByUI("note")
		assert.True(t, note.Nullable)
		discount, _ := s.ByUI("discount")
		assert.True(t, discount.Nullable)
		assert.Equal(t, Decimal, discount.Kind)
		tax, _ := s.ByUI("tax")
		assert.False(t, tax.Nullable)
	})

	t.Run("rejects duplicate ui keys", func(t *testing.T) {
		type bad struct {
			A string `json:"a" ui:"x" field:"A"`
			B string `json:"b" ui:"x" field:"B"`
		}
		_, err := FromType(reflect.TypeOf(bad{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate ui key")
	})

	t.Run("rejects editable field without json name", func(t *testing.T) {
		type bad struct {
			A string `ui:"a" field:"A"`
		}
		_, err := FromType(reflect.TypeOf(bad{}))
		require.Error(t, err)
	})

	t.Run("rejects kind mismatched with Go type", func(t *testing.T) {
		type bad struct {
			A string `json:"a" ui:"a" field:"A,ref=things"`
		}
		_, err := FromType(reflect.TypeOf(bad{}))
		require.Error(t, err)
	})

	t.Run("rejects struct with no editable fields", func(t *testing.T) {
		type bad struct {
			ID int `json:"id" ui:"-"`
		}
		_, err := FromType(reflect.TypeOf(bad{}))
		require.Error(t, err)
	})
}

func TestRefSources(t *testing.T) {
	s := invoiceSchema(t)
	assert.Equal(t, []string{"salesorders"}, s.RefSources())
}

func TestDefaults(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	s := invoiceSchema(t)
	d := s.Defaults(now)

	assert.Equal(t, "2024-03-15", d["issue_date"])
	assert.Equal(t, "2024-04-14", d["due_date"])
	assert.Equal(t, "USD", d["currency"])
	assert.Equal(t, "Unpaid", d["payment_status"])
	assert.Equal(t, "0", d["tax"])
	assert.Equal(t, "", d["so_id"])
}

func TestComputedDefaults(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	qr := Field{Default: "@qr"}.DefaultValue(now)
	assert.True(t, strings.HasPrefix(qr, "QR-"))
	assert.Len(t, qr, 11)

	ref := Field{Default: "@ref"}.DefaultValue(now)
	assert.True(t, strings.HasPrefix(ref, "TXN-"))

	// Two generated references should not collide.
	assert.NotEqual(t, qr, Field{Default: "@qr"}.DefaultValue(now))
}

func TestDraftFromRecord(t *testing.T) {
	s := invoiceSchema(t)

	// Wire record exactly as the backend returns it.
	rec := map[string]any{
		"invoice_id":   float64(7),
		"soid":         float64(3),
		"invoice_date": "2024-01-01T00:00:00Z",
		"due_date":     "2024-01-31T00:00:00Z",
		"total_amount": float64(200),
		"tax":          float64(10),
		"currency":     "USD",
		"status":       "Unpaid",
		"note":         nil,
		"discount":     nil,
	}

	d := s.DraftFromRecord(rec)

	assert.Equal(t, "3", d["so_id"])
	assert.Equal(t, "2024-01-01", d["issue_date"])
	assert.Equal(t, "2024-01-31", d["due_date"])
	assert.Equal(t, "200", d["total_amount"])
	assert.Equal(t, "10", d["tax"])
	assert.Equal(t, "USD", d["currency"])
	assert.Equal(t, "Unpaid", d["payment_status"])
	assert.Equal(t, "", d["note"])
	assert.Equal(t, "", d["discount"])
}

func TestWireFromDraft(t *testing.T) {
	s := invoiceSchema(t)

	t.Run("parses and renames", func(t *testing.T) {
		rec := s.WireFromDraft(Draft{
			"so_id":          "3",
			"issue_date":     "2024-01-01",
			"due_date":       "2024-01-31",
			"total_amount":   "200.50",
			"tax":            "10",
			"currency":       "USD",
			"payment_status": "Unpaid",
			"note":           "",
			"discount":       "",
		})

		assert.Equal(t, 3, rec["soid"])
		assert.Equal(t, "2024-01-01", rec["invoice_date"])
		assert.Equal(t, 200.50, rec["total_amount"])
		assert.Equal(t, float64(10), rec["tax"])
		assert.Equal(t, "Unpaid", rec["status"])
		assert.Nil(t, rec["note"])
		assert.Nil(t, rec["discount"])
	})

	t.Run("unparsable numbers fall back per nullability", func(t *testing.T) {
		rec := s.WireFromDraft(Draft{"tax": "not a number", "discount": "nope"})
		assert.Equal(t, float64(0), rec["tax"])
		assert.Nil(t, rec["discount"])
	})
}

func TestMappingRoundTrip(t *testing.T) {
	// Loading a record for edit and submitting without changes must
	// reproduce the original wire fields.
	s := invoiceSchema(t)
	original := map[string]any{
		"soid":         float64(3),
		"invoice_date": "2024-01-01T00:00:00Z",
		"due_date":     "2024-01-31T00:00:00Z",
		"total_amount": float64(200),
		"tax":          float64(10),
		"currency":     "USD",
		"status":       "Unpaid",
		"note":         nil,
		"discount":     nil,
	}

	rec := s.WireFromDraft(s.DraftFromRecord(original))

	assert.Equal(t, 3, rec["soid"])
	assert.Equal(t, "2024-01-01", rec["invoice_date"])
	assert.Equal(t, "2024-01-31", rec["due_date"])
	assert.Equal(t, float64(200), rec["total_amount"])
	assert.Equal(t, float64(10), rec["tax"])
	assert.Equal(t, "USD", rec["currency"])
	assert.Equal(t, "Unpaid", rec["status"])
	assert.Nil(t, rec["note"])
	assert.Nil(t, rec["discount"])
}

func TestValidate(t *testing.T) {
	s := invoiceSchema(t)

	valid := Draft{
		"so_id":          "3",
		"issue_date":     "2024-01-01",
		"due_date":       "2024-01-31",
		"total_amount":   "200",
		"tax":            "0",
		"currency":       "USD",
		"payment_status": "Unpaid",
	}

	t.Run("valid draft produces no errors", func(t *testing.T) {
		assert.Empty(t, s.Validate(valid, nil))
	})

	t.Run("missing required fields are all reported", func(t *testing.T) {
		errs := s.Validate(Draft{"currency": "USD"}, nil)
		assert.Equal(t, "Sales Order is required", errs["so_id"])
		assert.Equal(t, "Issue Date is required", errs["issue_date"])
		assert.Equal(t, "Due Date is required", errs["due_date"])
		assert.Equal(t, "Total Amount is required", errs["total_amount"])
		assert.NotContains(t, errs, "tax")
	})

	t.Run("cross-field date ordering", func(t *testing.T) {
		d := Draft{}
		for k, v := range valid {
			d[k] = v
		}
		d["due_date"] = "2023-12-31"

		rule := DateOrder("issue_date", "due_date", "Due date must be after issue date")
		errs := s.Validate(d, []Rule{rule})
		assert.Equal(t, "Due date must be after issue date", errs["due_date"])
	})

	t.Run("email shape", func(t *testing.T) {
		type withEmail struct {
			Email string `json:"email" ui:"email" field:"Email,required,email"`
		}
		es, err := FromType(reflect.TypeOf(withEmail{}))
		require.NoError(t, err)

		errs := es.Validate(Draft{"email": "not-an-email"}, nil)
		assert.Equal(t, "Email is invalid", errs["email"])
		assert.Empty(t, es.Validate(Draft{"email": "ops@example.com"}, nil))
	})
}

func TestRecordID(t *testing.T) {
	assert.Equal(t, 7, RecordID(map[string]any{"invoice_id": float64(7)}, "invoice_id"))
	assert.Equal(t, 7, RecordID(map[string]any{"invoice_id": 7}, "invoice_id"))
	assert.Equal(t, 0, RecordID(map[string]any{}, "invoice_id"))
}
