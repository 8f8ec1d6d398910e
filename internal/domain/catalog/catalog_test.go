package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/console/internal/infrastructure/api"
)

func TestRegistry(t *testing.T) {
	t.Run("every entity resolves by name", func(t *testing.T) {
		all := All()
		require.Len(t, all, 38)
		for _, e := range all {
			got, ok := ByName(e.Name)
			require.True(t, ok, e.Name)
			assert.Same(t, e, got)
			assert.NotEmpty(t, e.Group)
			assert.NotEmpty(t, e.Title)
			assert.NotEmpty(t, e.IDKey)
		}
	})

	t.Run("path conventions", func(t *testing.T) {
		for _, e := range All() {
			assert.Equal(t, "/"+e.Name, e.Collection, e.Name)
			assert.True(t, strings.HasPrefix(e.Item, "/"), e.Name)
			if e.Name == "treespecies" {
				assert.Equal(t, "/treespecies-item", e.Item)
				continue
			}
			// Item paths are the singular form of the collection.
			assert.NotEqual(t, e.Collection, e.Item, e.Name)
		}
	})

	t.Run("references resolve to registered entities", func(t *testing.T) {
		for _, e := range All() {
			for _, src := range e.Schema.RefSources() {
				_, ok := ByName(src)
				assert.True(t, ok, "%s -> %s", e.Name, src)
			}
		}
	})

	t.Run("search keys exist on the wire", func(t *testing.T) {
		for _, e := range All() {
			require.NotEmpty(t, e.SearchKeys, e.Name)
			for _, key := range e.SearchKeys {
				if key == e.IDKey {
					continue
				}
				_, ok := e.Schema.ByWire(key)
				assert.True(t, ok, "%s search key %s", e.Name, key)
			}
		}
	})

	t.Run("label keys exist on the wire", func(t *testing.T) {
		for _, e := range All() {
			if e.LabelKey == "" {
				continue
			}
			_, ok := e.Schema.ByWire(e.LabelKey)
			assert.True(t, ok, "%s label key %s", e.Name, e.LabelKey)
		}
	})

	t.Run("audit logs are read only", func(t *testing.T) {
		e, ok := ByName("auditlogs")
		require.True(t, ok)
		assert.True(t, e.ListOnly)
	})
}

func TestResource(t *testing.T) {
	e, ok := ByName("salesorders")
	require.True(t, ok)
	r := e.Resource()
	assert.Equal(t, "/salesorders", r.Collection)
	assert.Equal(t, "/salesorder?id=7", r.ItemURL(7))
}

func TestMatches(t *testing.T) {
	e, ok := ByName("employees")
	require.True(t, ok)
	rec := api.Record{
		"employee_id": float64(1),
		"full_name":   "Maria Keller",
		"department":  "Quality Control",
		"position":    "Inspector",
	}

	assert.True(t, e.Matches(rec, ""))
	assert.True(t, e.Matches(rec, "maria"))
	assert.True(t, e.Matches(rec, "QUALITY"))
	assert.True(t, e.Matches(rec, "  inspector "))
	assert.False(t, e.Matches(rec, "warehouse"))
	assert.False(t, e.Matches(api.Record{"full_name": nil}, "maria"))
}

func TestLabel(t *testing.T) {
	e, _ := ByName("suppliers")
	assert.Equal(t, "#4 Timberline Ltd", e.Label(api.Record{
		"supplier_id":  float64(4),
		"company_name": "Timberline Ltd",
	}))
	assert.Equal(t, "#4", e.Label(api.Record{"supplier_id": float64(4)}))
}

func TestSalesOrderSubmission(t *testing.T) {
	// The submitted body must use the backend's field names, not the
	// form's: order_status travels as status.
	e, ok := ByName("salesorders")
	require.True(t, ok)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	draft := e.Schema.Defaults(now)
	draft["customer_id"] = "12"
	draft["total_amount"] = "999.99"

	require.Empty(t, e.Schema.Validate(draft, e.Rules))
	rec := e.Schema.WireFromDraft(draft)

	assert.Equal(t, map[string]any{
		"employee_id":   1,
		"customer_id":   12,
		"order_date":    "2024-06-01",
		"delivery_date": nil,
		"status":        "Pending",
		"total_amount":  999.99,
	}, rec)
}

func TestInvoiceDefaults(t *testing.T) {
	e, ok := ByName("invoices")
	require.True(t, ok)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	d := e.Schema.Defaults(now)

	assert.Equal(t, "2024-06-01", d["issue_date"])
	assert.Equal(t, "2024-07-01", d["due_date"])
	assert.Equal(t, "USD", d["currency"])
	assert.Equal(t, "Unpaid", d["payment_status"])
}

func TestHarvestBatchQRDefault(t *testing.T) {
	e, ok := ByName("harvestbatches")
	require.True(t, ok)

	d := e.Schema.Defaults(time.Now())
	assert.True(t, strings.HasPrefix(d["qr_code"], "QR-"))
}

func TestTruckMapping(t *testing.T) {
	// The form exposes transport_company_id and license_plate; the wire
	// carries company_id and plate_number.
	e, ok := ByName("trucks")
	require.True(t, ok)

	f, ok := e.Schema.ByUI("transport_company_id")
	require.True(t, ok)
	assert.Equal(t, "company_id", f.WireKey)

	f, ok = e.Schema.ByUI("license_plate")
	require.True(t, ok)
	assert.Equal(t, "plate_number", f.WireKey)
}
