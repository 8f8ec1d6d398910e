// Package catalog registers every entity the console can manage: its REST
// resource paths, field schema, search keys, and validation rules. The
// registry is assembled at package init and the cross-entity references are
// checked there, so a broken mapping fails at startup rather than on first
// use.
package catalog

import (
	"fmt"
	"strings"

	"github.com/erp/console/internal/domain/schema"
	"github.com/erp/console/internal/infrastructure/api"
)

// Entity describes one manageable collection.
type Entity struct {
	// Name is the registry key and the plural path segment, e.g. "employees".
	Name  string
	Title string
	// Group is the sidebar section, filled in when the registry is built.
	Group string

	// Collection and Item are the REST paths. Collections are plural and
	// items are singular with the id passed as a query parameter.
	Collection string
	Item       string

	// IDKey is the wire name of the primary key, which never appears in
	// the form schema.
	IDKey string
	// LabelKey is the wire field shown next to the id in reference
	// dropdowns. Optional.
	LabelKey string

	Schema *schema.Schema

	// SearchKeys are the wire fields the list filter matches against.
	SearchKeys []string
	// Rules are cross-field validations applied on top of the schema.
	Rules []schema.Rule
	// ListOnly entities have no create/edit/delete surface.
	ListOnly bool
}

// Resource returns the entity's REST resource descriptor.
func (e *Entity) Resource() api.Resource {
	return api.Resource{Name: e.Name, Collection: e.Collection, Item: e.Item}
}

// ID extracts the primary key from a wire record.
func (e *Entity) ID(rec api.Record) int {
	return schema.RecordID(rec, e.IDKey)
}

// Label renders a record for reference dropdowns as "#id value".
func (e *Entity) Label(rec api.Record) string {
	id := e.ID(rec)
	if e.LabelKey == "" {
		return fmt.Sprintf("#%d", id)
	}
	v, ok := rec[e.LabelKey]
	if !ok || v == nil {
		return fmt.Sprintf("#%d", id)
	}
	return fmt.Sprintf("#%d %v", id, v)
}

// Matches reports whether a record matches the filter query. The match is a
// case-insensitive substring test over the entity's search keys; an empty
// query matches everything.
func (e *Entity) Matches(rec api.Record, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, key := range e.SearchKeys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprintf("%v", v)), query) {
			return true
		}
	}
	return false
}

// Group is one sidebar section.
type Group struct {
	Name     string
	Entities []*Entity
}

// Groups lists every entity in sidebar order.
var Groups = []Group{
	{Name: "Administration", Entities: administration},
	{Name: "Workforce", Entities: workforce},
	{Name: "Suppliers", Entities: suppliers},
	{Name: "Forestry", Entities: forestry},
	{Name: "Processing", Entities: processing},
	{Name: "Inventory", Entities: inventory},
	{Name: "Procurement", Entities: procurement},
	{Name: "Sales", Entities: sales},
	{Name: "Finance", Entities: finance},
	{Name: "Logistics", Entities: logistics},
	{Name: "System", Entities: system},
}

var byName = make(map[string]*Entity)

func init() {
	for gi := range Groups {
		g := &Groups[gi]
		for _, e := range g.Entities {
			e.Group = g.Name
			if _, dup := byName[e.Name]; dup {
				panic(fmt.Sprintf("catalog: duplicate entity %q", e.Name))
			}
			byName[e.Name] = e
		}
	}
	// Every reference and search key must resolve, and list-only
	// entities must not carry form-only configuration.
	for _, e := range byName {
		for _, src := range e.Schema.RefSources() {
			if _, ok := byName[src]; !ok {
				panic(fmt.Sprintf("catalog: %s references unknown entity %q", e.Name, src))
			}
		}
		for _, key := range e.SearchKeys {
			if key == e.IDKey {
				continue
			}
			if _, ok := e.Schema.ByWire(key); !ok {
				panic(fmt.Sprintf("catalog: %s search key %q not in schema", e.Name, key))
			}
		}
		if e.ListOnly && (len(e.Rules) > 0 || e.LabelKey != "") {
			panic(fmt.Sprintf("catalog: %s is list-only", e.Name))
		}
	}
}

// All returns every entity in sidebar order.
func All() []*Entity {
	var out []*Entity
	for _, g := range Groups {
		out = append(out, g.Entities...)
	}
	return out
}

// ByName looks an entity up by its registry name.
func ByName(name string) (*Entity, bool) {
	e, ok := byName[name]
	return e, ok
}
