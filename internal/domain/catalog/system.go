package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

// AuditLog rows are written by the backend; the console only reads them.
type AuditLog struct {
	LogID     int    `json:"log_id" ui:"-"`
	UserID    int    `json:"user_id" ui:"user_id" field:"User ID"`
	Action    string `json:"action" ui:"action" field:"Action"`
	TableName string `json:"table_name" ui:"table_name" field:"Table"`
	Timestamp string `json:"timestamp" ui:"timestamp" field:"Timestamp,date"`
	Details   string `json:"details" ui:"details" field:"Details"`
}

var system = []*Entity{
	{
		Name:       "auditlogs",
		Title:      "Audit Logs",
		Collection: "/auditlogs",
		Item:       "/auditlog",
		IDKey:      "log_id",
		Schema:     schema.MustFromType(reflect.TypeOf(AuditLog{})),
		SearchKeys: []string{"action", "table_name", "details"},
		ListOnly:   true,
	},
}
