package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

// Invoice renames several fields between the form and the wire: the form's
// issue_date is stored as invoice_date and payment_status as status.
type Invoice struct {
	InvoiceID   int     `json:"invoice_id" ui:"-"`
	SOID        int     `json:"soid" ui:"so_id" field:"Sales Order,ref=salesorders,required"`
	InvoiceDate string  `json:"invoice_date" ui:"issue_date" field:"Issue Date,date,required,default=@today"`
	DueDate     string  `json:"due_date" ui:"due_date" field:"Due Date,date,required,default=@today+30"`
	TotalAmount float64 `json:"total_amount" ui:"total_amount" field:"Total Amount,required"`
	Tax         float64 `json:"tax" ui:"tax" field:"Tax,default=0"`
	Currency    string  `json:"currency" ui:"currency" field:"Currency,select=USD|EUR|GBP|CAD|AUD,default=USD"`
	Status      string  `json:"status" ui:"payment_status" field:"Payment Status,select=Unpaid|Partially Paid|Paid|Overdue,default=Unpaid"`
}

type Payment struct {
	PaymentID   int     `json:"payment_id" ui:"-"`
	InvoiceID   int     `json:"invoice_id" ui:"invoice_id" field:"Invoice,ref=invoices,required"`
	PaymentDate string  `json:"payment_date" ui:"payment_date" field:"Payment Date,date,required,default=@today"`
	Amount      float64 `json:"amount" ui:"amount_paid" field:"Amount Paid,required"`
	Method      string  `json:"method" ui:"payment_method" field:"Payment Method,select=Bank Transfer|Credit Card|Debit Card|Cash|Check|Wire Transfer|PayPal|Other,default=Bank Transfer"`
	ReferenceNo string  `json:"reference_no" ui:"transaction_reference" field:"Transaction Reference,default=@ref"`
	Status      string  `json:"status" ui:"status" field:"Status,select=Completed|Pending|Failed|Refunded,default=Completed"`
}

var finance = []*Entity{
	{
		Name:       "invoices",
		Title:      "Invoices",
		Collection: "/invoices",
		Item:       "/invoice",
		IDKey:      "invoice_id",
		LabelKey:   "invoice_date",
		Schema:     schema.MustFromType(reflect.TypeOf(Invoice{})),
		SearchKeys: []string{"status", "currency"},
		Rules: []schema.Rule{
			schema.DateOrder("issue_date", "due_date", "Due date must be after issue date"),
		},
	},
	{
		Name:       "payments",
		Title:      "Payments",
		Collection: "/payments",
		Item:       "/payment",
		IDKey:      "payment_id",
		LabelKey:   "reference_no",
		Schema:     schema.MustFromType(reflect.TypeOf(Payment{})),
		SearchKeys: []string{"method", "reference_no", "status"},
	},
}
