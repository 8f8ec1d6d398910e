package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

type PurchaseOrder struct {
	POID                 int     `json:"poid" ui:"-"`
	EmployeeID           int     `json:"employee_id" ui:"employee_id" field:"Employee,ref=employees,required"`
	SupplierID           int     `json:"supplier_id" ui:"supplier_id" field:"Supplier,ref=suppliers,required"`
	OrderDate            string  `json:"order_date" ui:"order_date" field:"Order Date,date,required,default=@today"`
	ExpectedDeliveryDate *string `json:"expected_delivery_date" ui:"expected_delivery_date" field:"Expected Delivery,date"`
	Status               string  `json:"status" ui:"status" field:"Status,select=Pending|Approved|Received|Cancelled,default=Pending"`
	TotalAmount          float64 `json:"total_amount" ui:"total_amount" field:"Total Amount,required"`
}

type PurchaseOrderItem struct {
	POItemID      int     `json:"po_item_id" ui:"-"`
	POID          int     `json:"poid" ui:"po_id" field:"Purchase Order,ref=purchaseorders,required"`
	ProductTypeID int     `json:"product_type_id" ui:"product_type_id" field:"Product Type,ref=producttypes,required"`
	Quantity      float64 `json:"quantity" ui:"quantity" field:"Quantity,required"`
	UnitPrice     float64 `json:"unit_price" ui:"unit_price" field:"Unit Price,required"`
	Subtotal      float64 `json:"subtotal" ui:"subtotal" field:"Subtotal"`
}

type Customer struct {
	CustomerID  int    `json:"customer_id" ui:"-"`
	Name        string `json:"name" ui:"name" field:"Name,required"`
	Retailer    bool   `json:"retailer" ui:"retailer" field:"Retailer"`
	EndUser     bool   `json:"end_user" ui:"end_user" field:"End User"`
	ContactInfo string `json:"contact_info" ui:"contact_info" field:"Contact Info"`
	Address     string `json:"address" ui:"address" field:"Address"`
	TaxNumber   string `json:"tax_number" ui:"tax_number" field:"Tax Number"`
}

type SalesOrder struct {
	SOID         int     `json:"soid" ui:"-"`
	EmployeeID   int     `json:"employee_id" ui:"employee_id" field:"Employee,ref=employees,required,default=1"`
	CustomerID   int     `json:"customer_id" ui:"customer_id" field:"Customer,ref=customers,required"`
	OrderDate    string  `json:"order_date" ui:"order_date" field:"Order Date,date,required,default=@today"`
	DeliveryDate *string `json:"delivery_date" ui:"delivery_date" field:"Delivery Date,date"`
	Status       string  `json:"status" ui:"order_status" field:"Order Status,select=Pending|Processing|Shipped|Delivered|Cancelled,default=Pending"`
	TotalAmount  float64 `json:"total_amount" ui:"total_amount" field:"Total Amount,required"`
}

type SalesOrderItem struct {
	SOItemID      int     `json:"so_item_id" ui:"-"`
	SOID          int     `json:"soid" ui:"so_id" field:"Sales Order,ref=salesorders,required"`
	ProductTypeID int     `json:"product_type_id" ui:"product_type_id" field:"Product Type,ref=producttypes,required"`
	Quantity      float64 `json:"quantity" ui:"quantity" field:"Quantity,required"`
	UnitPrice     float64 `json:"unit_price" ui:"unit_price" field:"Unit Price,required"`
	Discount      float64 `json:"discount" ui:"discount" field:"Discount,default=0"`
	Subtotal      float64 `json:"subtotal" ui:"subtotal" field:"Subtotal"`
}

var procurement = []*Entity{
	{
		Name:       "purchaseorders",
		Title:      "Purchase Orders",
		Collection: "/purchaseorders",
		Item:       "/purchaseorder",
		IDKey:      "poid",
		LabelKey:   "order_date",
		Schema:     schema.MustFromType(reflect.TypeOf(PurchaseOrder{})),
		SearchKeys: []string{"status"},
	},
	{
		Name:       "purchaseorderitems",
		Title:      "Purchase Order Items",
		Collection: "/purchaseorderitems",
		Item:       "/purchaseorderitem",
		IDKey:      "po_item_id",
		Schema:     schema.MustFromType(reflect.TypeOf(PurchaseOrderItem{})),
		SearchKeys: []string{"poid"},
	},
}

var sales = []*Entity{
	{
		Name:       "customers",
		Title:      "Customers",
		Collection: "/customers",
		Item:       "/customer",
		IDKey:      "customer_id",
		LabelKey:   "name",
		Schema:     schema.MustFromType(reflect.TypeOf(Customer{})),
		SearchKeys: []string{"name", "contact_info"},
	},
	{
		Name:       "salesorders",
		Title:      "Sales Orders",
		Collection: "/salesorders",
		Item:       "/salesorder",
		IDKey:      "soid",
		LabelKey:   "order_date",
		Schema:     schema.MustFromType(reflect.TypeOf(SalesOrder{})),
		SearchKeys: []string{"status"},
	},
	{
		Name:       "salesorderitems",
		Title:      "Sales Order Items",
		Collection: "/salesorderitems",
		Item:       "/salesorderitem",
		IDKey:      "so_item_id",
		Schema:     schema.MustFromType(reflect.TypeOf(SalesOrderItem{})),
		SearchKeys: []string{"soid"},
	},
}
