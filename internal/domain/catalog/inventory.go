package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

type Warehouse struct {
	WarehouseID int     `json:"warehouse_id" ui:"-"`
	Name        string  `json:"name" ui:"name" field:"Name,required"`
	Location    string  `json:"location" ui:"location" field:"Location"`
	Capacity    float64 `json:"capacity" ui:"capacity" field:"Capacity"`
	Contact     string  `json:"contact" ui:"contact" field:"Contact"`
}

type ProductType struct {
	ProductTypeID int    `json:"product_type_id" ui:"-"`
	Name          string `json:"name" ui:"name" field:"Name,required"`
	Description   string `json:"description" ui:"description" field:"Description"`
	Grade         string `json:"grade" ui:"grade" field:"Grade"`
	UnitOfMeasure string `json:"unit_of_measure" ui:"unit_of_measure" field:"Unit of Measure,select=Board Feet|Cubic Meter|Linear Feet|Square Feet|Pieces|Tons,required"`
}

type StockItem struct {
	StockID       int     `json:"stock_id" ui:"-"`
	ProductTypeID int     `json:"product_type_id" ui:"product_type_id" field:"Product Type,ref=producttypes,required"`
	WarehouseID   int     `json:"warehouse_id" ui:"warehouse_id" field:"Warehouse,ref=warehouses,required"`
	BatchID       int     `json:"batch_id" ui:"batch_id" field:"Harvest Batch,ref=harvestbatches,required"`
	Quantity      float64 `json:"quantity" ui:"quantity" field:"Quantity,required"`
	ShelfLocation string  `json:"shelf_location" ui:"shelf_location" field:"Shelf Location"`
}

type StockAlert struct {
	AlertID     int    `json:"alert_id" ui:"-"`
	StockID     int    `json:"stock_id" ui:"stock_id" field:"Stock Item,ref=stockitems,required"`
	WarehouseID int    `json:"warehouse_id" ui:"warehouse_id" field:"Warehouse,ref=warehouses,required"`
	AlertType   string `json:"alert_type" ui:"alert_type" field:"Alert Type,select=Low Stock|Out of Stock|Overstocked|Expiring Soon,required"`
	Status      string `json:"status" ui:"status" field:"Status,default=Open"`
}

type InventoryTransaction struct {
	TransactionID   int     `json:"transaction_id" ui:"-"`
	EmployeeID      int     `json:"employee_id" ui:"employee_id" field:"Employee,ref=employees,required"`
	StockID         int     `json:"stock_id" ui:"stock_id" field:"Stock Item,ref=stockitems,required"`
	WarehouseID     int     `json:"warehouse_id" ui:"warehouse_id" field:"Warehouse,ref=warehouses,required"`
	TransactionType string  `json:"transaction_type" ui:"transaction_type" field:"Type,select=IN|OUT|TRANSFER|ADJUSTMENT,required"`
	Quantity        float64 `json:"quantity" ui:"quantity" field:"Quantity,required"`
	TransactionDate string  `json:"transaction_date" ui:"transaction_date" field:"Date,date,required,default=@today"`
	Remarks         string  `json:"remarks" ui:"remarks" field:"Remarks"`
}

var inventory = []*Entity{
	{
		Name:       "warehouses",
		Title:      "Warehouses",
		Collection: "/warehouses",
		Item:       "/warehouse",
		IDKey:      "warehouse_id",
		LabelKey:   "name",
		Schema:     schema.MustFromType(reflect.TypeOf(Warehouse{})),
		SearchKeys: []string{"name", "location"},
	},
	{
		Name:       "producttypes",
		Title:      "Product Types",
		Collection: "/producttypes",
		Item:       "/producttype",
		IDKey:      "product_type_id",
		LabelKey:   "name",
		Schema:     schema.MustFromType(reflect.TypeOf(ProductType{})),
		SearchKeys: []string{"name", "grade"},
	},
	{
		Name:       "stockitems",
		Title:      "Stock Items",
		Collection: "/stockitems",
		Item:       "/stockitem",
		IDKey:      "stock_id",
		LabelKey:   "shelf_location",
		Schema:     schema.MustFromType(reflect.TypeOf(StockItem{})),
		SearchKeys: []string{"shelf_location"},
	},
	{
		Name:       "stockalerts",
		Title:      "Stock Alerts",
		Collection: "/stockalerts",
		Item:       "/stockalert",
		IDKey:      "alert_id",
		LabelKey:   "alert_type",
		Schema:     schema.MustFromType(reflect.TypeOf(StockAlert{})),
		SearchKeys: []string{"alert_type", "status"},
	},
	{
		Name:       "inventorytransactions",
		Title:      "Inventory Transactions",
		Collection: "/inventorytransactions",
		Item:       "/inventorytransaction",
		IDKey:      "transaction_id",
		LabelKey:   "transaction_type",
		Schema:     schema.MustFromType(reflect.TypeOf(InventoryTransaction{})),
		SearchKeys: []string{"transaction_type", "remarks"},
	},
}
