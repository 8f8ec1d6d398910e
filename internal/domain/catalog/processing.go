package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

type Sawmill struct {
	SawmillID int     `json:"sawmill_id" ui:"-"`
	Name      string  `json:"name" ui:"name" field:"Name,required"`
	Location  string  `json:"location" ui:"location" field:"Location"`
	Capacity  float64 `json:"capacity" ui:"capacity" field:"Capacity"`
	Status    string  `json:"status" ui:"status" field:"Status,select=Operational|Maintenance|Inactive,default=Operational"`
}

type ProcessingUnit struct {
	UnitID    int     `json:"unit_id" ui:"-"`
	SawmillID int     `json:"sawmill_id" ui:"sawmill_id" field:"Sawmill,ref=sawmills,required"`
	Cutting   string  `json:"cutting" ui:"cutting" field:"Cutting"`
	Drying    string  `json:"drying" ui:"drying" field:"Drying"`
	Finishing string  `json:"finishing" ui:"finishing" field:"Finishing"`
	Capacity  float64 `json:"capacity" ui:"capacity" field:"Capacity"`
	Status    string  `json:"status" ui:"status" field:"Status,select=Active|Inactive|Maintenance,default=Active"`
}

type ProcessingOrder struct {
	ProcessingID   int      `json:"processing_id" ui:"-"`
	ProductTypeID  int      `json:"product_type_id" ui:"product_type_id" field:"Product Type,ref=producttypes,required"`
	UnitID         int      `json:"unit_id" ui:"unit_id" field:"Processing Unit,ref=processingunits,required"`
	StartDate      string   `json:"start_date" ui:"start_date" field:"Start Date,date,required,default=@today"`
	EndDate        string   `json:"end_date" ui:"end_date" field:"End Date,date"`
	OutputQuantity float64  `json:"output_quantity" ui:"output_quantity" field:"Output Quantity"`
	EfficiencyRate *float64 `json:"efficiency_rate" ui:"efficiency_rate" field:"Efficiency Rate"`
}

type MaintenanceRecord struct {
	MaintenanceID   int      `json:"maintenance_id" ui:"-"`
	UnitID          int      `json:"unit_id" ui:"unit_id" field:"Processing Unit,ref=processingunits,required"`
	MaintenanceDate string   `json:"maintenance_date" ui:"maintenance_date" field:"Date,date,required,default=@today"`
	Description     string   `json:"description" ui:"description" field:"Description,required"`
	Cost            float64  `json:"cost" ui:"cost" field:"Cost"`
	PartsUsed       string   `json:"parts_used" ui:"parts_used" field:"Parts Used"`
	DowntimeHours   *float64 `json:"downtime_hours" ui:"downtime_hours" field:"Downtime (h)"`
}

type WasteRecord struct {
	WasteID        int     `json:"waste_id" ui:"-"`
	ProcessingID   int     `json:"processing_id" ui:"processing_id" field:"Processing Order,ref=processingorders,required"`
	WasteType      string  `json:"waste_type" ui:"waste_type" field:"Waste Type,select=Sawdust|Wood Chips|Bark|Off-cuts|Shavings|Other,required"`
	Volume         float64 `json:"volume" ui:"volume" field:"Volume"`
	DisposalMethod string  `json:"disposal_method" ui:"disposal_method" field:"Disposal,select=Biomass Energy|Mulch Production|Composting|Landfill|Recycling|Pellets"`
	Recycled       bool    `json:"recycled" ui:"recycled" field:"Recycled"`
}

type QualityInspection struct {
	InspectionID    int     `json:"inspection_id" ui:"-"`
	EmployeeID      int     `json:"employee_id" ui:"employee_id" field:"Inspector,ref=employees,required"`
	ProcessingID    *int    `json:"processing_id" ui:"processing_id" field:"Processing Order,ref=processingorders"`
	POItemID        *int    `json:"po_item_id" ui:"po_item_id" field:"PO Item,ref=purchaseorderitems"`
	BatchID         int     `json:"batch_id" ui:"batch_id" field:"Harvest Batch,ref=harvestbatches,required"`
	Result          string  `json:"result" ui:"result" field:"Result,select=Pass|Fail|Conditional,default=Pass"`
	MoistureLevel   float64 `json:"moisture_level" ui:"moisture_level" field:"Moisture Level"`
	CertificationID string  `json:"certification_id" ui:"certification_id" field:"Certification ID"`
	Date            string  `json:"date" ui:"date" field:"Date,date,required,default=@today"`
}

var processing = []*Entity{
	{
		Name:       "sawmills",
		Title:      "Sawmills",
		Collection: "/sawmills",
		Item:       "/sawmill",
		IDKey:      "sawmill_id",
		LabelKey:   "name",
		Schema:     schema.MustFromType(reflect.TypeOf(Sawmill{})),
		SearchKeys: []string{"name", "location"},
	},
	{
		Name:       "processingunits",
		Title:      "Processing Units",
		Collection: "/processingunits",
		Item:       "/processingunit",
		IDKey:      "unit_id",
		LabelKey:   "cutting",
		Schema:     schema.MustFromType(reflect.TypeOf(ProcessingUnit{})),
		SearchKeys: []string{"cutting", "drying", "finishing"},
	},
	{
		Name:       "processingorders",
		Title:      "Processing Orders",
		Collection: "/processingorders",
		Item:       "/processingorder",
		IDKey:      "processing_id",
		LabelKey:   "start_date",
		Schema:     schema.MustFromType(reflect.TypeOf(ProcessingOrder{})),
		SearchKeys: []string{"start_date", "end_date"},
		Rules: []schema.Rule{
			schema.DateOrder("start_date", "end_date", "End date must be after start date"),
		},
	},
	{
		Name:       "maintenancerecords",
		Title:      "Maintenance Records",
		Collection: "/maintenancerecords",
		Item:       "/maintenancerecord",
		IDKey:      "maintenance_id",
		LabelKey:   "description",
		Schema:     schema.MustFromType(reflect.TypeOf(MaintenanceRecord{})),
		SearchKeys: []string{"description", "parts_used"},
	},
	{
		Name:       "wasterecords",
		Title:      "Waste Records",
		Collection: "/wasterecords",
		Item:       "/wasterecord",
		IDKey:      "waste_id",
		LabelKey:   "waste_type",
		Schema:     schema.MustFromType(reflect.TypeOf(WasteRecord{})),
		SearchKeys: []string{"waste_type", "disposal_method"},
	},
	{
		Name:       "qualityinspections",
		Title:      "Quality Inspections",
		Collection: "/qualityinspections",
		Item:       "/qualityinspection",
		IDKey:      "inspection_id",
		LabelKey:   "result",
		Schema:     schema.MustFromType(reflect.TypeOf(QualityInspection{})),
		SearchKeys: []string{"result", "certification_id"},
	},
}
