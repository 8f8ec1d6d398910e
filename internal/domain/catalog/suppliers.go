package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

type Supplier struct {
	SupplierID       int    `json:"supplier_id" ui:"-"`
	CompanyName      string `json:"company_name" ui:"company_name" field:"Company Name,required"`
	ContactPerson    string `json:"contact_person" ui:"contact_person" field:"Contact Person"`
	Email            string `json:"email" ui:"email" field:"Email,email"`
	Phone            string `json:"phone" ui:"phone" field:"Phone"`
	ComplianceStatus string `json:"compliance_status" ui:"compliance_status" field:"Compliance Status,select=Compliant|Pending|Non-Compliant,default=Pending"`
	Raw              bool   `json:"raw" ui:"raw" field:"Supplies Raw Wood"`
	SemiProcessed    bool   `json:"semi_processed" ui:"semi_processed" field:"Supplies Semi-Processed"`
}

type SupplierPerformance struct {
	PerformanceID      int      `json:"performance_id" ui:"-"`
	SupplierID         int      `json:"supplier_id" ui:"supplier_id" field:"Supplier,ref=suppliers,required"`
	Rating             float64  `json:"rating" ui:"rating" field:"Rating,required"`
	DeliveryTimeliness *float64 `json:"delivery_timeliness" ui:"delivery_timeliness" field:"Delivery Timeliness"`
	QualityScore       *float64 `json:"quality_score" ui:"quality_score" field:"Quality Score"`
	ReviewDate         string   `json:"review_date" ui:"review_date" field:"Review Date,date,required,default=@today"`
}

type SupplierContract struct {
	ContractID    int     `json:"contract_id" ui:"-"`
	SupplierID    int     `json:"supplier_id" ui:"supplier_id" field:"Supplier,ref=suppliers,required"`
	StartDate     string  `json:"start_date" ui:"start_date" field:"Start Date,date,required,default=@today"`
	EndDate       string  `json:"end_date" ui:"end_date" field:"End Date,date,required"`
	Terms         string  `json:"terms" ui:"terms" field:"Terms"`
	ContractValue float64 `json:"contract_value" ui:"contract_value" field:"Contract Value,required"`
	Status        string  `json:"status" ui:"status" field:"Status,select=Active|Expired|Terminated|Under Review,default=Active"`
}

var suppliers = []*Entity{
	{
		Name:       "suppliers",
		Title:      "Suppliers",
		Collection: "/suppliers",
		Item:       "/supplier",
		IDKey:      "supplier_id",
		LabelKey:   "company_name",
		Schema:     schema.MustFromType(reflect.TypeOf(Supplier{})),
		SearchKeys: []string{"company_name", "contact_person", "email"},
	},
	{
		Name:       "supplierperformances",
		Title:      "Supplier Performance",
		Collection: "/supplierperformances",
		Item:       "/supplierperformance",
		IDKey:      "performance_id",
		LabelKey:   "review_date",
		Schema:     schema.MustFromType(reflect.TypeOf(SupplierPerformance{})),
		SearchKeys: []string{"review_date"},
	},
	{
		Name:       "suppliercontracts",
		Title:      "Supplier Contracts",
		Collection: "/suppliercontracts",
		Item:       "/suppliercontract",
		IDKey:      "contract_id",
		LabelKey:   "terms",
		Schema:     schema.MustFromType(reflect.TypeOf(SupplierContract{})),
		SearchKeys: []string{"status"},
		Rules: []schema.Rule{
			schema.DateOrder("start_date", "end_date", "End date must be after start date"),
		},
	},
}
