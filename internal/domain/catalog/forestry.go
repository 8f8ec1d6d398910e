package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

type Forest struct {
	ForestID      int     `json:"forest_id" ui:"-"`
	ForestName    string  `json:"forest_name" ui:"forest_name" field:"Forest Name,required"`
	GeoLocation   string  `json:"geo_location" ui:"geo_location" field:"Location"`
	AreaSize      float64 `json:"area_size" ui:"area_size" field:"Area Size (ha)"`
	OwnershipType string  `json:"ownership_type" ui:"ownership_type" field:"Ownership,select=Private|Government|Corporate|Community,required"`
	Status        string  `json:"status" ui:"status" field:"Status,select=Active|Inactive|Under Review,default=Active"`
}

type TreeSpecies struct {
	SpeciesID       int      `json:"species_id" ui:"-"`
	SpeciesName     string   `json:"species_name" ui:"species_name" field:"Species Name,required"`
	AverageHeight   *float64 `json:"average_height" ui:"average_height" field:"Average Height (m)"`
	Density         *float64 `json:"density" ui:"density" field:"Density (kg/m3)"`
	MoistureContent *float64 `json:"moisture_content" ui:"moisture_content" field:"Moisture Content (%)"`
	Grade           string   `json:"grade" ui:"grade" field:"Grade,select=A+|A|B|C|D"`
}

type HarvestSchedule struct {
	ScheduleID int    `json:"schedule_id" ui:"-"`
	ForestID   int    `json:"forest_id" ui:"forest_id" field:"Forest,ref=forests,required"`
	StartDate  string `json:"start_date" ui:"start_date" field:"Start Date,date,required,default=@today"`
	EndDate    string `json:"end_date" ui:"end_date" field:"End Date,date,required"`
	Status     string `json:"status" ui:"status" field:"Status,select=Scheduled|In Progress|Completed|Cancelled,default=Scheduled"`
}

type HarvestBatch struct {
	BatchID          int     `json:"batch_id" ui:"-"`
	ForestID         int     `json:"forest_id" ui:"forest_id" field:"Forest,ref=forests,required"`
	SpeciesID        int     `json:"species_id" ui:"species_id" field:"Species,ref=treespecies,required"`
	ScheduleID       int     `json:"schedule_id" ui:"schedule_id" field:"Schedule,ref=harvestschedules,required"`
	Quantity         float64 `json:"quantity" ui:"quantity" field:"Quantity,required"`
	HarvestDate      string  `json:"harvest_date" ui:"harvest_date" field:"Harvest Date,date,required,default=@today"`
	QualityIndicator string  `json:"quality_indicator" ui:"quality_indicator" field:"Quality,select=Premium|Standard|Economy|Grade B"`
	QRCode           string  `json:"qr_code" ui:"qr_code" field:"QR Code,default=@qr"`
}

var forestry = []*Entity{
	{
		Name:       "forests",
		Title:      "Forests",
		Collection: "/forests",
		Item:       "/forest",
		IDKey:      "forest_id",
		LabelKey:   "forest_name",
		Schema:     schema.MustFromType(reflect.TypeOf(Forest{})),
		SearchKeys: []string{"forest_name", "geo_location", "ownership_type"},
	},
	{
		Name:       "treespecies",
		Title:      "Tree Species",
		Collection: "/treespecies",
		// The singular path would collide with the collection, so the
		// item route carries a suffix.
		Item:       "/treespecies-item",
		IDKey:      "species_id",
		LabelKey:   "species_name",
		Schema:     schema.MustFromType(reflect.TypeOf(TreeSpecies{})),
		SearchKeys: []string{"species_name", "grade"},
	},
	{
		Name:       "harvestschedules",
		Title:      "Harvest Schedules",
		Collection: "/harvestschedules",
		Item:       "/harvestschedule",
		IDKey:      "schedule_id",
		LabelKey:   "start_date",
		Schema:     schema.MustFromType(reflect.TypeOf(HarvestSchedule{})),
		SearchKeys: []string{"status"},
		Rules: []schema.Rule{
			schema.DateOrder("start_date", "end_date", "End date must be after start date"),
		},
	},
	{
		Name:       "harvestbatches",
		Title:      "Harvest Batches",
		Collection: "/harvestbatches",
		Item:       "/harvestbatch",
		IDKey:      "batch_id",
		LabelKey:   "qr_code",
		Schema:     schema.MustFromType(reflect.TypeOf(HarvestBatch{})),
		SearchKeys: []string{"qr_code", "quality_indicator"},
	},
}
