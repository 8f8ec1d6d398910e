package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

type TransportCompany struct {
	CompanyID     int     `json:"company_id" ui:"-"`
	CompanyName   string  `json:"company_name" ui:"company_name" field:"Company Name,required"`
	ContactInfo   string  `json:"contact_info" ui:"contact_info" field:"Contact Info"`
	LicenseNumber string  `json:"license_number" ui:"license_number" field:"License Number"`
	Rating        float64 `json:"rating" ui:"rating" field:"Rating,default=0"`
}

// Truck maps the form's transport_company_id and license_plate onto the
// wire's company_id and plate_number.
type Truck struct {
	TruckID     int     `json:"truck_id" ui:"-"`
	CompanyID   int     `json:"company_id" ui:"transport_company_id" field:"Transport Company,ref=transportcompanies,required"`
	PlateNumber string  `json:"plate_number" ui:"license_plate" field:"License Plate,required"`
	Capacity    float64 `json:"capacity" ui:"capacity" field:"Capacity (t)"`
	FuelType    string  `json:"fuel_type" ui:"fuel_type" field:"Fuel Type,select=Diesel|Petrol|Electric|Hybrid"`
	Status      string  `json:"status" ui:"status" field:"Status,select=Available|In Transit|Maintenance|Retired,default=Available"`
}

type Driver struct {
	DriverID        int    `json:"driver_id" ui:"-"`
	EmployeeID      int    `json:"employee_id" ui:"employee_id" field:"Employee,ref=employees,required"`
	LicenseNumber   string `json:"license_number" ui:"license_number" field:"License Number,required"`
	ExperienceYears int    `json:"experience_years" ui:"experience_years" field:"Experience (years)"`
	Status          string `json:"status" ui:"status" field:"Status,select=Active|Inactive|On Leave|Suspended,default=Active"`
}

// Route renames origin/destination/estimated_time_hours onto the wire's
// start_location/end_location/estimated_time.
type Route struct {
	RouteID       int     `json:"route_id" ui:"-"`
	StartLocation string  `json:"start_location" ui:"origin" field:"Origin,required"`
	EndLocation   string  `json:"end_location" ui:"destination" field:"Destination,required"`
	DistanceKM    float64 `json:"distance_km" ui:"distance_km" field:"Distance (km)"`
	EstimatedTime string  `json:"estimated_time" ui:"estimated_time_hours" field:"Estimated Time (h)"`
}

type Shipment struct {
	ShipmentID      int     `json:"shipment_id" ui:"-"`
	SOID            int     `json:"soid" ui:"so_id" field:"Sales Order,ref=salesorders,required"`
	TruckID         int     `json:"truck_id" ui:"truck_id" field:"Truck,ref=trucks,required"`
	DriverID        int     `json:"driver_id" ui:"driver_id" field:"Driver,ref=drivers,required"`
	CompanyID       int     `json:"company_id" ui:"company_id" field:"Transport Company,ref=transportcompanies,required"`
	RouteID         int     `json:"route_id" ui:"route_id" field:"Route,ref=routes,required"`
	ShipmentDate    string  `json:"shipment_date" ui:"shipment_date" field:"Shipment Date,date,required,default=@today"`
	Status          string  `json:"status" ui:"status" field:"Status,select=Preparing|In Transit|Delivered|Delayed|Cancelled,default=Preparing"`
	ProofOfDelivery *string `json:"proof_of_delivery" ui:"proof_of_delivery" field:"Proof of Delivery"`
}

type FuelLog struct {
	FuelLogID        int     `json:"fuel_log_id" ui:"-"`
	DriverID         int     `json:"driver_id" ui:"driver_id" field:"Driver,ref=drivers,required"`
	TruckID          int     `json:"truck_id" ui:"truck_id" field:"Truck,ref=trucks,required"`
	TripDate         string  `json:"trip_date" ui:"trip_date" field:"Trip Date,date,required,default=@today"`
	DistanceTraveled float64 `json:"distance_traveled" ui:"distance_traveled" field:"Distance (km)"`
}

var logistics = []*Entity{
	{
		Name:       "transportcompanies",
		Title:      "Transport Companies",
		Collection: "/transportcompanies",
		Item:       "/transportcompany",
		IDKey:      "company_id",
		LabelKey:   "company_name",
		Schema:     schema.MustFromType(reflect.TypeOf(TransportCompany{})),
		SearchKeys: []string{"company_name", "contact_info"},
	},
	{
		Name:       "trucks",
		Title:      "Trucks",
		Collection: "/trucks",
		Item:       "/truck",
		IDKey:      "truck_id",
		LabelKey:   "plate_number",
		Schema:     schema.MustFromType(reflect.TypeOf(Truck{})),
		SearchKeys: []string{"plate_number", "fuel_type", "status"},
	},
	{
		Name:       "drivers",
		Title:      "Drivers",
		Collection: "/drivers",
		Item:       "/driver",
		IDKey:      "driver_id",
		LabelKey:   "license_number",
		Schema:     schema.MustFromType(reflect.TypeOf(Driver{})),
		SearchKeys: []string{"license_number", "status"},
	},
	{
		Name:       "routes",
		Title:      "Routes",
		Collection: "/routes",
		Item:       "/route",
		IDKey:      "route_id",
		LabelKey:   "start_location",
		Schema:     schema.MustFromType(reflect.TypeOf(Route{})),
		SearchKeys: []string{"start_location", "end_location"},
	},
	{
		Name:       "shipments",
		Title:      "Shipments",
		Collection: "/shipments",
		Item:       "/shipment",
		IDKey:      "shipment_id",
		LabelKey:   "status",
		Schema:     schema.MustFromType(reflect.TypeOf(Shipment{})),
		SearchKeys: []string{"status"},
	},
	{
		Name:       "fuellogs",
		Title:      "Fuel Logs",
		Collection: "/fuellogs",
		Item:       "/fuellog",
		IDKey:      "fuel_log_id",
		LabelKey:   "trip_date",
		Schema:     schema.MustFromType(reflect.TypeOf(FuelLog{})),
		SearchKeys: []string{"trip_date"},
	},
}
