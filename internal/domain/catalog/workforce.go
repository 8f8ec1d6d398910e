package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

type Employee struct {
	EmployeeID        int      `json:"employee_id" ui:"-"`
	FullName          string   `json:"full_name" ui:"full_name" field:"Full Name,required"`
	Department        string   `json:"department" ui:"department" field:"Department,select=Operations|Quality Control|Warehouse|Sales|Finance|HR|IT|Management,required"`
	Position          string   `json:"position" ui:"position" field:"Position,required"`
	HireDate          string   `json:"hire_date" ui:"hire_date" field:"Hire Date,date,required,default=@today"`
	PerformanceRating *float64 `json:"performance_rating" ui:"performance_rating" field:"Performance Rating"`
}

type WorkerAssignment struct {
	AssignmentID int    `json:"assignment_id" ui:"-"`
	EmployeeID   int    `json:"employee_id" ui:"employee_id" field:"Employee,ref=employees,required"`
	ProcessingID int    `json:"processing_id" ui:"processing_id" field:"Processing Order,ref=processingorders,required"`
	RoleInTask   string `json:"role_in_task" ui:"role_in_task" field:"Role in Task,required"`
	Notes        string `json:"notes" ui:"notes" field:"Notes"`
}

type ManagementInsight struct {
	ReportID   int    `json:"report_id" ui:"-"`
	EmployeeID int    `json:"employee_id" ui:"employee_id" field:"Employee,ref=employees,required"`
	KPIType    string `json:"kpi_type" ui:"kpi_type" field:"KPI Type,select=Production Efficiency|Sales Performance|Quality Score|Safety Record|Customer Satisfaction|Cost Management,required"`
	TimePeriod string `json:"time_period" ui:"time_period" field:"Time Period,required"`
}

var workforce = []*Entity{
	{
		Name:       "employees",
		Title:      "Employees",
		Collection: "/employees",
		Item:       "/employee",
		IDKey:      "employee_id",
		LabelKey:   "full_name",
		Schema:     schema.MustFromType(reflect.TypeOf(Employee{})),
		SearchKeys: []string{"full_name", "department", "position"},
	},
	{
		Name:       "workerassignments",
		Title:      "Worker Assignments",
		Collection: "/workerassignments",
		Item:       "/workerassignment",
		IDKey:      "assignment_id",
		LabelKey:   "role_in_task",
		Schema:     schema.MustFromType(reflect.TypeOf(WorkerAssignment{})),
		SearchKeys: []string{"role_in_task", "notes"},
	},
	{
		Name:       "managementinsights",
		Title:      "Management Insights",
		Collection: "/managementinsights",
		Item:       "/managementinsight",
		IDKey:      "report_id",
		LabelKey:   "kpi_type",
		Schema:     schema.MustFromType(reflect.TypeOf(ManagementInsight{})),
		SearchKeys: []string{"kpi_type", "time_period"},
	},
}
