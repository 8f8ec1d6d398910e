package catalog

import (
	"reflect"

	"github.com/erp/console/internal/domain/schema"
)

// User is an account that can sign in to the console.
type User struct {
	UserID      int    `json:"user_id" ui:"-"`
	Email       string `json:"email" ui:"email" field:"Email,required,email"`
	Password    string `json:"password" ui:"password" field:"Password,required"`
	FirstName   string `json:"first_name" ui:"first_name" field:"First Name,required"`
	LastName    string `json:"last_name" ui:"last_name" field:"Last Name,required"`
	PhoneNumber string `json:"phone_number" ui:"phone_number" field:"Phone Number"`
	Status      string `json:"status" ui:"status" field:"Status,select=active|inactive,default=active"`
}

type Permission struct {
	PermissionID int    `json:"permission_id" ui:"-"`
	ModuleName   string `json:"module_name" ui:"module_name" field:"Module,select=Users|Employees|Suppliers|Forestry|Processing|Inventory|Procurement|Sales|Finance|Logistics|Reports|Settings,required"`
	ActionType   string `json:"action_type" ui:"action_type" field:"Action,select=CREATE|READ|UPDATE|DELETE,default=READ"`
}

type Role struct {
	RoleID      int    `json:"role_id" ui:"-"`
	UserID      int    `json:"user_id" ui:"user_id" field:"User ID,required"`
	RoleName    string `json:"role_name" ui:"role_name" field:"Role Name,required"`
	Description string `json:"description" ui:"description" field:"Description"`
}

var administration = []*Entity{
	{
		Name:       "users",
		Title:      "Users",
		Collection: "/users",
		Item:       "/user",
		IDKey:      "user_id",
		LabelKey:   "email",
		Schema:     schema.MustFromType(reflect.TypeOf(User{})),
		SearchKeys: []string{"email", "first_name", "last_name"},
	},
	{
		Name:       "permissions",
		Title:      "Permissions",
		Collection: "/permissions",
		Item:       "/permission",
		IDKey:      "permission_id",
		LabelKey:   "module_name",
		Schema:     schema.MustFromType(reflect.TypeOf(Permission{})),
		SearchKeys: []string{"module_name", "action_type"},
	},
	{
		Name:       "roles",
		Title:      "Roles",
		Collection: "/roles",
		Item:       "/role",
		IDKey:      "role_id",
		LabelKey:   "role_name",
		Schema:     schema.MustFromType(reflect.TypeOf(Role{})),
		SearchKeys: []string{"role_name", "description"},
	},
}
