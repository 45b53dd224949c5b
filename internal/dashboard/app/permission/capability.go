package permission

import (
	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
)

const (
	ResourceStores   Resource = "stores"
	ResourceManagers Resource = "managers"
	ResourceAdmins   Resource = "admins"
	ResourceUsers    Resource = "users"
	ResourceProducts Resource = "products"
	ResourceExpenses Resource = "expenses"
	ResourceIncomes  Resource = "incomes"
	ResourcePayrolls Resource = "payrolls"
)

type (
	Resource string

	Access struct {
		Read  bool `json:"read"`
		Write bool `json:"write"`
	}
)

var (
	readOnly  = Access{Read: true}
	readWrite = Access{Read: true, Write: true}
)

var roleCapabilities = map[auth.Role]map[Resource]Access{
	auth.RoleSuperAdmin: {
		ResourceStores:   readWrite,
		ResourceManagers: readWrite,
		ResourceAdmins:   readWrite,
		ResourceUsers:    readWrite,
		ResourceProducts: readWrite,
		ResourceExpenses: readWrite,
		ResourceIncomes:  readWrite,
		ResourcePayrolls: readWrite,
	},
	auth.RoleAdmin: {
		ResourceStores:   readWrite,
		ResourceManagers: readWrite,
		ResourceUsers:    readWrite,
		ResourceProducts: readWrite,
		ResourceExpenses: readWrite,
		ResourceIncomes:  readWrite,
		ResourcePayrolls: readOnly,
	},
	auth.RoleManager: {
		ResourceStores:   readOnly,
		ResourceUsers:    readWrite,
		ResourceProducts: readWrite,
		ResourceExpenses: readWrite,
		ResourceIncomes:  readOnly,
	},
	auth.RoleUser: {
		ResourceStores:   readOnly,
		ResourceProducts: readOnly,
	},
}

func ParseResource(value string) (Resource, bool) {
	resource := Resource(value)
	_, ok := roleCapabilities[auth.RoleSuperAdmin][resource]
	return resource, ok
}

// Capabilities returns a copy of the role's access map, empty for RoleNone and unknown roles.
func Capabilities(role auth.Role) map[Resource]Access {
	capabilities := roleCapabilities[role]
	result := make(map[Resource]Access, len(capabilities))
	for resource, access := range capabilities {
		result[resource] = access
	}

	return result
}

func AccessOf(role auth.Role, resource Resource) Access {
	return roleCapabilities[role][resource]
}
