// Package access contiene la tabla de control de acceso por rol (RBAC) del sistema.
// La tabla es constante: se construye una sola vez al iniciar el proceso y nunca se modifica,
// por lo que puede leerse concurrentemente sin sincronización.
package access

import "fmt"

// Permission es una capacidad sobre un par recurso:acción. Es una enumeración cerrada:
// solo existen los valores declarados abajo. El código en texto ("products:create")
// se usa únicamente al serializar (JWT, JSON, base de datos).
type Permission uint8

// Universo de permisos, en orden de declaración.
const (
	ProductsView Permission = iota
	ProductsCreate
	ProductsUpdate
	ProductsDelete

	InventoryView
	InventoryUpdate
	InventoryTransfer
	InventoryAdjust

	SalesView
	SalesCreate
	SalesUpdate
	SalesDelete

	CustomersView
	CustomersCreate
	CustomersUpdate
	CustomersDelete

	ReportsView
	ReportsExport
	ReportsAdvanced

	UsersManage
	SettingsManage
	SystemAdmin

	permissionCount // centinela, no es un permiso
)

var permissionCodes = [permissionCount]string{
	ProductsView:   "products:view",
	ProductsCreate: "products:create",
	ProductsUpdate: "products:update",
	ProductsDelete: "products:delete",

	InventoryView:     "inventory:view",
	InventoryUpdate:   "inventory:update",
	InventoryTransfer: "inventory:transfer",
	InventoryAdjust:   "inventory:adjust",

	SalesView:   "sales:view",
	SalesCreate: "sales:create",
	SalesUpdate: "sales:update",
	SalesDelete: "sales:delete",

	CustomersView:   "customers:view",
	CustomersCreate: "customers:create",
	CustomersUpdate: "customers:update",
	CustomersDelete: "customers:delete",

	ReportsView:     "reports:view",
	ReportsExport:   "reports:export",
	ReportsAdvanced: "reports:advanced",

	UsersManage:    "users:manage",
	SettingsManage: "settings:manage",
	SystemAdmin:    "system:admin",
}

var permissionByCode = func() map[string]Permission {
	m := make(map[string]Permission, permissionCount)
	for p, code := range permissionCodes {
		m[code] = Permission(p)
	}
	return m
}()

// Valid indica si p pertenece al universo de permisos.
func (p Permission) Valid() bool { return p < permissionCount }

// String devuelve el código "<recurso>:<acción>".
func (p Permission) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Permission(%d)", uint8(p))
	}
	return permissionCodes[p]
}

// MarshalText serializa el permiso como su código.
func (p Permission) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("access: permiso fuera de rango: %d", uint8(p))
	}
	return []byte(permissionCodes[p]), nil
}

// UnmarshalText acepta solo códigos conocidos.
func (p *Permission) UnmarshalText(text []byte) error {
	parsed, ok := ParsePermission(string(text))
	if !ok {
		return fmt.Errorf("access: permiso desconocido %q", string(text))
	}
	*p = parsed
	return nil
}

// ParsePermission convierte un código en Permission. ok es false si el código no existe.
func ParsePermission(code string) (Permission, bool) {
	p, ok := permissionByCode[code]
	return p, ok
}

// AllPermissions devuelve el universo de permisos en orden de declaración.
func AllPermissions() []Permission {
	out := make([]Permission, 0, permissionCount)
	for p := Permission(0); p < permissionCount; p++ {
		out = append(out, p)
	}
	return out
}
