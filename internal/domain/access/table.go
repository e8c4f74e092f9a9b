package access

// permissionSet es un conjunto de permisos como máscara de bits (el universo cabe en 32 bits).
type permissionSet uint32

func (s permissionSet) has(p Permission) bool {
	return p.Valid() && s&(1<<p) != 0
}

type roleEntry struct {
	list []Permission
	set  permissionSet
}

// table es la tabla rol → permisos. Se construye una vez en la inicialización del paquete
// y no hay ninguna API que la modifique.
var table = buildTable(map[Role][]Permission{
	// admin recibe el universo completo: un permiso nuevo queda concedido solo a admin.
	RoleAdmin: AllPermissions(),
	RoleManager: {
		ProductsView, ProductsCreate, ProductsUpdate,
		InventoryView, InventoryUpdate, InventoryTransfer, InventoryAdjust,
		SalesView, SalesCreate, SalesUpdate,
		CustomersView, CustomersCreate, CustomersUpdate,
		ReportsView, ReportsExport,
	},
	RoleEmployee: {
		ProductsView,
		InventoryView, InventoryUpdate,
		SalesView, SalesCreate,
		CustomersView, CustomersCreate,
		ReportsView,
	},
	RoleViewer: {
		ProductsView,
		InventoryView,
		SalesView,
		CustomersView,
		ReportsView,
	},
})

func buildTable(src map[Role][]Permission) map[Role]roleEntry {
	t := make(map[Role]roleEntry, len(roles))
	for _, r := range roles {
		var e roleEntry
		for _, p := range src[r] {
			if !p.Valid() || e.set.has(p) {
				continue
			}
			e.set |= 1 << p
			e.list = append(e.list, p)
		}
		t[r] = e
	}
	return t
}

// PermissionsFor devuelve la lista ordenada de permisos del rol. Es total: un rol
// no reconocido devuelve una lista vacía. Se entrega una copia.
func PermissionsFor(role Role) []Permission {
	e := table[role]
	out := make([]Permission, len(e.list))
	copy(out, e.list)
	return out
}

// HasPermission indica si el rol concede el permiso.
func HasPermission(role Role, perm Permission) bool {
	return table[role].set.has(perm)
}

// PermissionCodes devuelve los códigos de texto de los permisos del rol (para JSON / sesión).
func PermissionCodes(role Role) []string {
	e := table[role]
	out := make([]string, 0, len(e.list))
	for _, p := range e.list {
		out = append(out, p.String())
	}
	return out
}
