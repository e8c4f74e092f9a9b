package access

// Role es la categoría de un usuario. Enumeración cerrada de cuatro valores.
type Role string

// Roles válidos.
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleViewer   Role = "viewer"
)

var roles = []Role{RoleAdmin, RoleManager, RoleEmployee, RoleViewer}

// Roles devuelve los roles en orden de declaración.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// ParseRole convierte texto no confiable (claim JWT, columna, flag) en Role.
func ParseRole(s string) (Role, bool) {
	for _, r := range roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Valid indica si r es uno de los roles declarados.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

func (r Role) String() string { return string(r) }
