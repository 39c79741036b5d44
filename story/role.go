package story

// Role is the relation of the buyer to the child the book is for.
type Role string

const (
	RoleMama   Role = "Mama"
	RolePapa   Role = "Papa"
	RoleOma    Role = "Oma"
	RoleOpa    Role = "Opa"
	RoleTante  Role = "Tante"
	RoleOnkel  Role = "Onkel"
	RoleFreund Role = "Freund"
)

// Roles lists all selectable roles in display order.
func Roles() []Role {
	return []Role{RoleMama, RolePapa, RoleOma, RoleOpa, RoleTante, RoleOnkel, RoleFreund}
}

// Valid reports whether the role is one of the selectable values.
func (r Role) Valid() bool {
	switch r {
	case RoleMama, RolePapa, RoleOma, RoleOpa, RoleTante, RoleOnkel, RoleFreund:
		return true
	}
	return false
}
