package domain

// Well-known employee roles. The roles column is free-form; these cover the
// roles the seed data and the route guards use.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Employee is the authenticatable principal. At most one issued token is
// valid at a time: issuing a new one overwrites Token.
type Employee struct {
	EmployeeID   int
	Username     string
	PasswordHash string
	Token        string
	Roles        []string
}

// HasRole reports whether the employee carries the given role.
func (e *Employee) HasRole(role string) bool {
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether the employee's role set is a superset of roles.
func (e *Employee) HasAllRoles(roles []string) bool {
	for _, r := range roles {
		if !e.HasRole(r) {
			return false
		}
	}
	return true
}
