package authorization

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleHelpdesk   UserRole = "helpdesk"
	RoleTechnician UserRole = "technician"
	RoleUser       UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// IsStaff reports whether the role belongs to helpdesk staff eligible to
// work on tickets inside their own company and branch.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleHelpdesk || r == RoleTechnician
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHelpdesk, RoleTechnician, RoleUser:
		return true
	}
	return false
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
